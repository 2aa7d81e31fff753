// Package format agrupa el formateo de importes y fechas para la interfaz en alemán.
package format

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printerOnce sync.Once
	printer     *message.Printer
)

func de() *message.Printer {
	printerOnce.Do(func() {
		printer = message.NewPrinter(language.German)
	})
	return printer
}

// Money devuelve el importe con dos decimales y sufijo "€", ej. "1.234,50 €".
func Money(d decimal.Decimal) string {
	return de().Sprintf("%.2f €", d.Round(2).InexactFloat64())
}

// MoneyFloat igual que Money para valores float64 (porcentajes, gráficos).
func MoneyFloat(f float64) string {
	return Money(decimal.NewFromFloat(f))
}

// Number formatea con separadores alemanes y la precisión indicada.
func Number(f float64, prec int) string {
	return de().Sprintf("%.*f", prec, f)
}

// Negative indica si el importe debe mostrarse en rojo.
func Negative(d decimal.Decimal) bool {
	return d.IsNegative()
}

// Date formatea una fecha de calendario como "02.01.2006".
func Date(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006")
}
