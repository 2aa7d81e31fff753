package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// RevenueRow fila de la vista de Einnahmen: un alquiler y su Abrechnung.
type RevenueRow struct {
	RentalID     int64               `json:"vermietung_id"`
	CustomerName string              `json:"kunde"`
	DeviceLabel  string              `json:"geraet"`
	From         entity.Date         `json:"von"`
	To           *entity.Date        `json:"bis"`
	Status       entity.RentalStatus `json:"status"`
	RentalDays   int                 `json:"mietdauer_tage"`
	Rent         decimal.Decimal     `json:"miete_summe"`
	Positions    decimal.Decimal     `json:"positionen_summe"`
	Revenue      decimal.Decimal     `json:"einnahmen"`
	Cost         decimal.Decimal     `json:"kosten_summe"`
	Margin       decimal.Decimal     `json:"marge"`
}

// RevenueTotals suma exacta de las filas.
type RevenueTotals struct {
	Rent      decimal.Decimal `json:"miete_summe"`
	Positions decimal.Decimal `json:"positionen_summe"`
	Revenue   decimal.Decimal `json:"einnahmen"`
	Cost      decimal.Decimal `json:"kosten_summe"`
	Margin    decimal.Decimal `json:"marge"`
}

// RevenueReport respuesta de GET /api/einnahmen; filas ordenadas por vermietung_id.
type RevenueReport struct {
	From   entity.Date   `json:"von"`
	To     entity.Date   `json:"bis"`
	Rows   []RevenueRow  `json:"items"`
	Totals RevenueTotals `json:"summe"`
}
