// Package form contiene los borradores de los formularios (modales) y su
// validación síncrona. Un borrador inválido nunca llega al backend.
package form

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// Mensajes que ve el usuario.
const (
	MsgNameRequired     = "Name ist Pflicht."
	MsgCompanyRequired  = "Bitte eine Firma wählen."
	MsgParkRequired     = "Bitte einen Mietpark wählen."
	MsgYearFormat       = "Baujahr bitte als vierstellige Zahl angeben (z. B. 2021)."
	MsgCountryFormat    = "„Vermietet in“ bitte als 2-Buchstaben-Ländercode angeben (z. B. DE, AT)."
	MsgPriceFormat      = "Mietpreis bitte als Zahl angeben."
	MsgHoursFormat      = "Stundenzähler bitte als Zahl angeben."
	MsgPurchaseFormat   = "Anschaffungspreis bitte als Zahl angeben."
	MsgDateFormat       = "Bitte ein gültiges Datum angeben (JJJJ-MM-TT)."
	MsgStatusInvalid    = "Bitte einen gültigen Status wählen."
	MsgLocationInvalid  = "Bitte einen gültigen Standorttyp wählen."
	MsgUnitInvalid      = "Bitte eine gültige Einheit wählen."
	MsgDeviceRequired   = "Bitte ein Gerät wählen."
	MsgCustomerRequired = "Bitte einen Kunden wählen."
	MsgStartRequired    = "Bitte Startdatum (von) wählen."
	MsgEndRequired      = "Bitte Enddatum (bis) wählen oder 'ohne Enddatum' ankreuzen."
	MsgEndBeforeStart   = "Das Enddatum liegt vor dem Startdatum."
	MsgRateFormat       = "Satzwert muss eine Zahl sein."
	MsgPositionType     = "Bitte einen Positionstyp wählen."
	MsgQuantityFormat   = "Menge bitte als Zahl angeben."
	MsgAmountFormat     = "Betrag bitte als Zahl angeben."
	MsgInvoiceNumber    = "Rechnungsnummer ist Pflicht."
	MsgInvoiceDate      = "Bitte ein Rechnungsdatum wählen."
	MsgRangeRequired    = "Bitte Zeitraum (von/bis) wählen."
	MsgRangeOrder       = "Der Zeitraum ist ungültig: „bis“ liegt vor „von“."
	MsgDeviceIDFormat   = "Gerät-ID bitte als Zahl angeben."
)

var (
	yearPattern    = regexp.MustCompile(`^\d{4}$`)
	countryPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// ValidationError fallo de validación del formulario; Message se muestra tal cual.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// parseNumber acepta "12.5" y también la coma decimal alemana "12,5".
func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseID interpreta un id de formulario; vacío o no positivo = ausente.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseOptionalDate(s string) (*entity.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, invalid(MsgDateFormat)
	}
	return &d, nil
}

func formatID(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func formatDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
