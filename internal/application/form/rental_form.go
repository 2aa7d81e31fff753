package form

import (
	"strings"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// RentalDraft borrador del modal "Neue Vermietung".
type RentalDraft struct {
	DeviceID   string `form:"geraet_id" json:"geraet_id"`
	CustomerID string `form:"kunde_id" json:"kunde_id"`
	From       string `form:"von" json:"von"`
	To         string `form:"bis" json:"bis"`
	OpenEnded  bool   `form:"offen" json:"offen"`
	RateValue  string `form:"satz_wert" json:"satz_wert"`
	RateUnit   string `form:"satz_einheit" json:"satz_einheit"`
}

// NewRentalDraft: von = hoy, sin fecha de fin, tarifa mensual.
func NewRentalDraft(today entity.Date) RentalDraft {
	return RentalDraft{
		From:      today.String(),
		OpenEnded: true,
		RateValue: "0",
		RateUnit:  string(entity.RateMonthly),
	}
}

// Validate devuelve el alquiler en estado RESERVIERT; OpenEnded envía bis nulo.
func (d RentalDraft) Validate() (entity.Rental, error) {
	deviceID, ok := ParseID(d.DeviceID)
	if !ok {
		return entity.Rental{}, invalid(MsgDeviceRequired)
	}
	customerID, ok := ParseID(d.CustomerID)
	if !ok {
		return entity.Rental{}, invalid(MsgCustomerRequired)
	}
	if strings.TrimSpace(d.From) == "" {
		return entity.Rental{}, invalid(MsgStartRequired)
	}
	from, err := entity.ParseDate(strings.TrimSpace(d.From))
	if err != nil {
		return entity.Rental{}, invalid(MsgDateFormat)
	}

	var to *entity.Date
	if !d.OpenEnded {
		if strings.TrimSpace(d.To) == "" {
			return entity.Rental{}, invalid(MsgEndRequired)
		}
		end, err := entity.ParseDate(strings.TrimSpace(d.To))
		if err != nil {
			return entity.Rental{}, invalid(MsgDateFormat)
		}
		if end.Before(from) {
			return entity.Rental{}, invalid(MsgEndBeforeStart)
		}
		to = &end
	}

	rate := strings.TrimSpace(d.RateValue)
	if rate == "" {
		rate = "0"
	}
	value, ok := parseNumber(rate)
	if !ok {
		return entity.Rental{}, invalid(MsgRateFormat)
	}
	unit := entity.RateUnit(strings.TrimSpace(d.RateUnit))
	if unit == "" {
		unit = entity.RateMonthly
	}
	if !unit.Valid() {
		return entity.Rental{}, invalid(MsgUnitInvalid)
	}

	return entity.Rental{
		DeviceID:   deviceID,
		CustomerID: customerID,
		From:       from,
		To:         to,
		RateValue:  value,
		RateUnit:   unit,
		Status:     entity.RentalPlanned,
	}, nil
}

// CloseDraft fecha de cierre opcional; vacía = hoy en el backend.
type CloseDraft struct {
	To string `form:"bis" json:"bis"`
}

func (d CloseDraft) Validate() (*entity.Date, error) {
	return parseOptionalDate(d.To)
}

// PositionDraft borrador de una posición adicional.
type PositionDraft struct {
	Type         string `form:"typ" json:"typ"`
	Quantity     string `form:"menge" json:"menge"`
	UnitPrice    string `form:"vk_einzelpreis" json:"vk_einzelpreis"`
	InternalCost string `form:"kosten_intern" json:"kosten_intern"`
}

// NewPositionDraft una unidad de montaje sin precio.
func NewPositionDraft() PositionDraft {
	return PositionDraft{Type: string(entity.PositionAssembly), Quantity: "1", UnitPrice: "0", InternalCost: "0"}
}

func (d PositionDraft) Validate(rentalID int64) (entity.RentalPosition, error) {
	typ := entity.PositionType(strings.TrimSpace(d.Type))
	if !typ.Valid() {
		return entity.RentalPosition{}, invalid(MsgPositionType)
	}
	qty, ok := parseNumber(orZero(d.Quantity))
	if !ok {
		return entity.RentalPosition{}, invalid(MsgQuantityFormat)
	}
	price, ok := parseNumber(orZero(d.UnitPrice))
	if !ok {
		return entity.RentalPosition{}, invalid(MsgAmountFormat)
	}
	cost, ok := parseNumber(orZero(d.InternalCost))
	if !ok {
		return entity.RentalPosition{}, invalid(MsgAmountFormat)
	}
	return entity.RentalPosition{
		RentalID:     rentalID,
		Type:         typ,
		Quantity:     qty,
		UnitPrice:    price,
		InternalCost: cost,
	}, nil
}

// InvoiceDraft borrador de una Rechnung.
type InvoiceDraft struct {
	Number string `form:"nummer" json:"nummer"`
	Date   string `form:"datum" json:"datum"`
	Paid   bool   `form:"bezahlt" json:"bezahlt"`
}

func (d InvoiceDraft) Validate(rentalID int64) (entity.Invoice, error) {
	number := strings.TrimSpace(d.Number)
	if number == "" {
		return entity.Invoice{}, invalid(MsgInvoiceNumber)
	}
	if strings.TrimSpace(d.Date) == "" {
		return entity.Invoice{}, invalid(MsgInvoiceDate)
	}
	date, err := entity.ParseDate(strings.TrimSpace(d.Date))
	if err != nil {
		return entity.Invoice{}, invalid(MsgDateFormat)
	}
	return entity.Invoice{RentalID: rentalID, Number: number, Date: date, Paid: d.Paid}, nil
}

func orZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}
