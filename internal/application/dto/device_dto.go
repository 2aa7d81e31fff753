package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// DeviceRow fila del listado de equipos con nombres ya resueltos.
type DeviceRow struct {
	Device      entity.Device `json:"geraet"`
	CompanyName string        `json:"firma,omitempty"`
	ParkName    string        `json:"mietpark,omitempty"`
	// Occupant cliente del alquiler OFFEN actual (solo equipos en KUNDE).
	Occupant         string `json:"aktueller_kunde,omitempty"`
	OccupantRentalID int64  `json:"aktuelle_vermietung_id,omitempty"`
	// Ambiguous: hay más de un alquiler OFFEN para el equipo.
	Ambiguous bool `json:"mehrdeutig,omitempty"`
}

// DevicePage respuesta de GET /api/geraete y modelo de la página /geraete.
type DevicePage struct {
	Rows   []DeviceRow  `json:"items"`
	Page   PageResponse `json:"page"`
	Status string       `json:"status,omitempty"`
	// Location filtro standort_typ aplicado.
	Location string `json:"standort_typ,omitempty"`
}

// FinanceSummary resumen financiero normalizado de un equipo.
type FinanceSummary struct {
	Income      decimal.Decimal `json:"einnahmen"`
	Expenses    decimal.Decimal `json:"ausgaben"`
	Margin      decimal.Decimal `json:"marge"`
	RentalCount int             `json:"anzahl_vermietungen"`
	TotalDays   int             `json:"tage_gesamt"`
	RentedDays  int             `json:"tage_vermietet"`
	Percent     float64         `json:"auslastung_prozent"`
}

// NewFinanceSummary aplica los fallbacks einnahmen ?? miete_summe y kosten ?? kosten_summe.
func NewFinanceSummary(f entity.DeviceFinance) FinanceSummary {
	return FinanceSummary{
		Income:      f.Income(),
		Expenses:    f.Expenses(),
		Margin:      f.NetMargin(),
		RentalCount: f.RentalCount,
		TotalDays:   f.TotalDays,
		RentedDays:  f.RentedDays,
		Percent:     f.Percent,
	}
}

// DeviceDetail página de detalle. El equipo es obligatorio; el historial, las
// finanzas y los mantenimientos pueden faltar (el error se guarda en *Error).
type DeviceDetail struct {
	Device           entity.Device        `json:"geraet"`
	CompanyName      string               `json:"firma,omitempty"`
	ParkName         string               `json:"mietpark,omitempty"`
	Rentals          []RentalRow          `json:"vermietungen"`
	RentalsError     string               `json:"vermietungen_fehler,omitempty"`
	Finance          *FinanceSummary      `json:"finanzen"`
	FinanceError     string               `json:"finanzen_fehler,omitempty"`
	Maintenance      []entity.Maintenance `json:"wartungen"`
	MaintenanceError string               `json:"wartungen_fehler,omitempty"`
}
