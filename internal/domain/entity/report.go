package entity

import "github.com/shopspring/decimal"

// UtilizationQuery cuerpo de POST /berichte/auslastung. DeviceID nil = toda la flota.
type UtilizationQuery struct {
	From     Date   `json:"von"`
	To       Date   `json:"bis"`
	DeviceID *int64 `json:"geraet_id"`
}

// UtilizationItem días totales / alquilados y porcentaje de un equipo.
type UtilizationItem struct {
	DeviceID   int64   `json:"geraet_id"`
	TotalDays  int     `json:"tage_gesamt"`
	RentedDays int     `json:"tage_vermietet"`
	Percent    float64 `json:"auslastung_prozent"`
}

// UtilizationReport (Auslastung) calculado por el backend.
type UtilizationReport struct {
	Items        []UtilizationItem `json:"items"`
	FleetPercent float64           `json:"flotte_auslastung_prozent"`
}

// Settlement (Abrechnung) resumen de facturación de un alquiler.
type Settlement struct {
	RentalID       int64           `json:"vermietung_id"`
	RentalDays     int             `json:"mietdauer_tage"`
	RentTotal      decimal.Decimal `json:"miete_summe"`
	PositionsTotal decimal.Decimal `json:"positionen_summe"`
	Revenue        decimal.Decimal `json:"einnahmen"`
	CostTotal      decimal.Decimal `json:"kosten_summe"`
	Margin         decimal.Decimal `json:"marge"`
}

// DeviceFinance resumen financiero de un equipo. Algunas versiones del backend
// devuelven miete_summe/kosten_summe en lugar de einnahmen/kosten.
type DeviceFinance struct {
	DeviceID    int64               `json:"geraet_id"`
	RentalCount int                 `json:"anzahl_vermietungen"`
	Revenue     decimal.NullDecimal `json:"einnahmen"`
	Cost        decimal.NullDecimal `json:"kosten"`
	Margin      decimal.NullDecimal `json:"marge"`
	RentTotal   decimal.NullDecimal `json:"miete_summe"`
	CostTotal   decimal.NullDecimal `json:"kosten_summe"`
	TotalDays   int                 `json:"tage_gesamt"`
	RentedDays  int                 `json:"tage_vermietet"`
	Percent     float64             `json:"auslastung_prozent"`
}

// Income einnahmen ?? miete_summe ?? 0.
func (f DeviceFinance) Income() decimal.Decimal {
	return firstValid(f.Revenue, f.RentTotal)
}

// Expenses kosten ?? kosten_summe ?? 0.
func (f DeviceFinance) Expenses() decimal.Decimal {
	return firstValid(f.Cost, f.CostTotal)
}

// NetMargin Income - Expenses; se recalcula siempre en el cliente.
func (f DeviceFinance) NetMargin() decimal.Decimal {
	return f.Income().Sub(f.Expenses())
}

func firstValid(values ...decimal.NullDecimal) decimal.Decimal {
	for _, v := range values {
		if v.Valid {
			return v.Decimal
		}
	}
	return decimal.Zero
}
