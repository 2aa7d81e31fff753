package entity

import "github.com/shopspring/decimal"

// RentalStatus estado de una Vermietung.
type RentalStatus string

const (
	RentalPlanned   RentalStatus = "RESERVIERT"
	RentalOpen      RentalStatus = "OFFEN"
	RentalClosed    RentalStatus = "GESCHLOSSEN"
	RentalCancelled RentalStatus = "STORNIERT"
)

// RentalStatuses en orden de ciclo de vida.
var RentalStatuses = []RentalStatus{RentalPlanned, RentalOpen, RentalClosed, RentalCancelled}

// Rental (Vermietung) une un equipo con un cliente durante un periodo.
// To == nil significa alquiler abierto (sin fecha de fin).
type Rental struct {
	ID         int64           `json:"id,omitempty"`
	DeviceID   int64           `json:"geraet_id"`
	CustomerID int64           `json:"kunde_id"`
	From       Date            `json:"von"`
	To         *Date           `json:"bis"`
	RateValue  decimal.Decimal `json:"satz_wert"`
	RateUnit   RateUnit        `json:"satz_einheit"`
	Status     RentalStatus    `json:"status"`
}

// GetID implementa listing.Identifiable.
func (r Rental) GetID() int64 { return r.ID }

// OpenEnded indica si el alquiler no tiene fecha de fin.
func (r Rental) OpenEnded() bool {
	return r.To == nil || r.To.IsZero()
}

// EndOrFarFuture devuelve la fecha de fin o FarFuture si está abierto.
func (r Rental) EndOrFarFuture() Date {
	if r.OpenEnded() {
		return FarFuture
	}
	return *r.To
}

// Overlaps indica si el alquiler toca el rango [from, to]:
// von <= to && (bis ?? FarFuture) >= from.
func (r Rental) Overlaps(from, to Date) bool {
	return !r.From.After(to) && !r.EndOrFarFuture().Before(from)
}

// CurrentOccupants devuelve, por equipo, el último alquiler OFFEN encontrado y
// los equipos con más de un alquiler abierto. No se resuelve la ambigüedad.
func CurrentOccupants(rentals []Rental) (map[int64]Rental, map[int64]bool) {
	occupants := make(map[int64]Rental)
	ambiguous := make(map[int64]bool)
	for _, r := range rentals {
		if r.Status != RentalOpen {
			continue
		}
		if _, seen := occupants[r.DeviceID]; seen {
			ambiguous[r.DeviceID] = true
		}
		occupants[r.DeviceID] = r
	}
	return occupants, ambiguous
}
