package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maintenance (Wartung) registro de mantenimiento de un equipo.
type Maintenance struct {
	ID          int64           `json:"id,omitempty"`
	DeviceID    int64           `json:"geraet_id"`
	Date        Date            `json:"datum"`
	Description string          `json:"beschreibung,omitempty"`
	Cost        decimal.Decimal `json:"kosten"`
}

// MeterReading (Zählerstand) lectura del horómetro.
type MeterReading struct {
	ID       int64     `json:"id,omitempty"`
	DeviceID int64     `json:"geraet_id"`
	At       time.Time `json:"zeitpunkt"`
	Hours    float64   `json:"stunden"`
}
