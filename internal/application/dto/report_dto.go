package dto

import "github.com/jhoicas/mietpark-admin/internal/domain/entity"

// UtilizationRow Auslastung de un equipo con su etiqueta.
type UtilizationRow struct {
	entity.UtilizationItem
	DeviceLabel string `json:"geraet"`
}

// UtilizationView respuesta de POST /api/berichte/auslastung.
type UtilizationView struct {
	Query        entity.UtilizationQuery `json:"abfrage"`
	Rows         []UtilizationRow        `json:"items"`
	FleetPercent float64                 `json:"flotte_auslastung_prozent"`
}

// UtilizationRequest cuerpo de POST /api/berichte/auslastung. geraet_id nulo = toda la flota.
type UtilizationRequest struct {
	From     string `json:"von"`
	To       string `json:"bis"`
	DeviceID *int64 `json:"geraet_id"`
}
