package dto

import "github.com/jhoicas/mietpark-admin/internal/domain/entity"

// RentalRow alquiler con nombres de equipo y cliente resueltos.
type RentalRow struct {
	Rental       entity.Rental `json:"vermietung"`
	DeviceLabel  string        `json:"geraet"`
	CustomerName string        `json:"kunde"`
}

// RentalDetail panel de la Vermietung seleccionada. Facturas y Abrechnung se
// cargan por separado; un fallo en una no impide mostrar la otra.
type RentalDetail struct {
	Row             RentalRow          `json:"vermietung"`
	Invoices        []entity.Invoice   `json:"rechnungen"`
	InvoicesError   string             `json:"rechnungen_fehler,omitempty"`
	Settlement      *entity.Settlement `json:"abrechnung"`
	SettlementError string             `json:"abrechnung_fehler,omitempty"`
}
