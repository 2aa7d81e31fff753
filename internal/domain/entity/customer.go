package entity

import "fmt"

// Customer (Kunde) arrienda equipos.
type Customer struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"adresse,omitempty"`
	TaxID   string `json:"ust_id,omitempty"`
}

// GetID implementa listing.Identifiable.
func (c Customer) GetID() int64 { return c.ID }

// CustomerFallbackName etiqueta para un kunde_id que no está en la lista de clientes.
func CustomerFallbackName(id int64) string {
	return fmt.Sprintf("Kunde #%d", id)
}
