package entity

// Company (Firma) es la empresa propietaria de los equipos.
type Company struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	TaxID   string `json:"ust_id,omitempty"` // USt-IdNr.
	Address string `json:"adresse,omitempty"`
}

// GetID implementa listing.Identifiable.
func (c Company) GetID() int64 { return c.ID }

// RentalPark (Mietpark) es un depósito físico donde se almacenan los equipos.
type RentalPark struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"adresse,omitempty"`
}

// GetID implementa listing.Identifiable.
func (p RentalPark) GetID() int64 { return p.ID }
