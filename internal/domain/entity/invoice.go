package entity

// Invoice (Rechnung) asociada a un alquiler. La numeración la decide el usuario/backend.
type Invoice struct {
	ID       int64  `json:"id,omitempty"`
	RentalID int64  `json:"vermietung_id"`
	Number   string `json:"nummer"`
	Date     Date   `json:"datum"`
	Paid     bool   `json:"bezahlt"`
}

// GetID implementa listing.Identifiable.
func (i Invoice) GetID() int64 { return i.ID }
