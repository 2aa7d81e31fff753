package form

import (
	"strings"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// CompanyDraft borrador del modal de Firma.
type CompanyDraft struct {
	Name    string `form:"name" json:"name"`
	TaxID   string `form:"ust_id" json:"ust_id"`
	Address string `form:"adresse" json:"adresse"`
}

// CompanyDraftFrom siembra el borrador de edición.
func CompanyDraftFrom(c entity.Company) CompanyDraft {
	return CompanyDraft{Name: c.Name, TaxID: c.TaxID, Address: c.Address}
}

// Validate devuelve la entidad lista para enviar.
func (d CompanyDraft) Validate() (entity.Company, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return entity.Company{}, invalid(MsgNameRequired)
	}
	return entity.Company{
		Name:    name,
		TaxID:   strings.TrimSpace(d.TaxID),
		Address: strings.TrimSpace(d.Address),
	}, nil
}

// ParkDraft borrador del modal de Mietpark.
type ParkDraft struct {
	Name    string `form:"name" json:"name"`
	Address string `form:"adresse" json:"adresse"`
}

// ParkDraftFrom siembra el borrador de edición.
func ParkDraftFrom(p entity.RentalPark) ParkDraft {
	return ParkDraft{Name: p.Name, Address: p.Address}
}

func (d ParkDraft) Validate() (entity.RentalPark, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return entity.RentalPark{}, invalid(MsgNameRequired)
	}
	return entity.RentalPark{Name: name, Address: strings.TrimSpace(d.Address)}, nil
}

// CustomerDraft borrador del modal de Kunde.
type CustomerDraft struct {
	Name    string `form:"name" json:"name"`
	Address string `form:"adresse" json:"adresse"`
	TaxID   string `form:"ust_id" json:"ust_id"`
}

// CustomerDraftFrom siembra el borrador de edición.
func CustomerDraftFrom(c entity.Customer) CustomerDraft {
	return CustomerDraft{Name: c.Name, Address: c.Address, TaxID: c.TaxID}
}

func (d CustomerDraft) Validate() (entity.Customer, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return entity.Customer{}, invalid(MsgNameRequired)
	}
	return entity.Customer{
		Name:    name,
		Address: strings.TrimSpace(d.Address),
		TaxID:   strings.TrimSpace(d.TaxID),
	}, nil
}
