package entity

import "github.com/shopspring/decimal"

// PositionType tipo de posición adicional de un alquiler.
type PositionType string

const (
	PositionAssembly   PositionType = "MONTAGE"
	PositionSparePart  PositionType = "ERSATZTEIL"
	PositionServiceFee PositionType = "SERVICEPAUSCHALE"
	PositionInsurance  PositionType = "VERSICHERUNG"
	PositionOther      PositionType = "SONSTIGES"
)

// PositionTypes en el orden del formulario.
var PositionTypes = []PositionType{
	PositionAssembly, PositionSparePart, PositionServiceFee, PositionInsurance, PositionOther,
}

// Valid indica si t es un tipo conocido.
func (t PositionType) Valid() bool {
	for _, known := range PositionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RentalPosition cargo adicional (montaje, repuesto...) asociado a una Vermietung.
type RentalPosition struct {
	ID           int64           `json:"id,omitempty"`
	RentalID     int64           `json:"vermietung_id"`
	Type         PositionType    `json:"typ"`
	Quantity     decimal.Decimal `json:"menge"`
	UnitPrice    decimal.Decimal `json:"vk_einzelpreis"`
	InternalCost decimal.Decimal `json:"kosten_intern"`
}
