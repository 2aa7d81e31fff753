package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DeviceStatus estado operativo de un equipo (valores del backend).
type DeviceStatus string

const (
	DeviceStatusAvailable   DeviceStatus = "VERFUEGBAR"
	DeviceStatusRented      DeviceStatus = "VERMIETET"
	DeviceStatusMaintenance DeviceStatus = "WARTUNG"
	DeviceStatusRetired     DeviceStatus = "AUSGEMUSTERT"
)

// DeviceStatuses en el orden en que se ofrecen en los filtros.
var DeviceStatuses = []DeviceStatus{
	DeviceStatusAvailable, DeviceStatusRented, DeviceStatusMaintenance, DeviceStatusRetired,
}

// Valid indica si s es uno de los estados conocidos.
func (s DeviceStatus) Valid() bool {
	for _, known := range DeviceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// LocationKind indica dónde está el equipo.
type LocationKind string

const (
	LocationPark     LocationKind = "MIETPARK"
	LocationCustomer LocationKind = "KUNDE"
)

// LocationKinds en el orden de los filtros.
var LocationKinds = []LocationKind{LocationPark, LocationCustomer}

// Valid indica si k es un tipo de ubicación conocido.
func (k LocationKind) Valid() bool {
	return k == LocationPark || k == LocationCustomer
}

// RateUnit unidad de una tarifa de alquiler.
type RateUnit string

const (
	RateDaily   RateUnit = "TAEGLICH"
	RateWeekly  RateUnit = "WOECHENTLICH"
	RateMonthly RateUnit = "MONATLICH"
)

// RateUnits en el orden de los formularios.
var RateUnits = []RateUnit{RateDaily, RateWeekly, RateMonthly}

// Valid indica si u es una unidad conocida.
func (u RateUnit) Valid() bool {
	return u == RateDaily || u == RateWeekly || u == RateMonthly
}

// DeviceCategories categorías ofrecidas al crear un equipo.
var DeviceCategories = []string{
	"Bohrgerät",
	"Bagger & Bohrlafette",
	"Kompressor",
	"Injektionstechnik",
	"Pumpe",
	"Datenlogger",
	"LiPAD",
}

// DefaultDeviceCategory categoría preseleccionada en el alta.
const DefaultDeviceCategory = "Kompressor"

// Device (Gerät) es un equipo de la flota.
//
// Invariante del backend: Location == LocationPark implica ParkID != nil;
// LocationCustomer implica ParkID == nil.
type Device struct {
	ID            int64               `json:"id,omitempty"`
	Name          string              `json:"name"`
	Category      string              `json:"kategorie,omitempty"`
	Model         string              `json:"modell,omitempty"`
	SerialNumber  string              `json:"seriennummer,omitempty"`
	Status        DeviceStatus        `json:"status"`
	Location      LocationKind        `json:"standort_typ"`
	HourCounter   float64             `json:"stundenzähler"`
	PurchasePrice decimal.NullDecimal `json:"anschaffungspreis"`
	PurchaseDate  *Date               `json:"anschaffungsdatum"`
	YearBuilt     *int                `json:"baujahr"`
	RentValue     decimal.NullDecimal `json:"mietpreis_wert"`
	RentUnit      RateUnit            `json:"mietpreis_einheit,omitempty"`
	RentedIn      string              `json:"vermietet_in,omitempty"` // ISO-3166-1 alpha-2
	CompanyID     int64               `json:"firma_id"`
	ParkID        *int64              `json:"mietpark_id"`
}

// GetID implementa listing.Identifiable.
func (d Device) GetID() int64 { return d.ID }

// Label devuelve "Name (Seriennr.)" si hay número de serie, si no solo el nombre.
func (d Device) Label() string {
	if d.SerialNumber != "" {
		return fmt.Sprintf("%s (%s)", d.Name, d.SerialNumber)
	}
	return d.Name
}

// DeviceFallbackLabel etiqueta para un geraet_id desconocido.
func DeviceFallbackLabel(id int64) string {
	return fmt.Sprintf("Gerät #%d", id)
}

// DeviceFilter filtros del listado y del conteo de equipos. Campos vacíos = sin filtro.
type DeviceFilter struct {
	Status   DeviceStatus
	Location LocationKind
}

// Matches indica si d aparece en un listado con este filtro.
func (f DeviceFilter) Matches(d Device) bool {
	return (f.Status == "" || d.Status == f.Status) &&
		(f.Location == "" || d.Location == f.Location)
}
