package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// DeviceDraft borrador del modal de Gerät. Todos los campos llegan como texto
// del formulario; Validate los convierte.
type DeviceDraft struct {
	Name          string `form:"name" json:"name"`
	Category      string `form:"kategorie" json:"kategorie"`
	Model         string `form:"modell" json:"modell"`
	SerialNumber  string `form:"seriennummer" json:"seriennummer"`
	Status        string `form:"status" json:"status"`
	Location      string `form:"standort_typ" json:"standort_typ"`
	HourCounter   string `form:"stundenzaehler" json:"stundenzaehler"`
	PurchasePrice string `form:"anschaffungspreis" json:"anschaffungspreis"`
	PurchaseDate  string `form:"anschaffungsdatum" json:"anschaffungsdatum"`
	YearBuilt     string `form:"baujahr" json:"baujahr"`
	RentValue     string `form:"mietpreis_wert" json:"mietpreis_wert"`
	RentUnit      string `form:"mietpreis_einheit" json:"mietpreis_einheit"`
	RentedIn      string `form:"vermietet_in" json:"vermietet_in"`
	CompanyID     string `form:"firma_id" json:"firma_id"`
	ParkID        string `form:"mietpark_id" json:"mietpark_id"`
}

// NewDeviceDraft valores por defecto del alta.
func NewDeviceDraft() DeviceDraft {
	return DeviceDraft{
		Category:    entity.DefaultDeviceCategory,
		Status:      string(entity.DeviceStatusAvailable),
		Location:    string(entity.LocationPark),
		HourCounter: "0",
		RentUnit:    string(entity.RateMonthly),
	}
}

// DeviceDraftFrom siembra el borrador de edición con el equipo existente.
func DeviceDraftFrom(d entity.Device) DeviceDraft {
	draft := DeviceDraft{
		Name:          d.Name,
		Category:      d.Category,
		Model:         d.Model,
		SerialNumber:  d.SerialNumber,
		Status:        string(d.Status),
		Location:      string(d.Location),
		HourCounter:   strconv.FormatFloat(d.HourCounter, 'f', -1, 64),
		PurchasePrice: formatDecimal(d.PurchasePrice),
		RentValue:     formatDecimal(d.RentValue),
		RentUnit:      string(d.RentUnit),
		RentedIn:      d.RentedIn,
		CompanyID:     formatID(d.CompanyID),
	}
	if d.PurchaseDate != nil {
		draft.PurchaseDate = d.PurchaseDate.String()
	}
	if d.YearBuilt != nil {
		draft.YearBuilt = strconv.Itoa(*d.YearBuilt)
	}
	if d.ParkID != nil {
		draft.ParkID = formatID(*d.ParkID)
	}
	if draft.RentUnit == "" {
		draft.RentUnit = string(entity.RateMonthly)
	}
	return draft
}

// Validate aplica las reglas del formulario en orden y devuelve el payload.
// Con standort KUNDE el mietpark se envía nulo; la unidad de precio solo viaja
// si hay precio.
func (d DeviceDraft) Validate() (entity.Device, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return entity.Device{}, invalid(MsgNameRequired)
	}
	companyID, ok := ParseID(d.CompanyID)
	if !ok {
		return entity.Device{}, invalid(MsgCompanyRequired)
	}
	location := entity.LocationKind(strings.TrimSpace(d.Location))
	if location == "" {
		location = entity.LocationPark
	}
	if !location.Valid() {
		return entity.Device{}, invalid(MsgLocationInvalid)
	}
	var parkID *int64
	if location == entity.LocationPark {
		id, ok := ParseID(d.ParkID)
		if !ok {
			return entity.Device{}, invalid(MsgParkRequired)
		}
		parkID = &id
	}

	var yearBuilt *int
	if y := strings.TrimSpace(d.YearBuilt); y != "" {
		if !yearPattern.MatchString(y) {
			return entity.Device{}, invalid(MsgYearFormat)
		}
		n, _ := strconv.Atoi(y)
		yearBuilt = &n
	}

	rentedIn := strings.TrimSpace(d.RentedIn)
	if rentedIn != "" {
		if !countryPattern.MatchString(rentedIn) {
			return entity.Device{}, invalid(MsgCountryFormat)
		}
		rentedIn = strings.ToUpper(rentedIn)
	}

	var rentValue decimal.NullDecimal
	var rentUnit entity.RateUnit
	if p := strings.TrimSpace(d.RentValue); p != "" {
		v, ok := parseNumber(p)
		if !ok {
			return entity.Device{}, invalid(MsgPriceFormat)
		}
		rentValue = decimal.NewNullDecimal(v)
		rentUnit = entity.RateUnit(strings.TrimSpace(d.RentUnit))
		if rentUnit == "" {
			rentUnit = entity.RateMonthly
		}
		if !rentUnit.Valid() {
			return entity.Device{}, invalid(MsgUnitInvalid)
		}
	}

	status := entity.DeviceStatus(strings.TrimSpace(d.Status))
	if status == "" {
		status = entity.DeviceStatusAvailable
	}
	if !status.Valid() {
		return entity.Device{}, invalid(MsgStatusInvalid)
	}

	var hours float64
	if h := strings.TrimSpace(d.HourCounter); h != "" {
		v, ok := parseNumber(h)
		if !ok {
			return entity.Device{}, invalid(MsgHoursFormat)
		}
		hours = v.InexactFloat64()
	}

	var purchasePrice decimal.NullDecimal
	if p := strings.TrimSpace(d.PurchasePrice); p != "" {
		v, ok := parseNumber(p)
		if !ok {
			return entity.Device{}, invalid(MsgPurchaseFormat)
		}
		purchasePrice = decimal.NewNullDecimal(v)
	}
	purchaseDate, err := parseOptionalDate(d.PurchaseDate)
	if err != nil {
		return entity.Device{}, err
	}

	return entity.Device{
		Name:          name,
		Category:      strings.TrimSpace(d.Category),
		Model:         strings.TrimSpace(d.Model),
		SerialNumber:  strings.TrimSpace(d.SerialNumber),
		Status:        status,
		Location:      location,
		HourCounter:   hours,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchaseDate,
		YearBuilt:     yearBuilt,
		RentValue:     rentValue,
		RentUnit:      rentUnit,
		RentedIn:      rentedIn,
		CompanyID:     companyID,
		ParkID:        parkID,
	}, nil
}
