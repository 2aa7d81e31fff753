package form

import (
	"strings"
	"time"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// MaintenanceDraft borrador de una Wartung.
type MaintenanceDraft struct {
	Date        string `form:"datum" json:"datum"`
	Description string `form:"beschreibung" json:"beschreibung"`
	Cost        string `form:"kosten" json:"kosten"`
}

func (d MaintenanceDraft) Validate(deviceID int64) (entity.Maintenance, error) {
	if strings.TrimSpace(d.Date) == "" {
		return entity.Maintenance{}, invalid(MsgDateFormat)
	}
	date, err := entity.ParseDate(strings.TrimSpace(d.Date))
	if err != nil {
		return entity.Maintenance{}, invalid(MsgDateFormat)
	}
	cost, ok := parseNumber(orZero(d.Cost))
	if !ok {
		return entity.Maintenance{}, invalid(MsgAmountFormat)
	}
	return entity.Maintenance{
		DeviceID:    deviceID,
		Date:        date,
		Description: strings.TrimSpace(d.Description),
		Cost:        cost,
	}, nil
}

// MeterDraft borrador de un Zählerstand. Sin zeitpunkt se usa now.
type MeterDraft struct {
	At    string `form:"zeitpunkt" json:"zeitpunkt"`
	Hours string `form:"stunden" json:"stunden"`
}

// meterLayouts formatos aceptados para zeitpunkt (input datetime-local y RFC 3339).
var meterLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339}

func (d MeterDraft) Validate(deviceID int64, now time.Time) (entity.MeterReading, error) {
	hours, ok := parseNumber(d.Hours)
	if !ok {
		return entity.MeterReading{}, invalid(MsgHoursFormat)
	}
	at := now
	if raw := strings.TrimSpace(d.At); raw != "" {
		parsed, err := parseDateTime(raw)
		if err != nil {
			return entity.MeterReading{}, invalid(MsgDateFormat)
		}
		at = parsed
	}
	return entity.MeterReading{DeviceID: deviceID, At: at, Hours: hours.InexactFloat64()}, nil
}

func parseDateTime(s string) (time.Time, error) {
	var err error
	for _, layout := range meterLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// UtilizationDraft formulario de Berichte: Gerät-ID vacío = toda la flota.
type UtilizationDraft struct {
	From     string `form:"von" json:"von" query:"von"`
	To       string `form:"bis" json:"bis" query:"bis"`
	DeviceID string `form:"geraet_id" json:"geraet_id" query:"geraet_id"`
}

func (d UtilizationDraft) Validate() (entity.UtilizationQuery, error) {
	from, to, err := parseRange(d.From, d.To)
	if err != nil {
		return entity.UtilizationQuery{}, err
	}
	q := entity.UtilizationQuery{From: from, To: to}
	if raw := strings.TrimSpace(d.DeviceID); raw != "" {
		id, ok := ParseID(raw)
		if !ok {
			return entity.UtilizationQuery{}, invalid(MsgDeviceIDFormat)
		}
		q.DeviceID = &id
	}
	return q, nil
}

// RangeDraft rango von/bis de la vista de Einnahmen.
type RangeDraft struct {
	From string `form:"von" query:"von" json:"von"`
	To   string `form:"bis" query:"bis" json:"bis"`
}

// RevenueDefaultFrom inicio por defecto del rango de Einnahmen.
var RevenueDefaultFrom = entity.NewDate(2025, time.January, 1)

// Validate completa los valores vacíos con 2025-01-01 .. today.
func (d RangeDraft) Validate(today entity.Date) (entity.Date, entity.Date, error) {
	from, to := strings.TrimSpace(d.From), strings.TrimSpace(d.To)
	if from == "" {
		from = RevenueDefaultFrom.String()
	}
	if to == "" {
		to = today.String()
	}
	return parseRange(from, to)
}

func parseRange(rawFrom, rawTo string) (entity.Date, entity.Date, error) {
	rawFrom, rawTo = strings.TrimSpace(rawFrom), strings.TrimSpace(rawTo)
	if rawFrom == "" || rawTo == "" {
		return entity.Date{}, entity.Date{}, invalid(MsgRangeRequired)
	}
	from, err := entity.ParseDate(rawFrom)
	if err != nil {
		return entity.Date{}, entity.Date{}, invalid(MsgDateFormat)
	}
	to, err := entity.ParseDate(rawTo)
	if err != nil {
		return entity.Date{}, entity.Date{}, invalid(MsgDateFormat)
	}
	if to.Before(from) {
		return entity.Date{}, entity.Date{}, invalid(MsgRangeOrder)
	}
	return from, to, nil
}

// ParseDeviceFilter valida los filtros del listado de equipos; vacío = sin filtro.
func ParseDeviceFilter(status, location string) (entity.DeviceFilter, error) {
	f := entity.DeviceFilter{
		Status:   entity.DeviceStatus(strings.TrimSpace(status)),
		Location: entity.LocationKind(strings.TrimSpace(location)),
	}
	if f.Status != "" && !f.Status.Valid() {
		return entity.DeviceFilter{}, invalid(MsgStatusInvalid)
	}
	if f.Location != "" && !f.Location.Valid() {
		return entity.DeviceFilter{}, invalid(MsgLocationInvalid)
	}
	return f, nil
}
