package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

func validDevice() form.DeviceDraft {
	d := form.NewDeviceDraft()
	d.Name = "Kompressor K1"
	d.CompanyID = "1"
	d.ParkID = "2"
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Stammdaten
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyDraft_NombreObligatorio(t *testing.T) {
	_, err := form.CompanyDraft{Name: "   "}.Validate()
	require.Error(t, err)
	assert.Equal(t, "Name ist Pflicht.", err.Error())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := form.CompanyDraft{Name: " ACME ", TaxID: "DE1"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "ACME", c.Name)
}

func TestParkYCustomerDraft_NombreObligatorio(t *testing.T) {
	_, err := form.ParkDraft{}.Validate()
	assert.EqualError(t, err, form.MsgNameRequired)
	_, err = form.CustomerDraft{}.Validate()
	assert.EqualError(t, err, form.MsgNameRequired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gerät
// ──────────────────────────────────────────────────────────────────────────────

func TestDeviceDraft_Defaults(t *testing.T) {
	d := form.NewDeviceDraft()
	assert.Equal(t, "Kompressor", d.Category)
	assert.Equal(t, "VERFUEGBAR", d.Status)
	assert.Equal(t, "MIETPARK", d.Location)
	assert.Equal(t, "MONATLICH", d.RentUnit)
}

func TestDeviceDraft_Reglas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*form.DeviceDraft)
		want   string
	}{
		{"sin nombre", func(d *form.DeviceDraft) { d.Name = "" }, form.MsgNameRequired},
		{"sin firma", func(d *form.DeviceDraft) { d.CompanyID = "" }, form.MsgCompanyRequired},
		{"mietpark obligatorio", func(d *form.DeviceDraft) { d.ParkID = "" }, form.MsgParkRequired},
		{"baujahr de tres cifras", func(d *form.DeviceDraft) { d.YearBuilt = "202" }, form.MsgYearFormat},
		{"baujahr con letras", func(d *form.DeviceDraft) { d.YearBuilt = "20x1" }, form.MsgYearFormat},
		{"país de tres letras", func(d *form.DeviceDraft) { d.RentedIn = "DEU" }, form.MsgCountryFormat},
		{"precio no numérico", func(d *form.DeviceDraft) { d.RentValue = "abc" }, form.MsgPriceFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDevice()
			tc.mutate(&d)
			_, err := d.Validate()
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestDeviceDraft_NormalizaPayload(t *testing.T) {
	d := validDevice()
	d.RentedIn = "at"
	d.YearBuilt = "2021"
	d.RentValue = "120,50"

	dev, err := d.Validate()
	require.NoError(t, err)
	assert.Equal(t, "AT", dev.RentedIn)
	require.NotNil(t, dev.YearBuilt)
	assert.Equal(t, 2021, *dev.YearBuilt)
	assert.Equal(t, "120.5", dev.RentValue.Decimal.String())
	assert.Equal(t, entity.RateMonthly, dev.RentUnit)
	require.NotNil(t, dev.ParkID)
	assert.Equal(t, int64(2), *dev.ParkID)
}

func TestDeviceDraft_KundeSinMietparkYSinUnidad(t *testing.T) {
	d := validDevice()
	d.Location = "KUNDE"
	d.ParkID = "2"

	dev, err := d.Validate()
	require.NoError(t, err)
	assert.Nil(t, dev.ParkID, "con KUNDE el mietpark viaja nulo")
	assert.False(t, dev.RentValue.Valid)
	assert.Empty(t, dev.RentUnit, "sin precio no se envía unidad")
}

func TestDeviceDraftFrom_IdaYVuelta(t *testing.T) {
	year := 2019
	park := int64(4)
	dev := entity.Device{
		ID: 9, Name: "Pumpe P2", Category: "Pumpe", Status: entity.DeviceStatusMaintenance,
		Location: entity.LocationPark, HourCounter: 12.5, YearBuilt: &year,
		RentedIn: "DE", CompanyID: 3, ParkID: &park,
	}

	again, err := form.DeviceDraftFrom(dev).Validate()
	require.NoError(t, err)
	dev.ID = 0
	assert.Equal(t, dev, again)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vermietung
// ──────────────────────────────────────────────────────────────────────────────

func TestRentalDraft_Defaults(t *testing.T) {
	today := entity.NewDate(2025, time.March, 3)
	d := form.NewRentalDraft(today)
	assert.Equal(t, "2025-03-03", d.From)
	assert.True(t, d.OpenEnded)
	assert.Equal(t, "MONATLICH", d.RateUnit)
}

func TestRentalDraft_Reglas(t *testing.T) {
	base := func() form.RentalDraft {
		d := form.NewRentalDraft(entity.NewDate(2025, time.March, 3))
		d.DeviceID, d.CustomerID = "1", "2"
		return d
	}
	cases := []struct {
		name   string
		mutate func(*form.RentalDraft)
		want   string
	}{
		{"sin equipo", func(d *form.RentalDraft) { d.DeviceID = "" }, form.MsgDeviceRequired},
		{"sin cliente", func(d *form.RentalDraft) { d.CustomerID = "0" }, form.MsgCustomerRequired},
		{"sin von", func(d *form.RentalDraft) { d.From = "" }, form.MsgStartRequired},
		{"sin bis y no abierto", func(d *form.RentalDraft) { d.OpenEnded = false }, form.MsgEndRequired},
		{"bis antes de von", func(d *form.RentalDraft) { d.OpenEnded = false; d.To = "2025-03-02" }, form.MsgEndBeforeStart},
		{"satz no numérico", func(d *form.RentalDraft) { d.RateValue = "viel" }, form.MsgRateFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := base()
			tc.mutate(&d)
			_, err := d.Validate()
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestRentalDraft_AbiertoYCerrado(t *testing.T) {
	d := form.NewRentalDraft(entity.NewDate(2025, time.March, 3))
	d.DeviceID, d.CustomerID = "1", "2"
	d.To = "2025-04-01" // se ignora mientras OpenEnded

	r, err := d.Validate()
	require.NoError(t, err)
	assert.Nil(t, r.To)
	assert.Equal(t, entity.RentalPlanned, r.Status)
	assert.True(t, r.RateValue.IsZero())

	d.OpenEnded = false
	d.To = "2025-03-03"
	r, err = d.Validate()
	require.NoError(t, err, "bis igual a von es válido")
	require.NotNil(t, r.To)
	assert.Equal(t, "2025-03-03", r.To.String())
}

func TestPositionYInvoiceDraft(t *testing.T) {
	p, err := form.NewPositionDraft().Validate(5)
	require.NoError(t, err)
	assert.Equal(t, entity.PositionAssembly, p.Type)
	assert.Equal(t, int64(5), p.RentalID)

	_, err = form.PositionDraft{Type: "RABATT"}.Validate(5)
	assert.EqualError(t, err, form.MsgPositionType)

	_, err = form.InvoiceDraft{Date: "2025-01-01"}.Validate(5)
	assert.EqualError(t, err, form.MsgInvoiceNumber)

	inv, err := form.InvoiceDraft{Number: "R-5", Date: "2025-01-01"}.Validate(5)
	require.NoError(t, err)
	assert.Equal(t, "R-5", inv.Number)
	assert.False(t, inv.Paid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rangos
// ──────────────────────────────────────────────────────────────────────────────

func TestRangeDraft_DefaultsYOrden(t *testing.T) {
	today := entity.NewDate(2025, time.July, 15)

	from, to, err := form.RangeDraft{}.Validate(today)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", from.String())
	assert.Equal(t, "2025-07-15", to.String())

	_, _, err = form.RangeDraft{From: "2025-07-01", To: "2025-06-01"}.Validate(today)
	assert.EqualError(t, err, form.MsgRangeOrder)
}

func TestUtilizationDraft_GeraetOpcional(t *testing.T) {
	q, err := form.UtilizationDraft{From: "2025-06-01", To: "2025-06-30"}.Validate()
	require.NoError(t, err)
	assert.Nil(t, q.DeviceID)

	q, err = form.UtilizationDraft{From: "2025-06-01", To: "2025-06-30", DeviceID: "7"}.Validate()
	require.NoError(t, err)
	require.NotNil(t, q.DeviceID)
	assert.Equal(t, int64(7), *q.DeviceID)

	_, err = form.UtilizationDraft{From: "2025-06-01", To: "2025-06-30", DeviceID: "x"}.Validate()
	assert.EqualError(t, err, form.MsgDeviceIDFormat)

	_, err = form.UtilizationDraft{To: "2025-06-30"}.Validate()
	assert.EqualError(t, err, form.MsgRangeRequired)
}

func TestMeterDraft_SinZeitpunktUsaNow(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	m, err := form.MeterDraft{Hours: "1234,5"}.Validate(3, now)
	require.NoError(t, err)
	assert.Equal(t, now, m.At)
	assert.Equal(t, 1234.5, m.Hours)

	_, err = form.MeterDraft{Hours: ""}.Validate(3, now)
	assert.EqualError(t, err, form.MsgHoursFormat)
}

func TestParseDeviceFilter(t *testing.T) {
	f, err := form.ParseDeviceFilter("VERMIETET", "")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceFilter{Status: entity.DeviceStatusRented}, f)

	_, err = form.ParseDeviceFilter("KAPUTT", "")
	assert.EqualError(t, err, form.MsgStatusInvalid)
	_, err = form.ParseDeviceFilter("", "LAGER")
	assert.EqualError(t, err, form.MsgLocationInvalid)
}
