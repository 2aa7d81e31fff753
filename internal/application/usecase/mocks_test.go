package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// MockCompanyRepo
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Company), args.Error(1)
}
func (m *MockCompanyRepo) Create(ctx context.Context, c entity.Company) (*entity.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, id int64, c entity.Company) (*entity.Company, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockParkRepo
type MockParkRepo struct {
	mock.Mock
}

func (m *MockParkRepo) List(ctx context.Context) ([]entity.RentalPark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RentalPark), args.Error(1)
}
func (m *MockParkRepo) Create(ctx context.Context, p entity.RentalPark) (*entity.RentalPark, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RentalPark), args.Error(1)
}
func (m *MockParkRepo) Update(ctx context.Context, id int64, p entity.RentalPark) (*entity.RentalPark, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RentalPark), args.Error(1)
}
func (m *MockParkRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Create(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, id int64, c entity.Customer) (*entity.Customer, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

// MockDeviceRepo
type MockDeviceRepo struct {
	mock.Mock
}

func (m *MockDeviceRepo) List(ctx context.Context, filter entity.DeviceFilter, skip, limit int) ([]entity.Device, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Device), args.Error(1)
}
func (m *MockDeviceRepo) Count(ctx context.Context, filter entity.DeviceFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
func (m *MockDeviceRepo) GetByID(ctx context.Context, id int64) (*entity.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Device), args.Error(1)
}
func (m *MockDeviceRepo) Create(ctx context.Context, d entity.Device) (*entity.Device, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Device), args.Error(1)
}
func (m *MockDeviceRepo) Update(ctx context.Context, id int64, d entity.Device) (*entity.Device, error) {
	args := m.Called(ctx, id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Device), args.Error(1)
}
func (m *MockDeviceRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) ListMaintenance(ctx context.Context) ([]entity.Maintenance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) CreateMaintenance(ctx context.Context, w entity.Maintenance) (*entity.Maintenance, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) CreateMeterReading(ctx context.Context, r entity.MeterReading) (*entity.MeterReading, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MeterReading), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) List(ctx context.Context) ([]entity.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Rental), args.Error(1)
}
func (m *MockRentalRepo) Create(ctx context.Context, r entity.Rental) (*entity.Rental, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rental), args.Error(1)
}
func (m *MockRentalRepo) Start(ctx context.Context, id int64) (*entity.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rental), args.Error(1)
}
func (m *MockRentalRepo) Close(ctx context.Context, id int64, end *entity.Date) (*entity.Rental, error) {
	args := m.Called(ctx, id, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rental), args.Error(1)
}
func (m *MockRentalRepo) AddPosition(ctx context.Context, p entity.RentalPosition) (*entity.RentalPosition, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RentalPosition), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) SearchByNumber(ctx context.Context, number string) ([]entity.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) SetPaid(ctx context.Context, id int64, paid bool) (*entity.Invoice, error) {
	args := m.Called(ctx, id, paid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Utilization(ctx context.Context, q entity.UtilizationQuery) (*entity.UtilizationReport, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UtilizationReport), args.Error(1)
}
func (m *MockReportRepo) Settlement(ctx context.Context, rentalID int64) (*entity.Settlement, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settlement), args.Error(1)
}
func (m *MockReportRepo) DeviceFinance(ctx context.Context, deviceID int64, from, to *entity.Date) (*entity.DeviceFinance, error) {
	args := m.Called(ctx, deviceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeviceFinance), args.Error(1)
}
