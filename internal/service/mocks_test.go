package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

// MockCylinderRepo
type MockCylinderRepo struct {
	mock.Mock
}

func (m *MockCylinderRepo) Create(ctx context.Context, c *domain.Cylinder) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCylinderRepo) CreateBatch(ctx context.Context, cs []*domain.Cylinder) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}
func (m *MockCylinderRepo) GetByID(ctx context.Context, id int32) (*domain.Cylinder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cylinder), args.Error(1)
}
func (m *MockCylinderRepo) GetBySerial(ctx context.Context, serial string) (*domain.Cylinder, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cylinder), args.Error(1)
}
func (m *MockCylinderRepo) ExistingSerials(ctx context.Context, serials []string) ([]string, error) {
	args := m.Called(ctx, serials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockCylinderRepo) Update(ctx context.Context, c *domain.Cylinder) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCylinderRepo) UpdateHolderBatch(ctx context.Context, ids []int32, status domain.CylinderStatus, holderType domain.HolderType, holderID *int32, location string) (int64, error) {
	args := m.Called(ctx, ids, status, holderType, holderID, location)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCylinderRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCylinderRepo) List(ctx context.Context, filter repository.CylinderFilter, page, pageSize int32) ([]domain.Cylinder, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Cylinder), args.Get(1).(int32), args.Error(2)
}
func (m *MockCylinderRepo) ListByHolder(ctx context.Context, memberID int32) ([]domain.Cylinder, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cylinder), args.Error(1)
}
func (m *MockCylinderRepo) ListByStatus(ctx context.Context, status domain.CylinderStatus) ([]domain.Cylinder, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cylinder), args.Error(1)
}
func (m *MockCylinderRepo) StockLevels(ctx context.Context) ([]repository.StockLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StockLevel), args.Error(1)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, mb *domain.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Update(ctx context.Context, mb *domain.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}
func (m *MockMemberRepo) List(ctx context.Context, status domain.MemberStatus, query string, page, pageSize int32) ([]domain.Member, int32, error) {
	args := m.Called(ctx, status, query, page, pageSize)
	return args.Get(0).([]domain.Member), args.Get(1).(int32), args.Error(2)
}
func (m *MockMemberRepo) ListByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) CreateBatch(ctx context.Context, txs []*domain.Transaction) error {
	args := m.Called(ctx, txs)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) LatestRentalOut(ctx context.Context, cylinderID, memberID int32) (*domain.Transaction, error) {
	args := m.Called(ctx, cylinderID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListUnpaidByMember(ctx context.Context, memberID int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) MarkPaid(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
func (m *MockTransactionRepo) List(ctx context.Context, filter repository.TransactionFilter, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}

// MockPriceRepo
type MockPriceRepo struct {
	mock.Mock
}

func (m *MockPriceRepo) GetBasePrice(ctx context.Context, gas domain.GasType, size domain.CylinderSize) (*domain.BasePrice, error) {
	args := m.Called(ctx, gas, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BasePrice), args.Error(1)
}
func (m *MockPriceRepo) UpsertBasePrice(ctx context.Context, p *domain.BasePrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPriceRepo) ListBasePrices(ctx context.Context) ([]domain.BasePrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BasePrice), args.Error(1)
}
func (m *MockPriceRepo) DeleteBasePrice(ctx context.Context, gas domain.GasType, size domain.CylinderSize) error {
	args := m.Called(ctx, gas, size)
	return args.Error(0)
}
func (m *MockPriceRepo) GetMemberPrice(ctx context.Context, memberID int32, gas domain.GasType, size domain.CylinderSize) (*domain.MemberPrice, error) {
	args := m.Called(ctx, memberID, gas, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberPrice), args.Error(1)
}
func (m *MockPriceRepo) UpsertMemberPrice(ctx context.Context, p *domain.MemberPrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPriceRepo) ListMemberPrices(ctx context.Context, memberID int32) ([]domain.MemberPrice, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberPrice), args.Error(1)
}
func (m *MockPriceRepo) DeleteMemberPrice(ctx context.Context, memberID int32, gas domain.GasType, size domain.CylinderSize) error {
	args := m.Called(ctx, memberID, gas, size)
	return args.Error(0)
}

// MockStationRepo
type MockStationRepo struct {
	mock.Mock
}

func (m *MockStationRepo) Create(ctx context.Context, s *domain.RefillStation) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStationRepo) GetByID(ctx context.Context, id int32) (*domain.RefillStation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefillStation), args.Error(1)
}
func (m *MockStationRepo) List(ctx context.Context) ([]domain.RefillStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RefillStation), args.Error(1)
}
func (m *MockStationRepo) Update(ctx context.Context, s *domain.RefillStation) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStationRepo) UpsertPrice(ctx context.Context, p *domain.StationPrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockStationRepo) ListPrices(ctx context.Context, stationID int32) ([]domain.StationPrice, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StationPrice), args.Error(1)
}
