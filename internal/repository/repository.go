package repository

import (
	"context"
	"time"

	"gasdepot-backend/internal/domain"
)

// CylinderFilter narrows catalog listings. Zero values mean "any".
type CylinderFilter struct {
	Status  domain.CylinderStatus
	GasType domain.GasType
	Size    domain.CylinderSize
	Query   string // matches serial code or last location
}

// TransactionFilter narrows ledger listings. Zero values mean "any".
type TransactionFilter struct {
	Type     domain.TransactionType
	MemberID int32
	From     time.Time
	To       time.Time
}

// StockLevel is the available count for a (gas type, size) pair.
type StockLevel struct {
	GasType   domain.GasType
	Size      domain.CylinderSize
	Available int32
}

type CylinderRepository interface {
	Create(ctx context.Context, c *domain.Cylinder) error
	CreateBatch(ctx context.Context, cs []*domain.Cylinder) error
	GetByID(ctx context.Context, id int32) (*domain.Cylinder, error)
	GetBySerial(ctx context.Context, serial string) (*domain.Cylinder, error)
	ExistingSerials(ctx context.Context, serials []string) ([]string, error)
	Update(ctx context.Context, c *domain.Cylinder) error
	// UpdateHolderBatch moves every listed cylinder to the given status and
	// holder in one statement and returns the number of rows written.
	UpdateHolderBatch(ctx context.Context, ids []int32, status domain.CylinderStatus, holderType domain.HolderType, holderID *int32, location string) (int64, error)
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter CylinderFilter, page, pageSize int32) ([]domain.Cylinder, int32, error)
	ListByHolder(ctx context.Context, memberID int32) ([]domain.Cylinder, error)
	ListByStatus(ctx context.Context, status domain.CylinderStatus) ([]domain.Cylinder, error)
	StockLevels(ctx context.Context) ([]StockLevel, error)
}

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	List(ctx context.Context, status domain.MemberStatus, query string, page, pageSize int32) ([]domain.Member, int32, error)
	ListByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	// CreateBatch appends all entries in one round trip; the ledger is
	// append-only, so this is the only multi-row write.
	CreateBatch(ctx context.Context, txs []*domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Transaction, error)
	// LatestRentalOut returns the most recent rental-out entry for the
	// (cylinder, member) pair by business timestamp.
	LatestRentalOut(ctx context.Context, cylinderID, memberID int32) (*domain.Transaction, error)
	ListUnpaidByMember(ctx context.Context, memberID int32) ([]domain.Transaction, error)
	MarkPaid(ctx context.Context, ids []int64) error
	List(ctx context.Context, filter TransactionFilter, page, pageSize int32) ([]domain.Transaction, int32, error)
}

type PriceRepository interface {
	GetBasePrice(ctx context.Context, gas domain.GasType, size domain.CylinderSize) (*domain.BasePrice, error)
	UpsertBasePrice(ctx context.Context, p *domain.BasePrice) error
	ListBasePrices(ctx context.Context) ([]domain.BasePrice, error)
	DeleteBasePrice(ctx context.Context, gas domain.GasType, size domain.CylinderSize) error

	GetMemberPrice(ctx context.Context, memberID int32, gas domain.GasType, size domain.CylinderSize) (*domain.MemberPrice, error)
	UpsertMemberPrice(ctx context.Context, p *domain.MemberPrice) error
	ListMemberPrices(ctx context.Context, memberID int32) ([]domain.MemberPrice, error)
	DeleteMemberPrice(ctx context.Context, memberID int32, gas domain.GasType, size domain.CylinderSize) error
}

type RefillStationRepository interface {
	Create(ctx context.Context, s *domain.RefillStation) error
	GetByID(ctx context.Context, id int32) (*domain.RefillStation, error)
	List(ctx context.Context) ([]domain.RefillStation, error)
	Update(ctx context.Context, s *domain.RefillStation) error
	Delete(ctx context.Context, id int32) error

	UpsertPrice(ctx context.Context, p *domain.StationPrice) error
	ListPrices(ctx context.Context, stationID int32) ([]domain.StationPrice, error)
}
