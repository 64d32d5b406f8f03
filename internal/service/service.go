package service

import (
	"context"
	"io"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

// PriceQuote is a resolved unit price. Missing marks the fail-open zero path:
// no base or custom price existed, the rental went through anyway, and the
// operator needs to hear about it.
type PriceQuote struct {
	UnitPriceCents int64 `json:"unit_price_cents"`
	IsCustom       bool  `json:"is_custom"`
	Missing        bool  `json:"missing"`
}

// RentalQuote is an operator-facing preview of a multi-item rental.
type RentalQuote struct {
	Items      []QuotedItem `json:"items"`
	TotalCents int64        `json:"total_cents"`
	AnyMissing bool         `json:"any_missing"`
}

type QuotedItem struct {
	CylinderID int32      `json:"cylinder_id"`
	SerialCode string     `json:"serial_code"`
	Quote      PriceQuote `json:"quote"`
}

type PricingService interface {
	ResolvePrice(ctx context.Context, cylinder *domain.Cylinder, memberID int32) (PriceQuote, error)
	QuoteRental(ctx context.Context, cylinderIDs []int32, memberID int32) (*RentalQuote, error)
}

// ImportResult reports a CSV bulk import: how many rows were created and
// which were rejected with the reason.
type ImportResult struct {
	Created  int32         `json:"created"`
	Rejected []RejectedRow `json:"rejected,omitempty"`
}

type RejectedRow struct {
	Line   int    `json:"line"`
	Serial string `json:"serial,omitempty"`
	Reason string `json:"reason"`
}

type CylinderService interface {
	AddCylinder(ctx context.Context, c *domain.Cylinder) error
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
	GetCylinder(ctx context.Context, id int32) (*domain.Cylinder, error)
	GetBySerial(ctx context.Context, serial string) (*domain.Cylinder, error)
	ListCylinders(ctx context.Context, filter repository.CylinderFilter, page, pageSize int32) ([]domain.Cylinder, int32, error)
	// AdminUpdate is the catalog-edit path: it bypasses the status machine
	// entirely and writes whatever the operator set.
	AdminUpdate(ctx context.Context, c *domain.Cylinder) error
	DeleteCylinder(ctx context.Context, id int32) error
	MarkDamaged(ctx context.Context, id int32, clearHolder bool) (*domain.Cylinder, error)

	SendToRefill(ctx context.Context, ids []int32, stationID int32) ([]domain.Transaction, error)
	ReceiveFromRefill(ctx context.Context, ids []int32, stationID int32) ([]domain.Transaction, error)
	DispatchForDelivery(ctx context.Context, ids []int32) ([]domain.Transaction, error)

	StockLevels(ctx context.Context) ([]repository.StockLevel, error)
}

// HoldStatus is the derived view of a currently rented cylinder: how long the
// member has had it and which reporting tier that lands in.
type HoldStatus struct {
	Cylinder domain.Cylinder `json:"cylinder"`
	MemberID int32           `json:"member_id"`
	HeldDays int32           `json:"held_days"`
	TierDays int32           `json:"tier_days"` // highest threshold crossed, 0 if none
}

// AuditEntry is a ledger row joined with display names; dangling references
// render as "Unknown" rather than failing.
type AuditEntry struct {
	Transaction  domain.Transaction `json:"transaction"`
	CylinderCode string             `json:"cylinder_code,omitempty"`
	MemberName   string             `json:"member_name,omitempty"`
	StationName  string             `json:"station_name,omitempty"`
}

type LedgerService interface {
	HeldDuration(ctx context.Context, cylinderID, memberID int32, now time.Time) (int32, error)
	OutstandingBills(ctx context.Context, memberID int32) ([]domain.Transaction, int64, error)
	AuditTrail(ctx context.Context, filter repository.TransactionFilter, query string, page, pageSize int32) ([]AuditEntry, int32, error)
	HoldReport(ctx context.Context, now time.Time) ([]HoldStatus, error)
}

// DepositCounts is the per-item deposit schedule input at onboarding: how
// many cylinders of each size class the new member takes a deposit slot for.
type DepositCounts struct {
	Small  int32 `json:"small"`
	Medium int32 `json:"medium"`
	Large  int32 `json:"large"`
}

// RefundStatus is the recomputed-on-every-read view of a pending exit.
type RefundStatus struct {
	Eligible    bool  `json:"eligible"`
	DaysLeft    int32 `json:"days_left"`
	PayoutCents int64 `json:"payout_cents"`
}

type MemberService interface {
	// Onboard creates a member. When carriedOverCents is nil the initial
	// deposit comes from the fixed per-item schedule; otherwise the given
	// value is used as-is (returning members).
	Onboard(ctx context.Context, m *domain.Member, counts DepositCounts, carriedOverCents *int64) error
	GetMember(ctx context.Context, id int32) (*domain.Member, error)
	UpdateMember(ctx context.Context, m *domain.Member) error
	ListMembers(ctx context.Context, status domain.MemberStatus, query string, page, pageSize int32) ([]domain.Member, int32, error)

	PayDebt(ctx context.Context, memberID int32, amountCents int64, settleTxIDs []int64) (*domain.Transaction, error)
	RequestExit(ctx context.Context, memberID int32, now time.Time) (*domain.Member, error)
	RefundStatus(ctx context.Context, memberID int32, now time.Time) (*RefundStatus, error)
	ConfirmRefund(ctx context.Context, memberID int32, now time.Time) (*domain.Transaction, error)
}

type RentalService interface {
	// CompileAndApply expands one operator submission (any mix of rented-out
	// and returned cylinders) into cylinder transitions, ledger entries and
	// the member debt mutation, and returns the appended entries.
	CompileAndApply(ctx context.Context, memberID int32, rentIDs, returnIDs []int32, totalRentCostCents int64, isUnpaid bool) ([]domain.Transaction, error)
}

type StationService interface {
	CreateStation(ctx context.Context, s *domain.RefillStation) error
	GetStation(ctx context.Context, id int32) (*domain.RefillStation, error)
	ListStations(ctx context.Context) ([]domain.RefillStation, error)
	UpdateStation(ctx context.Context, s *domain.RefillStation) error
	DeleteStation(ctx context.Context, id int32) error
	SetStationPrice(ctx context.Context, p *domain.StationPrice) error
	ListStationPrices(ctx context.Context, stationID int32) ([]domain.StationPrice, error)
}

// HoldAlertItem is one line of the long-hold operator email.
type HoldAlertItem struct {
	SerialCode  string
	CompanyName string
	HeldDays    int32
}

// StockAlertItem is one line of the low-stock operator email.
type StockAlertItem struct {
	GasType   domain.GasType
	Size      domain.CylinderSize
	Available int32
}

// RefundAlertItem is one line of the refund-ready operator email.
type RefundAlertItem struct {
	CompanyName string
	PayoutCents int64
}

type EmailService interface {
	SendLongHoldAlert(ctx context.Context, to string, items []HoldAlertItem) error
	SendLowStockAlert(ctx context.Context, to string, items []StockAlertItem) error
	SendRefundReadyAlert(ctx context.Context, to string, items []RefundAlertItem) error
}
