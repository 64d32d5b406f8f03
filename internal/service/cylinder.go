package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/repository"
)

type cylinderService struct {
	cylinderRepo repository.CylinderRepository
	txRepo       repository.TransactionRepository
	stationRepo  repository.RefillStationRepository
}

func NewCylinderService(
	cylinderRepo repository.CylinderRepository,
	txRepo repository.TransactionRepository,
	stationRepo repository.RefillStationRepository,
) CylinderService {
	return &cylinderService{
		cylinderRepo: cylinderRepo,
		txRepo:       txRepo,
		stationRepo:  stationRepo,
	}
}

func (s *cylinderService) AddCylinder(ctx context.Context, c *domain.Cylinder) error {
	if c.SerialCode == "" {
		return fmt.Errorf("serial code is required: %w", domain.ErrValidation)
	}
	if !c.GasType.Valid() {
		return fmt.Errorf("unknown gas type %q: %w", c.GasType, domain.ErrValidation)
	}
	if !c.Size.Valid() {
		return fmt.Errorf("unknown size %q: %w", c.Size, domain.ErrValidation)
	}
	if !c.Status.Valid() {
		c.Status = domain.CylinderStatusAvailable
	}
	if c.HolderType == "" {
		c.HolderType = domain.HolderNone
	}
	if c.LastLocation == "" {
		c.LastLocation = domain.WarehouseLocation
	}
	return s.cylinderRepo.Create(ctx, c)
}

func (s *cylinderService) GetCylinder(ctx context.Context, id int32) (*domain.Cylinder, error) {
	return s.cylinderRepo.GetByID(ctx, id)
}

func (s *cylinderService) GetBySerial(ctx context.Context, serial string) (*domain.Cylinder, error) {
	return s.cylinderRepo.GetBySerial(ctx, serial)
}

func (s *cylinderService) ListCylinders(ctx context.Context, filter repository.CylinderFilter, page, pageSize int32) ([]domain.Cylinder, int32, error) {
	return s.cylinderRepo.List(ctx, filter, page, pageSize)
}

func (s *cylinderService) AdminUpdate(ctx context.Context, c *domain.Cylinder) error {
	if !c.GasType.Valid() || !c.Size.Valid() || !c.Status.Valid() {
		return fmt.Errorf("invalid catalog fields: %w", domain.ErrValidation)
	}
	// Catalog edits bypass the state machine; the operator can repair
	// status/holder combinations it cannot reach.
	return s.cylinderRepo.Update(ctx, c)
}

func (s *cylinderService) DeleteCylinder(ctx context.Context, id int32) error {
	// Ledger entries keep the id as a dangling reference; audits render it
	// as "Unknown".
	return s.cylinderRepo.Delete(ctx, id)
}

func (s *cylinderService) MarkDamaged(ctx context.Context, id int32, clearHolder bool) (*domain.Cylinder, error) {
	cyl, err := s.cylinderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cyl.Status = domain.CylinderStatusDamaged
	if clearHolder {
		cyl.HolderType = domain.HolderNone
		cyl.HolderID = nil
	}
	if err := s.cylinderRepo.Update(ctx, cyl); err != nil {
		return nil, err
	}
	return cyl, nil
}

// batchTransition validates every cylinder against its live snapshot, applies
// one batch status write, then appends one ledger entry per cylinder. The
// whole batch transitions or the whole batch fails before any write; a ledger
// write failure after the status write is the documented partial-failure mode
// (status is correct, ledger can be backfilled).
func (s *cylinderService) batchTransition(
	ctx context.Context,
	ids []int32,
	trigger domain.Trigger,
	txType domain.TransactionType,
	holderType domain.HolderType,
	holderID *int32,
	location string,
	stationID *int32,
) ([]domain.Transaction, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty batch: %w", domain.ErrValidation)
	}

	var next domain.CylinderStatus
	for _, id := range ids {
		cyl, err := s.cylinderRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		next, err = domain.NextStatus(cyl.Status, trigger)
		if err != nil {
			return nil, fmt.Errorf("cylinder %s is %s: %w", cyl.SerialCode, cyl.Status, err)
		}
	}

	if _, err := s.cylinderRepo.UpdateHolderBatch(ctx, ids, next, holderType, holderID, location); err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]*domain.Transaction, 0, len(ids))
	for _, id := range ids {
		cid := id
		entries = append(entries, &domain.Transaction{
			Type:       txType,
			OccurredOn: now,
			CylinderID: &cid,
			StationID:  stationID,
		})
	}
	if err := s.txRepo.CreateBatch(ctx, entries); err != nil {
		logger.Error("ledger append failed after status write; ledger needs manual backfill",
			"trigger", trigger, "cylinder_ids", ids, "error", err)
		return nil, err
	}

	out := make([]domain.Transaction, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out, nil
}

func (s *cylinderService) SendToRefill(ctx context.Context, ids []int32, stationID int32) ([]domain.Transaction, error) {
	station, err := s.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}
	sid := station.ID
	return s.batchTransition(ctx, ids, domain.TriggerSendToRefill, domain.TransactionTypeRefillOut,
		domain.HolderStation, &sid, station.Name, &sid)
}

func (s *cylinderService) ReceiveFromRefill(ctx context.Context, ids []int32, stationID int32) ([]domain.Transaction, error) {
	station, err := s.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}
	sid := station.ID
	return s.batchTransition(ctx, ids, domain.TriggerReceiveFromRefill, domain.TransactionTypeRefillIn,
		domain.HolderNone, nil, domain.WarehouseLocation, &sid)
}

func (s *cylinderService) DispatchForDelivery(ctx context.Context, ids []int32) ([]domain.Transaction, error) {
	return s.batchTransition(ctx, ids, domain.TriggerDispatchForDelivery, domain.TransactionTypeDelivery,
		domain.HolderNone, nil, domain.TransitLocation, nil)
}

func (s *cylinderService) StockLevels(ctx context.Context) ([]repository.StockLevel, error) {
	return s.cylinderRepo.StockLevels(ctx)
}

// csvHeader is the required column order for bulk cylinder import.
var csvHeader = []string{"serialCode", "gasType", "size", "status", "lastLocation"}

func (s *cylinderService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := parseImportCSV(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	seen := make(map[string]bool)
	var serials []string
	for _, row := range rows {
		serials = append(serials, row.serial)
	}
	existing, err := s.cylinderRepo.ExistingSerials(ctx, serials)
	if err != nil {
		return nil, err
	}
	inCatalog := make(map[string]bool, len(existing))
	for _, sc := range existing {
		inCatalog[sc] = true
	}

	var accepted []*domain.Cylinder
	for _, row := range rows {
		switch {
		case row.err != "":
			result.Rejected = append(result.Rejected, RejectedRow{Line: row.line, Serial: row.serial, Reason: row.err})
		case seen[row.serial]:
			result.Rejected = append(result.Rejected, RejectedRow{Line: row.line, Serial: row.serial, Reason: "duplicate serial in batch"})
		case inCatalog[row.serial]:
			result.Rejected = append(result.Rejected, RejectedRow{Line: row.line, Serial: row.serial, Reason: "serial already in catalog"})
		default:
			seen[row.serial] = true
			accepted = append(accepted, row.cylinder)
		}
	}

	if len(accepted) > 0 {
		if err := s.cylinderRepo.CreateBatch(ctx, accepted); err != nil {
			return nil, err
		}
		result.Created = int32(len(accepted))
	}
	return result, nil
}
