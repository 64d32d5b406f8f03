package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

// unknownRef is the display value for a ledger reference whose cylinder,
// member or station has since been deleted.
const unknownRef = "Unknown"

type ledgerService struct {
	txRepo       repository.TransactionRepository
	cylinderRepo repository.CylinderRepository
	memberRepo   repository.MemberRepository
	stationRepo  repository.RefillStationRepository
	tierDays     []int32
}

func NewLedgerService(
	txRepo repository.TransactionRepository,
	cylinderRepo repository.CylinderRepository,
	memberRepo repository.MemberRepository,
	stationRepo repository.RefillStationRepository,
	tierDays []int32,
) LedgerService {
	return &ledgerService{
		txRepo:       txRepo,
		cylinderRepo: cylinderRepo,
		memberRepo:   memberRepo,
		stationRepo:  stationRepo,
		tierDays:     tierDays,
	}
}

// HeldDuration folds the ledger: whole days since the most recent rental-out
// entry for the (cylinder, member) pair.
func (s *ledgerService) HeldDuration(ctx context.Context, cylinderID, memberID int32, now time.Time) (int32, error) {
	entry, err := s.txRepo.LatestRentalOut(ctx, cylinderID, memberID)
	if err != nil {
		return 0, err
	}
	return domain.DaysBetween(entry.OccurredOn, now), nil
}

func (s *ledgerService) OutstandingBills(ctx context.Context, memberID int32) ([]domain.Transaction, int64, error) {
	bills, err := s.txRepo.ListUnpaidByMember(ctx, memberID)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, b := range bills {
		if b.CostCents != nil {
			total += *b.CostCents
		}
	}
	return bills, total, nil
}

func (s *ledgerService) AuditTrail(ctx context.Context, filter repository.TransactionFilter, query string, page, pageSize int32) ([]AuditEntry, int32, error) {
	txs, total, err := s.txRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]AuditEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, s.joinDisplayFields(ctx, tx))
	}

	// Free-text match runs over the joined display fields of the current
	// page; type/date narrowing already happened in the store.
	if query != "" {
		q := strings.ToLower(query)
		filtered := entries[:0]
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.CylinderCode), q) ||
				strings.Contains(strings.ToLower(e.MemberName), q) ||
				strings.Contains(strings.ToLower(e.StationName), q) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
		total = int32(len(entries))
	}
	return entries, total, nil
}

// joinDisplayFields resolves references softly: a deleted cylinder, member or
// station renders as "Unknown" and never fails the audit read.
func (s *ledgerService) joinDisplayFields(ctx context.Context, tx domain.Transaction) AuditEntry {
	e := AuditEntry{Transaction: tx}
	if tx.CylinderID != nil {
		if cyl, err := s.cylinderRepo.GetByID(ctx, *tx.CylinderID); err == nil {
			e.CylinderCode = cyl.SerialCode
		} else if errors.Is(err, domain.ErrNotFound) {
			e.CylinderCode = unknownRef
		}
	}
	if tx.MemberID != nil {
		if m, err := s.memberRepo.GetByID(ctx, *tx.MemberID); err == nil {
			e.MemberName = m.CompanyName
		} else if errors.Is(err, domain.ErrNotFound) {
			e.MemberName = unknownRef
		}
	}
	if tx.StationID != nil {
		if st, err := s.stationRepo.GetByID(ctx, *tx.StationID); err == nil {
			e.StationName = st.Name
		} else if errors.Is(err, domain.ErrNotFound) {
			e.StationName = unknownRef
		}
	}
	return e
}

// HoldReport lists every currently rented cylinder with its held duration and
// the highest reporting tier the duration has crossed.
func (s *ledgerService) HoldReport(ctx context.Context, now time.Time) ([]HoldStatus, error) {
	rented, err := s.cylinderRepo.ListByStatus(ctx, domain.CylinderStatusRented)
	if err != nil {
		return nil, err
	}

	var out []HoldStatus
	for _, cyl := range rented {
		if cyl.HolderID == nil {
			continue
		}
		days, err := s.HeldDuration(ctx, cyl.ID, *cyl.HolderID, now)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Rented status with no rental-out entry: the documented
				// partial-failure gap. Surface the hold with zero days.
				days = 0
			} else {
				return nil, err
			}
		}
		out = append(out, HoldStatus{
			Cylinder: cyl,
			MemberID: *cyl.HolderID,
			HeldDays: days,
			TierDays: s.tierFor(days),
		})
	}
	return out, nil
}

func (s *ledgerService) tierFor(days int32) int32 {
	var tier int32
	for _, t := range s.tierDays {
		if days >= t && t > tier {
			tier = t
		}
	}
	return tier
}
