package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/repository"
)

type rentalService struct {
	cylinderRepo repository.CylinderRepository
	memberRepo   repository.MemberRepository
	txRepo       repository.TransactionRepository
}

func NewRentalService(
	cylinderRepo repository.CylinderRepository,
	memberRepo repository.MemberRepository,
	txRepo repository.TransactionRepository,
) RentalService {
	return &rentalService{
		cylinderRepo: cylinderRepo,
		memberRepo:   memberRepo,
		txRepo:       txRepo,
	}
}

// CompileAndApply expands one submission into the full set of ledger entries
// and state changes. Writes happen in order: member debt, then cylinder
// statuses, then the ledger batch. The store is not transactional across
// entities, so a failed ledger append leaves correct physical state with a
// ledger gap to backfill manually.
//
// The caller-supplied total is split evenly across rented items rather than
// priced per item; the remainder cents land on the first entry so the ledger
// sums to the charged total.
func (s *rentalService) CompileAndApply(ctx context.Context, memberID int32, rentIDs, returnIDs []int32, totalRentCostCents int64, isUnpaid bool) ([]domain.Transaction, error) {
	if len(rentIDs) == 0 && len(returnIDs) == 0 {
		return nil, fmt.Errorf("nothing to rent or return: %w", domain.ErrValidation)
	}
	if totalRentCostCents < 0 {
		return nil, fmt.Errorf("rent cost must be non-negative: %w", domain.ErrValidation)
	}
	if len(rentIDs) == 0 && totalRentCostCents > 0 {
		return nil, fmt.Errorf("rent cost without rented cylinders: %w", domain.ErrValidation)
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	// Validate both directions against the live snapshots before any write.
	rentCyls := make([]*domain.Cylinder, 0, len(rentIDs))
	for _, id := range rentIDs {
		cyl, err := s.cylinderRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if _, err := domain.NextStatus(cyl.Status, domain.TriggerRentalOut); err != nil {
			return nil, fmt.Errorf("cylinder %s is %s: %w", cyl.SerialCode, cyl.Status, err)
		}
		rentCyls = append(rentCyls, cyl)
	}
	returnCyls := make([]*domain.Cylinder, 0, len(returnIDs))
	for _, id := range returnIDs {
		cyl, err := s.cylinderRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if _, err := domain.NextStatus(cyl.Status, domain.TriggerReturn); err != nil {
			return nil, fmt.Errorf("cylinder %s is %s: %w", cyl.SerialCode, cyl.Status, err)
		}
		if cyl.HolderType != domain.HolderMember || cyl.HolderID == nil || *cyl.HolderID != memberID {
			return nil, fmt.Errorf("cylinder %s: %w", cyl.SerialCode, domain.ErrNotHolder)
		}
		returnCyls = append(returnCyls, cyl)
	}

	now := time.Now()

	// Returned items need their held duration from the ledger before new
	// entries are appended.
	durations := make(map[int32]int32, len(returnCyls))
	for _, cyl := range returnCyls {
		latest, err := s.txRepo.LatestRentalOut(ctx, cyl.ID, memberID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Held with no rental-out on record (imported stock or a
				// prior partial failure). Zero days, soft gap.
				durations[cyl.ID] = 0
				continue
			}
			return nil, err
		}
		durations[cyl.ID] = domain.DaysBetween(latest.OccurredOn, now)
	}

	// Step 1: debt. One ledger-level mutation regardless of item count.
	if isUnpaid && totalRentCostCents > 0 {
		member.DebtCents += totalRentCostCents
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	var entries []*domain.Transaction

	// Step 2: rent-out transitions plus evenly split rental-out entries.
	if len(rentCyls) > 0 {
		mid := memberID
		if _, err := s.cylinderRepo.UpdateHolderBatch(ctx, rentIDs, domain.CylinderStatusRented,
			domain.HolderMember, &mid, member.CompanyName); err != nil {
			return nil, err
		}

		n := int64(len(rentCyls))
		share := totalRentCostCents / n
		remainder := totalRentCostCents % n
		status := domain.PaymentStatusPaid
		if isUnpaid {
			status = domain.PaymentStatusUnpaid
		}
		for i, cyl := range rentCyls {
			cid := cyl.ID
			cost := share
			if i == 0 {
				cost += remainder
			}
			c := cost
			ps := status
			entries = append(entries, &domain.Transaction{
				Type:          domain.TransactionTypeRentalOut,
				OccurredOn:    now,
				CylinderID:    &cid,
				MemberID:      &mid,
				CostCents:     &c,
				PaymentStatus: &ps,
			})
		}
	}

	// Step 3: return transitions plus duration-carrying return entries.
	if len(returnCyls) > 0 {
		if _, err := s.cylinderRepo.UpdateHolderBatch(ctx, returnIDs, domain.CylinderStatusEmptyRefill,
			domain.HolderNone, nil, domain.WarehouseLocation); err != nil {
			return nil, err
		}
		mid := memberID
		for _, cyl := range returnCyls {
			cid := cyl.ID
			days := durations[cyl.ID]
			d := days
			entries = append(entries, &domain.Transaction{
				Type:       domain.TransactionTypeReturn,
				OccurredOn: now,
				CylinderID: &cid,
				MemberID:   &mid,
				RentalDays: &d,
			})
		}
	}

	// Step 4: one batch ledger append.
	if err := s.txRepo.CreateBatch(ctx, entries); err != nil {
		logger.Error("cylinder statuses written but ledger batch failed; ledger needs manual backfill",
			"member_id", memberID, "rent_ids", rentIDs, "return_ids", returnIDs, "error", err)
		return nil, err
	}

	out := make([]domain.Transaction, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out, nil
}
