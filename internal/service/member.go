package service

import (
	"context"
	"fmt"
	"time"

	"gasdepot-backend/internal/config"
	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/repository"
)

type memberService struct {
	memberRepo   repository.MemberRepository
	cylinderRepo repository.CylinderRepository
	txRepo       repository.TransactionRepository
	rules        config.RulesConfig
}

func NewMemberService(
	memberRepo repository.MemberRepository,
	cylinderRepo repository.CylinderRepository,
	txRepo repository.TransactionRepository,
	rules config.RulesConfig,
) MemberService {
	return &memberService{
		memberRepo:   memberRepo,
		cylinderRepo: cylinderRepo,
		txRepo:       txRepo,
		rules:        rules,
	}
}

func (s *memberService) Onboard(ctx context.Context, m *domain.Member, counts DepositCounts, carriedOverCents *int64) error {
	if m.CompanyName == "" {
		return fmt.Errorf("company name is required: %w", domain.ErrValidation)
	}
	if carriedOverCents != nil {
		if *carriedOverCents < 0 {
			return fmt.Errorf("deposit must be non-negative: %w", domain.ErrValidation)
		}
		m.DepositCents = *carriedOverCents
	} else {
		m.DepositCents = int64(counts.Small)*s.rules.DepositSmallCents +
			int64(counts.Medium)*s.rules.DepositMediumCents +
			int64(counts.Large)*s.rules.DepositLargeCents
	}
	m.DebtCents = 0
	m.Status = domain.MemberStatusActive
	m.JoinedOn = time.Now()
	return s.memberRepo.Create(ctx, m)
}

func (s *memberService) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) UpdateMember(ctx context.Context, m *domain.Member) error {
	if m.DepositCents < 0 || m.DebtCents < 0 {
		return fmt.Errorf("balances must be non-negative: %w", domain.ErrValidation)
	}
	return s.memberRepo.Update(ctx, m)
}

func (s *memberService) ListMembers(ctx context.Context, status domain.MemberStatus, query string, page, pageSize int32) ([]domain.Member, int32, error) {
	return s.memberRepo.List(ctx, status, query, page, pageSize)
}

// PayDebt settles the selected unpaid bills. The amount must equal the sum of
// the selected entries' costs; the entries flip to paid, debt decreases
// (floored at zero) and a debt-payment entry referencing the settled ids is
// appended.
func (s *memberService) PayDebt(ctx context.Context, memberID int32, amountCents int64, settleTxIDs []int64) (*domain.Transaction, error) {
	if amountCents <= 0 || len(settleTxIDs) == 0 {
		return nil, fmt.Errorf("amount and settled bills are required: %w", domain.ErrValidation)
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	bills, err := s.txRepo.GetByIDs(ctx, settleTxIDs)
	if err != nil {
		return nil, err
	}
	if len(bills) != len(settleTxIDs) {
		return nil, fmt.Errorf("unknown bill selected: %w", domain.ErrValidation)
	}

	var sum int64
	for _, b := range bills {
		if b.Type != domain.TransactionTypeRentalOut ||
			b.MemberID == nil || *b.MemberID != memberID ||
			b.PaymentStatus == nil || *b.PaymentStatus != domain.PaymentStatusUnpaid {
			return nil, fmt.Errorf("bill %d is not an unpaid rental of this member: %w", b.ID, domain.ErrValidation)
		}
		if b.CostCents != nil {
			sum += *b.CostCents
		}
	}
	if sum != amountCents {
		return nil, fmt.Errorf("expected %d, got %d: %w", sum, amountCents, domain.ErrAmountMismatch)
	}

	member.DebtCents -= amountCents
	if member.DebtCents < 0 {
		member.DebtCents = 0
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	if err := s.txRepo.MarkPaid(ctx, settleTxIDs); err != nil {
		return nil, err
	}

	mid := memberID
	amount := amountCents
	entry := &domain.Transaction{
		Type:         domain.TransactionTypeDebtPayment,
		OccurredOn:   time.Now(),
		MemberID:     &mid,
		CostCents:    &amount,
		RelatedTxIDs: settleTxIDs,
	}
	if err := s.txRepo.Create(ctx, entry); err != nil {
		logger.Error("debt payment applied but ledger append failed; ledger needs manual backfill",
			"member_id", memberID, "amount_cents", amountCents, "error", err)
		return nil, err
	}
	return entry, nil
}

// RequestExit starts the cooling period. Rejected while the member holds any
// cylinder or owes anything, validated at request time.
func (s *memberService) RequestExit(ctx context.Context, memberID int32, now time.Time) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.MemberStatusActive {
		return nil, fmt.Errorf("member is %s: %w", member.Status, domain.ErrValidation)
	}

	held, err := s.cylinderRepo.ListByHolder(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if len(held) > 0 {
		return nil, domain.ErrMemberHoldsStock
	}
	if member.DebtCents > 0 {
		return nil, domain.ErrOutstandingDebt
	}

	member.Status = domain.MemberStatusPendingExit
	member.ExitRequestedOn = &now
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RefundStatus recomputes eligibility on every read; nothing about the
// cooling period is stored beyond the exit request timestamp.
func (s *memberService) RefundStatus(ctx context.Context, memberID int32, now time.Time) (*RefundStatus, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.MemberStatusPendingExit || member.ExitRequestedOn == nil {
		return nil, domain.ErrNotPendingExit
	}
	eligible, daysLeft := domain.RefundEligibility(*member.ExitRequestedOn, now)
	return &RefundStatus{
		Eligible:    eligible,
		DaysLeft:    daysLeft,
		PayoutCents: domain.RefundAmount(member.DepositCents),
	}, nil
}

// ConfirmRefund pays out half the deposit, zeroes it, deactivates the member
// and appends a deposit-refund entry. The other half is forfeited.
func (s *memberService) ConfirmRefund(ctx context.Context, memberID int32, now time.Time) (*domain.Transaction, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.MemberStatusPendingExit || member.ExitRequestedOn == nil {
		return nil, domain.ErrNotPendingExit
	}
	eligible, _ := domain.RefundEligibility(*member.ExitRequestedOn, now)
	if !eligible {
		return nil, domain.ErrRefundNotEligible
	}

	payout := domain.RefundAmount(member.DepositCents)
	member.DepositCents = 0
	member.Status = domain.MemberStatusNonActive
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	mid := memberID
	entry := &domain.Transaction{
		Type:       domain.TransactionTypeDepositRefund,
		OccurredOn: now,
		MemberID:   &mid,
		CostCents:  &payout,
	}
	if err := s.txRepo.Create(ctx, entry); err != nil {
		logger.Error("refund applied but ledger append failed; ledger needs manual backfill",
			"member_id", memberID, "payout_cents", payout, "error", err)
		return nil, err
	}
	return entry, nil
}
