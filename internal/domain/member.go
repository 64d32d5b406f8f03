package domain

import (
	"math"
	"time"
)

type MemberStatus string

const (
	MemberStatusActive      MemberStatus = "ACTIVE"
	MemberStatusPendingExit MemberStatus = "PENDING_EXIT"
	MemberStatusNonActive   MemberStatus = "NON_ACTIVE"
)

type Member struct {
	ID              int32        `json:"id"`
	CompanyName     string       `json:"company_name"`
	ContactName     string       `json:"contact_name"`
	Phone           string       `json:"phone"`
	Address         string       `json:"address"`
	DepositCents    int64        `json:"deposit_cents"`
	DebtCents       int64        `json:"debt_cents"`
	Status          MemberStatus `json:"status"`
	JoinedOn        time.Time    `json:"joined_on"`
	ExitRequestedOn *time.Time   `json:"exit_requested_on,omitempty"`
}

// CoolingPeriodDays is the mandatory wait between an exit request and refund
// eligibility.
const CoolingPeriodDays = 14

// RefundablePercent of the deposit is paid out on exit; the rest is forfeited.
const RefundablePercent = 50

// RefundEligibility is a pure function of the exit request time and now.
// daysLeft counts whole days still to wait, zero once eligible.
func RefundEligibility(exitRequestedOn, now time.Time) (eligible bool, daysLeft int32) {
	deadline := exitRequestedOn.Add(CoolingPeriodDays * 24 * time.Hour)
	if !now.Before(deadline) {
		return true, 0
	}
	left := math.Ceil(deadline.Sub(now).Hours() / 24)
	return false, int32(left)
}

// RefundAmount returns the payout for a deposit balance.
func RefundAmount(depositCents int64) int64 {
	return depositCents * RefundablePercent / 100
}
