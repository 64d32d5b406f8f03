package domain

import "time"

type TransactionType string

const (
	TransactionTypeRentalOut     TransactionType = "RENTAL_OUT"
	TransactionTypeReturn        TransactionType = "RETURN"
	TransactionTypeRefillOut     TransactionType = "REFILL_OUT"
	TransactionTypeRefillIn      TransactionType = "REFILL_IN"
	TransactionTypeDelivery      TransactionType = "DELIVERY"
	TransactionTypeDebtPayment   TransactionType = "DEBT_PAYMENT"
	TransactionTypeDepositRefund TransactionType = "DEPOSIT_REFUND"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

// Transaction is an immutable ledger fact. Once appended, the only field ever
// updated is PaymentStatus, flipped from unpaid to paid by a debt payment.
// Rows are never deleted; references to a since-deleted cylinder or member
// stay in place and render as "Unknown" on the read side.
type Transaction struct {
	ID            int64           `json:"id"`
	Type          TransactionType `json:"type"`
	OccurredOn    time.Time       `json:"occurred_on"`
	CylinderID    *int32          `json:"cylinder_id,omitempty"`
	MemberID      *int32          `json:"member_id,omitempty"`
	StationID     *int32          `json:"station_id,omitempty"`
	CostCents     *int64          `json:"cost_cents,omitempty"`
	PaymentStatus *PaymentStatus  `json:"payment_status,omitempty"`
	RentalDays    *int32          `json:"rental_days,omitempty"`
	RelatedTxIDs  []int64         `json:"related_tx_ids,omitempty"`
	CreatedOn     time.Time       `json:"created_on"`
}

// DaysBetween is the ledger's duration rule: whole days elapsed from a rental
// out entry to now, floored.
func DaysBetween(from, to time.Time) int32 {
	if to.Before(from) {
		return 0
	}
	return int32(to.Sub(from).Hours() / 24)
}
