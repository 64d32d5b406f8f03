package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateSerial   = errors.New("serial code already exists")
	ErrInvalidTransition = errors.New("invalid cylinder status transition")
	ErrNotHolder         = errors.New("member does not hold this cylinder")
	ErrMemberHoldsStock  = errors.New("member still holds cylinders")
	ErrOutstandingDebt   = errors.New("member has outstanding debt")
	ErrNotPendingExit    = errors.New("member has no pending exit request")
	ErrRefundNotEligible = errors.New("cooling period has not elapsed")
	ErrAmountMismatch    = errors.New("payment amount does not match selected bills")
	ErrValidation        = errors.New("validation failed")
)
