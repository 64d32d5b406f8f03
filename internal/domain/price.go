package domain

// BasePrice is the shared default unit price for a (gas type, size) pair.
type BasePrice struct {
	ID         int32        `json:"id"`
	GasType    GasType      `json:"gas_type"`
	Size       CylinderSize `json:"size"`
	PriceCents int64        `json:"price_cents"`
}

// MemberPrice is a per-member override of the base price.
type MemberPrice struct {
	ID         int32        `json:"id"`
	MemberID   int32        `json:"member_id"`
	GasType    GasType      `json:"gas_type"`
	Size       CylinderSize `json:"size"`
	PriceCents int64        `json:"price_cents"`
}
