package domain

// RefillStation is an external facility cylinders are sent to for refilling.
type RefillStation struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// StationPrice is a station's negotiated refill price for a (gas type, size)
// pair. Informational only; it never feeds the pricing resolver.
type StationPrice struct {
	ID         int32        `json:"id"`
	StationID  int32        `json:"station_id"`
	GasType    GasType      `json:"gas_type"`
	Size       CylinderSize `json:"size"`
	PriceCents int64        `json:"price_cents"`
}
