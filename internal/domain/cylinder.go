package domain

import "time"

type GasType string

const (
	GasTypeOxygen    GasType = "OXYGEN"
	GasTypeNitrogen  GasType = "NITROGEN"
	GasTypeArgon     GasType = "ARGON"
	GasTypeCO2       GasType = "CO2"
	GasTypeAcetylene GasType = "ACETYLENE"
)

func (g GasType) Valid() bool {
	switch g {
	case GasTypeOxygen, GasTypeNitrogen, GasTypeArgon, GasTypeCO2, GasTypeAcetylene:
		return true
	}
	return false
}

type CylinderSize string

const (
	SizeSmall  CylinderSize = "SMALL"
	SizeMedium CylinderSize = "MEDIUM"
	SizeLarge  CylinderSize = "LARGE"
)

func (s CylinderSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

type CylinderStatus string

const (
	CylinderStatusAvailable   CylinderStatus = "AVAILABLE"
	CylinderStatusRented      CylinderStatus = "RENTED"
	CylinderStatusEmptyRefill CylinderStatus = "EMPTY_REFILL"
	CylinderStatusRefilling   CylinderStatus = "REFILLING"
	CylinderStatusDelivery    CylinderStatus = "DELIVERY"
	CylinderStatusDamaged     CylinderStatus = "DAMAGED"
)

func (s CylinderStatus) Valid() bool {
	switch s {
	case CylinderStatusAvailable, CylinderStatusRented, CylinderStatusEmptyRefill,
		CylinderStatusRefilling, CylinderStatusDelivery, CylinderStatusDamaged:
		return true
	}
	return false
}

// HolderType identifies who physically holds a cylinder. A cylinder in the
// warehouse has no holder.
type HolderType string

const (
	HolderNone    HolderType = "NONE"
	HolderMember  HolderType = "MEMBER"
	HolderStation HolderType = "STATION"
)

// WarehouseLocation is the location recorded whenever a cylinder comes back
// into stock.
const WarehouseLocation = "Warehouse"

// TransitLocation is recorded when a cylinder is dispatched for delivery.
const TransitLocation = "In transit"

type Cylinder struct {
	ID           int32          `json:"id"`
	SerialCode   string         `json:"serial_code"`
	GasType      GasType        `json:"gas_type"`
	Size         CylinderSize   `json:"size"`
	Status       CylinderStatus `json:"status"`
	HolderType   HolderType     `json:"holder_type"`
	HolderID     *int32         `json:"holder_id,omitempty"`
	LastLocation string         `json:"last_location"`
	CreatedOn    time.Time      `json:"created_on"`
	UpdatedOn    time.Time      `json:"updated_on"`
}

// HolderConsistent reports whether status and holder agree: Rented means a
// member holds it, Refilling means a station holds it, every other status
// means nobody does.
func (c *Cylinder) HolderConsistent() bool {
	switch c.Status {
	case CylinderStatusRented:
		return c.HolderType == HolderMember && c.HolderID != nil
	case CylinderStatusRefilling:
		return c.HolderType == HolderStation && c.HolderID != nil
	default:
		return c.HolderType == HolderNone && c.HolderID == nil
	}
}

// Trigger names a lifecycle operation that moves a cylinder between statuses.
type Trigger string

const (
	TriggerRentalOut           Trigger = "RENTAL_OUT"
	TriggerReturn              Trigger = "RETURN"
	TriggerSendToRefill        Trigger = "SEND_TO_REFILL"
	TriggerReceiveFromRefill   Trigger = "RECEIVE_FROM_REFILL"
	TriggerDispatchForDelivery Trigger = "DISPATCH_FOR_DELIVERY"
)

// transitions is the legal status machine. Manual catalog edits and damage
// flagging bypass it through the admin override path. There is no trigger
// out of Delivery: delivered stock is reset through the catalog edit path.
var transitions = map[Trigger][2]CylinderStatus{
	TriggerRentalOut:           {CylinderStatusAvailable, CylinderStatusRented},
	TriggerReturn:              {CylinderStatusRented, CylinderStatusEmptyRefill},
	TriggerSendToRefill:        {CylinderStatusEmptyRefill, CylinderStatusRefilling},
	TriggerReceiveFromRefill:   {CylinderStatusRefilling, CylinderStatusAvailable},
	TriggerDispatchForDelivery: {CylinderStatusAvailable, CylinderStatusDelivery},
}

// NextStatus returns the status a cylinder moves to for the given trigger, or
// ErrInvalidTransition if the cylinder is not in the trigger's source status.
func NextStatus(current CylinderStatus, trigger Trigger) (CylinderStatus, error) {
	t, ok := transitions[trigger]
	if !ok {
		return "", ErrInvalidTransition
	}
	if current != t[0] {
		return "", ErrInvalidTransition
	}
	return t[1], nil
}
