package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name    string
		current CylinderStatus
		trigger Trigger
		want    CylinderStatus
		wantErr bool
	}{
		{"rental out", CylinderStatusAvailable, TriggerRentalOut, CylinderStatusRented, false},
		{"return", CylinderStatusRented, TriggerReturn, CylinderStatusEmptyRefill, false},
		{"send to refill", CylinderStatusEmptyRefill, TriggerSendToRefill, CylinderStatusRefilling, false},
		{"receive from refill", CylinderStatusRefilling, TriggerReceiveFromRefill, CylinderStatusAvailable, false},
		{"dispatch", CylinderStatusAvailable, TriggerDispatchForDelivery, CylinderStatusDelivery, false},

		{"rent a rented cylinder", CylinderStatusRented, TriggerRentalOut, "", true},
		{"return an available cylinder", CylinderStatusAvailable, TriggerReturn, "", true},
		{"refill a full cylinder", CylinderStatusAvailable, TriggerSendToRefill, "", true},
		{"rent a damaged cylinder", CylinderStatusDamaged, TriggerRentalOut, "", true},
		{"no trigger out of delivery", CylinderStatusDelivery, TriggerReturn, "", true},
		{"unknown trigger", CylinderStatusAvailable, Trigger("SCRAP"), "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextStatus(tc.current, tc.trigger)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHolderConsistent(t *testing.T) {
	memberID := int32(3)
	stationID := int32(2)

	cases := []struct {
		name string
		cyl  Cylinder
		want bool
	}{
		{"rented by member", Cylinder{Status: CylinderStatusRented, HolderType: HolderMember, HolderID: &memberID}, true},
		{"rented without holder", Cylinder{Status: CylinderStatusRented, HolderType: HolderNone}, false},
		{"refilling at station", Cylinder{Status: CylinderStatusRefilling, HolderType: HolderStation, HolderID: &stationID}, true},
		{"refilling without station", Cylinder{Status: CylinderStatusRefilling, HolderType: HolderNone}, false},
		{"available in warehouse", Cylinder{Status: CylinderStatusAvailable, HolderType: HolderNone}, true},
		{"available but held", Cylinder{Status: CylinderStatusAvailable, HolderType: HolderMember, HolderID: &memberID}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cyl.HolderConsistent())
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, GasTypeAcetylene.Valid())
	assert.False(t, GasType("HELIUM").Valid())
	assert.True(t, SizeLarge.Valid())
	assert.False(t, CylinderSize("XL").Valid())
	assert.True(t, CylinderStatusDamaged.Valid())
	assert.False(t, CylinderStatus("LOST").Valid())
}
