package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gasdepot-backend/internal/domain"
)

func emptyCylinder(id int32, serial string) *domain.Cylinder {
	c := availableCylinder(id, serial)
	c.Status = domain.CylinderStatusEmptyRefill
	return c
}

func TestCylinderService_AddCylinder(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		cylRepo := new(MockCylinderRepo)
		svc := NewCylinderService(cylRepo, new(MockTransactionRepo), new(MockStationRepo))

		cylRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Cylinder) bool {
			return c.Status == domain.CylinderStatusAvailable &&
				c.HolderType == domain.HolderNone &&
				c.LastLocation == domain.WarehouseLocation
		})).Return(nil)

		err := svc.AddCylinder(ctx, &domain.Cylinder{
			SerialCode: "OX-001",
			GasType:    domain.GasTypeOxygen,
			Size:       domain.SizeMedium,
		})
		assert.NoError(t, err)
		cylRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown gas type", func(t *testing.T) {
		cylRepo := new(MockCylinderRepo)
		svc := NewCylinderService(cylRepo, new(MockTransactionRepo), new(MockStationRepo))

		err := svc.AddCylinder(ctx, &domain.Cylinder{
			SerialCode: "OX-001",
			GasType:    "HELIUM",
			Size:       domain.SizeMedium,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		cylRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCylinderService_MarkDamaged(t *testing.T) {
	ctx := context.Background()
	cylRepo := new(MockCylinderRepo)
	svc := NewCylinderService(cylRepo, new(MockTransactionRepo), new(MockStationRepo))

	cylRepo.On("GetByID", ctx, int32(7)).Return(rentedCylinder(7, "OX-007", 3), nil)
	cylRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Cylinder) bool {
		return c.Status == domain.CylinderStatusDamaged &&
			c.HolderType == domain.HolderNone && c.HolderID == nil
	})).Return(nil)

	cyl, err := svc.MarkDamaged(ctx, 7, true)
	assert.NoError(t, err)
	assert.Equal(t, domain.CylinderStatusDamaged, cyl.Status)
}

func TestCylinderService_SendToRefill(t *testing.T) {
	ctx := context.Background()
	cylRepo := new(MockCylinderRepo)
	txRepo := new(MockTransactionRepo)
	stationRepo := new(MockStationRepo)
	svc := NewCylinderService(cylRepo, txRepo, stationRepo)

	stationRepo.On("GetByID", ctx, int32(2)).Return(&domain.RefillStation{ID: 2, Name: "NorthGas"}, nil)
	cylRepo.On("GetByID", ctx, int32(1)).Return(emptyCylinder(1, "OX-001"), nil)
	cylRepo.On("GetByID", ctx, int32(2)).Return(emptyCylinder(2, "OX-002"), nil)
	cylRepo.On("UpdateHolderBatch", ctx, []int32{1, 2}, domain.CylinderStatusRefilling,
		domain.HolderStation, mock.MatchedBy(func(id *int32) bool { return id != nil && *id == 2 }),
		"NorthGas").Return(int64(2), nil)
	txRepo.On("CreateBatch", ctx, mock.MatchedBy(func(entries []*domain.Transaction) bool {
		if len(entries) != 2 {
			return false
		}
		for _, e := range entries {
			if e.Type != domain.TransactionTypeRefillOut || e.StationID == nil || *e.StationID != 2 {
				return false
			}
		}
		return true
	})).Return(nil)

	entries, err := svc.SendToRefill(ctx, []int32{1, 2}, 2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	cylRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
}

func TestCylinderService_SendToRefill_RejectsWholeBatch(t *testing.T) {
	ctx := context.Background()
	cylRepo := new(MockCylinderRepo)
	txRepo := new(MockTransactionRepo)
	stationRepo := new(MockStationRepo)
	svc := NewCylinderService(cylRepo, txRepo, stationRepo)

	stationRepo.On("GetByID", ctx, int32(2)).Return(&domain.RefillStation{ID: 2, Name: "NorthGas"}, nil)
	cylRepo.On("GetByID", ctx, int32(1)).Return(emptyCylinder(1, "OX-001"), nil)
	cylRepo.On("GetByID", ctx, int32(2)).Return(availableCylinder(2, "OX-002"), nil)

	_, err := svc.SendToRefill(ctx, []int32{1, 2}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	cylRepo.AssertNotCalled(t, "UpdateHolderBatch",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	txRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestCylinderService_ReceiveFromRefill(t *testing.T) {
	ctx := context.Background()
	cylRepo := new(MockCylinderRepo)
	txRepo := new(MockTransactionRepo)
	stationRepo := new(MockStationRepo)
	svc := NewCylinderService(cylRepo, txRepo, stationRepo)

	refilling := emptyCylinder(1, "OX-001")
	refilling.Status = domain.CylinderStatusRefilling

	stationRepo.On("GetByID", ctx, int32(2)).Return(&domain.RefillStation{ID: 2, Name: "NorthGas"}, nil)
	cylRepo.On("GetByID", ctx, int32(1)).Return(refilling, nil)
	cylRepo.On("UpdateHolderBatch", ctx, []int32{1}, domain.CylinderStatusAvailable,
		domain.HolderNone, (*int32)(nil), domain.WarehouseLocation).Return(int64(1), nil)
	txRepo.On("CreateBatch", ctx, mock.MatchedBy(func(entries []*domain.Transaction) bool {
		return len(entries) == 1 && entries[0].Type == domain.TransactionTypeRefillIn
	})).Return(nil)

	_, err := svc.ReceiveFromRefill(ctx, []int32{1}, 2)
	assert.NoError(t, err)
}

func TestCylinderService_DispatchForDelivery(t *testing.T) {
	ctx := context.Background()
	cylRepo := new(MockCylinderRepo)
	txRepo := new(MockTransactionRepo)
	svc := NewCylinderService(cylRepo, txRepo, new(MockStationRepo))

	cylRepo.On("GetByID", ctx, int32(1)).Return(availableCylinder(1, "OX-001"), nil)
	cylRepo.On("UpdateHolderBatch", ctx, []int32{1}, domain.CylinderStatusDelivery,
		domain.HolderNone, (*int32)(nil), domain.TransitLocation).Return(int64(1), nil)
	txRepo.On("CreateBatch", ctx, mock.MatchedBy(func(entries []*domain.Transaction) bool {
		return len(entries) == 1 && entries[0].Type == domain.TransactionTypeDelivery
	})).Return(nil)

	_, err := svc.DispatchForDelivery(ctx, []int32{1})
	assert.NoError(t, err)
}

func TestCylinderService_ImportCSV(t *testing.T) {
	ctx := context.Background()

	csvBody := func(rows ...string) string {
		return "serialCode,gasType,size,status,lastLocation\n" + strings.Join(rows, "\n") + "\n"
	}

	t.Run("accepts valid rows and defaults status", func(t *testing.T) {
		cylRepo := new(MockCylinderRepo)
		svc := NewCylinderService(cylRepo, new(MockTransactionRepo), new(MockStationRepo))

		cylRepo.On("ExistingSerials", ctx, []string{"OX-001", "AR-002"}).Return([]string{}, nil)
		cylRepo.On("CreateBatch", ctx, mock.MatchedBy(func(cs []*domain.Cylinder) bool {
			return len(cs) == 2 &&
				cs[0].Status == domain.CylinderStatusAvailable &&
				cs[1].Status == domain.CylinderStatusEmptyRefill &&
				cs[0].LastLocation == domain.WarehouseLocation
		})).Return(nil)

		result, err := svc.ImportCSV(ctx, strings.NewReader(csvBody(
			"OX-001,oxygen,small,,",
			"AR-002,argon,large,EMPTY_REFILL,Dock B",
		)))
		assert.NoError(t, err)
		assert.Equal(t, int32(2), result.Created)
		assert.Empty(t, result.Rejected)
	})

	t.Run("rejects duplicates and enum violations per row", func(t *testing.T) {
		cylRepo := new(MockCylinderRepo)
		svc := NewCylinderService(cylRepo, new(MockTransactionRepo), new(MockStationRepo))

		cylRepo.On("ExistingSerials", ctx, mock.Anything).Return([]string{"OX-OLD"}, nil)
		cylRepo.On("CreateBatch", ctx, mock.MatchedBy(func(cs []*domain.Cylinder) bool {
			return len(cs) == 1 && cs[0].SerialCode == "OX-001"
		})).Return(nil)

		result, err := svc.ImportCSV(ctx, strings.NewReader(csvBody(
			"OX-001,oxygen,small,AVAILABLE,",
			"OX-001,oxygen,small,AVAILABLE,",
			"OX-OLD,oxygen,small,AVAILABLE,",
			"HE-004,helium,small,AVAILABLE,",
		)))
		assert.NoError(t, err)
		assert.Equal(t, int32(1), result.Created)
		assert.Len(t, result.Rejected, 3)
		assert.Equal(t, "duplicate serial in batch", result.Rejected[0].Reason)
		assert.Equal(t, "serial already in catalog", result.Rejected[1].Reason)
		assert.Contains(t, result.Rejected[2].Reason, "unknown gas type")
	})

	t.Run("rejects wrong header", func(t *testing.T) {
		svc := NewCylinderService(new(MockCylinderRepo), new(MockTransactionRepo), new(MockStationRepo))
		_, err := svc.ImportCSV(ctx, strings.NewReader("serial,gas\nOX-001,oxygen\n"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
