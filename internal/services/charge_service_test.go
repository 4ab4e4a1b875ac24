package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/store"
)

func TestEnergyChargesNoMeterData(t *testing.T) {
	svc := NewChargeService(newTestStore())

	charges, err := svc.EnergyCharges(context.Background(), "September 25")
	assert.NoError(t, err)
	assert.Empty(t, charges)
	assert.NotNil(t, charges)
}

func TestEnergyChargesSampleMonth(t *testing.T) {
	svc := NewChargeService(newTestStore())

	charges, err := svc.EnergyCharges(context.Background(), "August 25")
	assert.NoError(t, err)

	assert.Equal(t, 3520.0, charges["A-88 G"])
	assert.Equal(t, 2180.0, charges["A-88 F"])

	// A-206 units were never recorded for August, so the tenant is
	// absent rather than charged zero.
	_, ok := charges["A-206"]
	assert.False(t, ok)
}

func TestEnergyChargesRoundsHalfUp(t *testing.T) {
	consumed := 12.35 // 123.5 currency units before rounding
	s := store.NewMemoryStoreFromDataset(&store.Dataset{
		TenantConfigs: []*models.TenantConfig{
			{Tenant: "A-88 G", Floor: models.FloorGround},
			{Tenant: "A-88 F", Floor: models.FloorFirst},
		},
		MeterReadings: []*models.MeterReading{
			{Month: "August 25", GroundFloorConsumed: &consumed, FirstFloorConsumed: f64(12.34)},
		},
	})
	svc := NewChargeService(s)

	charges, err := svc.EnergyCharges(context.Background(), "August 25")
	assert.NoError(t, err)
	assert.Equal(t, 124.0, charges["A-88 G"])
	assert.Equal(t, 123.0, charges["A-88 F"])
}
