package store

import (
	"context"

	"github.com/avibhor77/rent-sub001/internal/models"
)

// Store is the dataset behind the calculators and handlers. The process
// ships with an in-memory implementation; anything file or database backed
// can be substituted here without touching the calculation code.
//
// Find methods return a copy of the matching record, or
// apperrors.ErrNotFound. Update methods run apply on the live record under
// the store's write path; changes are visible to all subsequent reads.
type Store interface {
	RentRecords(ctx context.Context) ([]*models.RentRecord, error)
	FindRentRecord(ctx context.Context, month, tenant string) (*models.RentRecord, error)
	UpdateRentRecord(ctx context.Context, month, tenant string, apply func(*models.RentRecord)) error
	UpsertRentRecord(ctx context.Context, rec *models.RentRecord) error

	TenantConfigs(ctx context.Context) ([]*models.TenantConfig, error)
	FindTenantConfig(ctx context.Context, tenant string) (*models.TenantConfig, error)
	UpdateTenantConfig(ctx context.Context, tenant string, apply func(*models.TenantConfig)) error

	MeterReadings(ctx context.Context) ([]*models.MeterReading, error)
	FindMeterReading(ctx context.Context, month string) (*models.MeterReading, error)
	UpdateMeterReading(ctx context.Context, month string, apply func(*models.MeterReading)) error

	// Loaded reports whether the initial dataset preload has finished.
	Loaded() bool
}

// Dataset is the on-disk shape of the seed data.
type Dataset struct {
	RentRecords   []*models.RentRecord   `json:"rentRecords"`
	TenantConfigs []*models.TenantConfig `json:"tenantConfigs"`
	MeterReadings []*models.MeterReading `json:"meterReadings"`
}
