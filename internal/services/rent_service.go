package services

import (
	"context"
	"fmt"

	"github.com/avibhor77/rent-sub001/internal/apperrors"
	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/store"
)

// AdjustTypeFuture marks an adjustment as a pre-payment: the record gets
// the new amount and is marked paid in one step.
const AdjustTypeFuture = "future"

// RentService applies the mutation operations. All mutations are in-place
// and immediately visible; there is nothing transactional here.
type RentService struct {
	Store   store.Store
	Charges *ChargeService
}

func NewRentService(s store.Store, charges *ChargeService) *RentService {
	return &RentService{Store: s, Charges: charges}
}

func requireTenantMonth(tenant, month string) error {
	if tenant == "" || month == "" {
		return fmt.Errorf("tenant and month are required: %w", apperrors.ErrValidation)
	}
	return nil
}

// MarkPaid flips an existing record to Paid. TotalRent is untouched, so
// repeating the call is a no-op. There is no implicit record creation.
func (s *RentService) MarkPaid(ctx context.Context, tenant, month string) error {
	if err := requireTenantMonth(tenant, month); err != nil {
		return err
	}
	return s.Store.UpdateRentRecord(ctx, month, tenant, func(r *models.RentRecord) {
		r.Status = models.StatusPaid
	})
}

// AdjustRent overrides the record's total. Type "future" additionally marks
// the record paid (pre-paying a months-ahead stub); any other type leaves
// the status alone.
func (s *RentService) AdjustRent(ctx context.Context, tenant, month string, amount float64, adjustType string) error {
	if err := requireTenantMonth(tenant, month); err != nil {
		return err
	}
	return s.Store.UpdateRentRecord(ctx, month, tenant, func(r *models.RentRecord) {
		r.TotalRent = amount
		if adjustType == AdjustTypeFuture {
			r.Status = models.StatusPaid
		}
	})
}

// UpsertRentRecord creates the record for a (tenant, month) pair when none
// exists, defaulting from the tenant's config and that month's energy
// charges, then merges the updates. This is the explicit creation path the
// mark-paid and adjust-rent operations deliberately lack.
func (s *RentService) UpsertRentRecord(ctx context.Context, tenant, month string, updates models.RentRecordUpdate) error {
	if err := requireTenantMonth(tenant, month); err != nil {
		return err
	}

	if _, err := s.Store.FindRentRecord(ctx, month, tenant); err == nil {
		return s.Store.UpdateRentRecord(ctx, month, tenant, func(r *models.RentRecord) {
			updates.Apply(r)
		})
	}

	cfg, err := s.Store.FindTenantConfig(ctx, tenant)
	if err != nil {
		return err
	}
	charges, err := s.Charges.EnergyCharges(ctx, month)
	if err != nil {
		return err
	}
	energy := charges[cfg.Tenant]

	rec := &models.RentRecord{
		Month:         month,
		Tenant:        cfg.Tenant,
		Name:          cfg.Name,
		Phone:         cfg.Phone,
		Floor:         cfg.Floor,
		BaseRent:      cfg.BaseRent,
		Maintenance:   cfg.Maintenance,
		EnergyCharges: energy,
		TotalRent:     cfg.BaseRent + cfg.Maintenance + cfg.Misc + energy,
		Status:        models.StatusNotPaid,
	}
	updates.Apply(rec)

	return s.Store.UpsertRentRecord(ctx, rec)
}

// UpdateTenantConfig merges the set fields into the tenant's config.
func (s *RentService) UpdateTenantConfig(ctx context.Context, tenant string, updates models.TenantConfigUpdate) error {
	if tenant == "" {
		return fmt.Errorf("tenant is required: %w", apperrors.ErrValidation)
	}
	return s.Store.UpdateTenantConfig(ctx, tenant, func(c *models.TenantConfig) {
		updates.Apply(c)
	})
}

// UpdateMeterReadings merges the set fields into the month's reading.
func (s *RentService) UpdateMeterReadings(ctx context.Context, month string, readings models.MeterReadingUpdate) error {
	if month == "" {
		return fmt.Errorf("month is required: %w", apperrors.ErrValidation)
	}
	return s.Store.UpdateMeterReading(ctx, month, func(m *models.MeterReading) {
		readings.Apply(m)
	})
}

// UpdateA206Meter merges only the A-206 meter fields, ignoring anything
// else in the payload. The A-206 unit bills off its own main meter.
func (s *RentService) UpdateA206Meter(ctx context.Context, month string, readings models.MeterReadingUpdate) error {
	if month == "" {
		return fmt.Errorf("month is required: %w", apperrors.ErrValidation)
	}
	scoped := models.MeterReadingUpdate{
		A206MainMeter: readings.A206MainMeter,
		A206Consumed:  readings.A206Consumed,
	}
	return s.Store.UpdateMeterReading(ctx, month, func(m *models.MeterReading) {
		scoped.Apply(m)
	})
}
