package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/avibhor77/rent-sub001/internal/apperrors"
	"github.com/avibhor77/rent-sub001/internal/store"
)

// RatePerUnit is the tariff applied to every metered unit, in currency
// units. Single building, single tariff.
const RatePerUnit = 10

// ChargeService derives per-tenant energy charges from the month's meter
// reading.
type ChargeService struct {
	Store store.Store
}

func NewChargeService(s store.Store) *ChargeService {
	return &ChargeService{Store: s}
}

// EnergyCharges returns tenant -> charge for the given month. A month with
// no meter reading yields an empty map: no meter data is not an error.
// Tenants whose floor has no recorded consumption are omitted.
func (s *ChargeService) EnergyCharges(ctx context.Context, month string) (map[string]float64, error) {
	reading, err := s.Store.FindMeterReading(ctx, month)
	if errors.Is(err, apperrors.ErrNotFound) {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, err
	}

	configs, err := s.Store.TenantConfigs(ctx)
	if err != nil {
		return nil, err
	}

	charges := make(map[string]float64, len(configs))
	for _, cfg := range configs {
		units, ok := reading.ConsumptionFor(cfg.Floor)
		if !ok {
			continue
		}
		charges[cfg.Tenant] = chargeForUnits(units)
	}
	return charges, nil
}

// chargeForUnits prices the consumed units and rounds half-up to the
// nearest whole currency unit.
func chargeForUnits(units float64) float64 {
	charge := decimal.NewFromFloat(units).Mul(decimal.NewFromInt(RatePerUnit))
	f, _ := charge.Round(0).Float64()
	return f
}
