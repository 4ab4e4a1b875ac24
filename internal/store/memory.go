package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/avibhor77/rent-sub001/internal/apperrors"
	"github.com/avibhor77/rent-sub001/internal/models"
)

// MemoryStore keeps the whole dataset in process memory. The first request
// triggers the seed preload; concurrent first requests share one load via
// singleflight and wait at most initTimeout before proceeding with whatever
// state is there. Intended for a single administrative user, so a plain
// RWMutex is the only coordination.
type MemoryStore struct {
	mu            sync.RWMutex
	rentRecords   []*models.RentRecord
	tenantConfigs []*models.TenantConfig
	meterReadings []*models.MeterReading

	initTimeout time.Duration
	seedFile    string
	group       singleflight.Group
	loaded      atomic.Bool
}

// NewMemoryStore creates an empty store that loads the embedded seed
// dataset (or seedFile, when set) on first access.
func NewMemoryStore(initTimeout time.Duration, seedFile string) *MemoryStore {
	if initTimeout <= 0 {
		initTimeout = 8 * time.Second
	}
	return &MemoryStore{initTimeout: initTimeout, seedFile: seedFile}
}

// NewMemoryStoreFromDataset builds a store preloaded with ds, skipping the
// seed file entirely. Used by tests.
func NewMemoryStoreFromDataset(ds *Dataset) *MemoryStore {
	s := NewMemoryStore(0, "")
	s.rentRecords = ds.RentRecords
	s.tenantConfigs = ds.TenantConfigs
	s.meterReadings = ds.MeterReadings
	s.loaded.Store(true)
	return s
}

func (s *MemoryStore) Loaded() bool {
	return s.loaded.Load()
}

// Warm starts the seed preload without waiting for a request.
func (s *MemoryStore) Warm() {
	go s.ensureLoaded(context.Background())
}

func (s *MemoryStore) ensureLoaded(ctx context.Context) {
	if s.loaded.Load() {
		return
	}

	ch := s.group.DoChan("seed", func() (interface{}, error) {
		return nil, s.load()
	})

	timer := time.NewTimer(s.initTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			log.Printf("[Store] seed load failed: %v", res.Err)
		}
	case <-timer.C:
		log.Printf("[Store] seed load still running after %s, serving current state", s.initTimeout)
	case <-ctx.Done():
	}
}

func (s *MemoryStore) load() error {
	data := seedData
	if s.seedFile != "" {
		b, err := os.ReadFile(s.seedFile)
		if err != nil {
			return fmt.Errorf("read seed file %s: %w", s.seedFile, err)
		}
		data = b
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	s.mu.Lock()
	s.rentRecords = ds.RentRecords
	s.tenantConfigs = ds.TenantConfigs
	s.meterReadings = ds.MeterReadings
	s.mu.Unlock()
	s.loaded.Store(true)

	log.Printf("[Store] loaded %d rent records, %d tenant configs, %d meter readings",
		len(ds.RentRecords), len(ds.TenantConfigs), len(ds.MeterReadings))
	return nil
}

func (s *MemoryStore) RentRecords(ctx context.Context) ([]*models.RentRecord, error) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.RentRecord, len(s.rentRecords))
	for i, r := range s.rentRecords {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryStore) FindRentRecord(ctx context.Context, month, tenant string) (*models.RentRecord, error) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rentRecords {
		if r.Month == month && r.Tenant == tenant {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("rent record for %s in %s: %w", tenant, month, apperrors.ErrNotFound)
}

func (s *MemoryStore) UpdateRentRecord(ctx context.Context, month, tenant string, apply func(*models.RentRecord)) error {
	s.ensureLoaded(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rentRecords {
		if r.Month == month && r.Tenant == tenant {
			apply(r)
			return nil
		}
	}
	return fmt.Errorf("rent record for %s in %s: %w", tenant, month, apperrors.ErrNotFound)
}

func (s *MemoryStore) UpsertRentRecord(ctx context.Context, rec *models.RentRecord) error {
	s.ensureLoaded(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rentRecords {
		if r.Month == rec.Month && r.Tenant == rec.Tenant {
			cp := *rec
			s.rentRecords[i] = &cp
			return nil
		}
	}
	cp := *rec
	s.rentRecords = append(s.rentRecords, &cp)
	return nil
}

func (s *MemoryStore) TenantConfigs(ctx context.Context) ([]*models.TenantConfig, error) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.TenantConfig, len(s.tenantConfigs))
	for i, c := range s.tenantConfigs {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryStore) FindTenantConfig(ctx context.Context, tenant string) (*models.TenantConfig, error) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.tenantConfigs {
		if c.Tenant == tenant {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("tenant config %s: %w", tenant, apperrors.ErrNotFound)
}

func (s *MemoryStore) UpdateTenantConfig(ctx context.Context, tenant string, apply func(*models.TenantConfig)) error {
	s.ensureLoaded(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.tenantConfigs {
		if c.Tenant == tenant {
			apply(c)
			return nil
		}
	}
	return fmt.Errorf("tenant config %s: %w", tenant, apperrors.ErrNotFound)
}

func (s *MemoryStore) MeterReadings(ctx context.Context) ([]*models.MeterReading, error) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.MeterReading, len(s.meterReadings))
	for i, m := range s.meterReadings {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryStore) FindMeterReading(ctx context.Context, month string) (*models.MeterReading, error) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.meterReadings {
		if m.Month == month {
			cp := *m
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("meter reading for %s: %w", month, apperrors.ErrNotFound)
}

func (s *MemoryStore) UpdateMeterReading(ctx context.Context, month string, apply func(*models.MeterReading)) error {
	s.ensureLoaded(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.meterReadings {
		if m.Month == month {
			apply(m)
			return nil
		}
	}
	return fmt.Errorf("meter reading for %s: %w", month, apperrors.ErrNotFound)
}
