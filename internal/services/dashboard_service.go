package services

import (
	"context"

	"github.com/samber/lo"

	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/store"
	"github.com/avibhor77/rent-sub001/internal/timeutil"
)

// TenantMonth is one dashboard row: a tenant joined with their rent record
// for the month, or an implied row from config defaults when no record
// exists yet.
type TenantMonth struct {
	Tenant         string  `json:"tenant"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Floor          string  `json:"floor"`
	BaseRent       float64 `json:"baseRent"`
	Maintenance    float64 `json:"maintenance"`
	Misc           float64 `json:"misc"`
	EnergyCharges  float64 `json:"energyCharges"`
	ExpectedAmount float64 `json:"expectedAmount"`
	ActualAmount   float64 `json:"actualAmount"`
	PendingAmount  float64 `json:"pendingAmount"`
	Status         string  `json:"status"`
	Comments       string  `json:"comments"`
	HasRecord      bool    `json:"hasRecord"`
}

type Summary struct {
	Expected  float64 `json:"expected"`
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

type PendingDue struct {
	Tenant string  `json:"tenant"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MonthPoint is one point of the monthly trend series.
type MonthPoint struct {
	Month     string  `json:"month"`
	Expected  float64 `json:"expected"`
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

type Dashboard struct {
	Tenants     []TenantMonth `json:"tenants"`
	Summary     Summary       `json:"summary"`
	PendingDues []PendingDue  `json:"pendingDues"`
	MonthlyData []MonthPoint  `json:"monthlyData"`
}

// DashboardService aggregates the raw records into the dashboard view.
type DashboardService struct {
	Store    store.Store
	Comparer timeutil.Comparer
}

func NewDashboardService(s store.Store, cmp timeutil.Comparer) *DashboardService {
	return &DashboardService{Store: s, Comparer: cmp}
}

// BuildDashboard assembles the per-tenant rows, totals, pending dues and
// monthly trend for the given month.
func (s *DashboardService) BuildDashboard(ctx context.Context, month string) (*Dashboard, error) {
	configs, err := s.Store.TenantConfigs(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.RentRecords(ctx)
	if err != nil {
		return nil, err
	}

	rows, summary := buildMonth(configs, records, month)

	pendingDues := lo.FilterMap(rows, func(r TenantMonth, _ int) (PendingDue, bool) {
		return PendingDue{Tenant: r.Tenant, Name: r.Name, Amount: r.PendingAmount},
			r.Status != models.StatusPaid
	})

	months := lo.Uniq(lo.Map(records, func(r *models.RentRecord, _ int) string {
		return r.Month
	}))
	s.Comparer.Sort(months)

	monthly := make([]MonthPoint, 0, len(months))
	for _, m := range months {
		_, ms := buildMonth(configs, records, m)
		monthly = append(monthly, MonthPoint{
			Month:     m,
			Expected:  ms.Expected,
			Collected: ms.Collected,
			Pending:   ms.Pending,
		})
	}

	return &Dashboard{
		Tenants:     rows,
		Summary:     summary,
		PendingDues: pendingDues,
		MonthlyData: monthly,
	}, nil
}

// buildMonth computes the tenant rows and summary for one month. Records
// whose tenant key matches no config are orphans and do not produce rows.
func buildMonth(configs []*models.TenantConfig, records []*models.RentRecord, month string) ([]TenantMonth, Summary) {
	byTenant := lo.KeyBy(
		lo.Filter(records, func(r *models.RentRecord, _ int) bool { return r.Month == month }),
		func(r *models.RentRecord) string { return r.Tenant },
	)

	rows := make([]TenantMonth, 0, len(configs))
	var summary Summary
	for _, cfg := range configs {
		row := TenantMonth{
			Tenant:      cfg.Tenant,
			Name:        cfg.Name,
			Phone:       cfg.Phone,
			Floor:       cfg.Floor,
			BaseRent:    cfg.BaseRent,
			Maintenance: cfg.Maintenance,
			Misc:        cfg.Misc,
			Status:      models.StatusNotPaid,
		}

		if rec, ok := byTenant[cfg.Tenant]; ok {
			row.BaseRent = rec.BaseRent
			row.Maintenance = rec.Maintenance
			row.EnergyCharges = rec.EnergyCharges
			row.Status = rec.Status
			row.Comments = rec.Comments
			row.HasRecord = true
			row.ExpectedAmount = rec.BaseRent + rec.Maintenance + cfg.Misc + rec.EnergyCharges
			row.ActualAmount = rec.TotalRent
		} else {
			// Implied record: config defaults, no energy yet, nothing paid.
			row.ExpectedAmount = cfg.BaseRent + cfg.Maintenance + cfg.Misc
			row.ActualAmount = row.ExpectedAmount
		}

		if row.Status == models.StatusPaid {
			summary.Collected += row.ActualAmount
		} else {
			row.PendingAmount = row.ExpectedAmount
		}
		summary.Expected += row.ExpectedAmount

		rows = append(rows, row)
	}
	summary.Pending = summary.Expected - summary.Collected

	return rows, summary
}
