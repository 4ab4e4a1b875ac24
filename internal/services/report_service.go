package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/samber/lo"

	"github.com/avibhor77/rent-sub001/internal/apperrors"
	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/store"
	"github.com/avibhor77/rent-sub001/internal/timeutil"
)

// Report periods.
const (
	PeriodYTD    = "ytd"
	PeriodLast12 = "last12"
)

type ReportSummary struct {
	TotalExpected float64 `json:"totalExpected"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalPending  float64 `json:"totalPending"`
	PaidCount     int     `json:"paidCount"`
	UnpaidCount   int     `json:"unpaidCount"`
}

type TenantPaymentSummary struct {
	Tenant        string  `json:"tenant"`
	Name          string  `json:"name"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalExpected float64 `json:"totalExpected"`
	PaidMonths    int     `json:"paidMonths"`
	UnpaidMonths  int     `json:"unpaidMonths"`
}

type MonthPaymentSummary struct {
	Month         string  `json:"month"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalExpected float64 `json:"totalExpected"`
	PaidCount     int     `json:"paidCount"`
	UnpaidCount   int     `json:"unpaidCount"`
}

type PaymentReport struct {
	Period         string                 `json:"period"`
	StartMonth     string                 `json:"startMonth"`
	EndMonth       string                 `json:"endMonth"`
	Summary        ReportSummary          `json:"summary"`
	TenantPayments []TenantPaymentSummary `json:"tenantPayments"`
	MonthPayments  []MonthPaymentSummary  `json:"monthPayments"`
	PeriodData     []MonthPoint           `json:"periodData"`
}

// ReportService builds period payment reports over the rent records. The
// reference month is fixed configuration, never the wall clock.
type ReportService struct {
	Store        store.Store
	Comparer     timeutil.Comparer
	CurrentMonth string
}

func NewReportService(s store.Store, cmp timeutil.Comparer, currentMonth string) *ReportService {
	return &ReportService{Store: s, Comparer: cmp, CurrentMonth: currentMonth}
}

// periodRange resolves a period name to its inclusive month-label range.
func (s *ReportService) periodRange(period string) (string, string, error) {
	switch period {
	case PeriodYTD:
		// Financial year starts in April.
		return "April 25", "December 25", nil
	case PeriodLast12:
		t, err := timeutil.ParseMonthLabel(s.CurrentMonth)
		if err != nil {
			return "", "", err
		}
		name := t.Month().String()
		return name + " 24", name + " 25", nil
	default:
		return "", "", fmt.Errorf("unknown period %q: %w", period, apperrors.ErrValidation)
	}
}

// BuildPaymentReport aggregates paid vs expected totals per tenant and per
// month over the period's month range.
func (s *ReportService) BuildPaymentReport(ctx context.Context, period string) (*PaymentReport, error) {
	start, end, err := s.periodRange(period)
	if err != nil {
		return nil, err
	}

	records, err := s.Store.RentRecords(ctx)
	if err != nil {
		return nil, err
	}
	inPeriod := lo.Filter(records, func(r *models.RentRecord, _ int) bool {
		return s.Comparer.InRange(r.Month, start, end)
	})

	report := &PaymentReport{Period: period, StartMonth: start, EndMonth: end}

	for _, r := range inPeriod {
		report.Summary.TotalExpected += r.TotalRent
		if r.Status == models.StatusPaid {
			report.Summary.TotalPaid += r.TotalRent
			report.Summary.PaidCount++
		} else {
			report.Summary.UnpaidCount++
		}
	}
	report.Summary.TotalPending = report.Summary.TotalExpected - report.Summary.TotalPaid

	byTenant := lo.GroupBy(inPeriod, func(r *models.RentRecord) string { return r.Tenant })
	for tenant, recs := range byTenant {
		tp := TenantPaymentSummary{Tenant: tenant, Name: recs[0].Name}
		for _, r := range recs {
			tp.TotalExpected += r.TotalRent
			if r.Status == models.StatusPaid {
				tp.TotalPaid += r.TotalRent
				tp.PaidMonths++
			} else {
				tp.UnpaidMonths++
			}
		}
		report.TenantPayments = append(report.TenantPayments, tp)
	}
	sort.Slice(report.TenantPayments, func(i, j int) bool {
		return report.TenantPayments[i].Tenant < report.TenantPayments[j].Tenant
	})

	byMonth := lo.GroupBy(inPeriod, func(r *models.RentRecord) string { return r.Month })
	for month, recs := range byMonth {
		mp := MonthPaymentSummary{Month: month}
		for _, r := range recs {
			mp.TotalExpected += r.TotalRent
			if r.Status == models.StatusPaid {
				mp.TotalPaid += r.TotalRent
				mp.PaidCount++
			} else {
				mp.UnpaidCount++
			}
		}
		report.MonthPayments = append(report.MonthPayments, mp)
	}
	sort.Slice(report.MonthPayments, func(i, j int) bool {
		return s.Comparer.Less(report.MonthPayments[i].Month, report.MonthPayments[j].Month)
	})

	report.PeriodData = lo.Map(report.MonthPayments, func(mp MonthPaymentSummary, _ int) MonthPoint {
		return MonthPoint{
			Month:     mp.Month,
			Expected:  mp.TotalExpected,
			Collected: mp.TotalPaid,
			Pending:   mp.TotalExpected - mp.TotalPaid,
		}
	})

	return report, nil
}

// NextMonth returns the label after the configured reference month.
func (s *ReportService) NextMonth() (string, error) {
	return timeutil.NextMonthLabel(s.CurrentMonth)
}

// MonthExists reports whether any rent record carries the month.
func (s *ReportService) MonthExists(ctx context.Context, month string) (bool, error) {
	records, err := s.Store.RentRecords(ctx)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(records, func(r *models.RentRecord) bool {
		return r.Month == month
	}), nil
}

// GeneratePaymentReportPDF renders a printable period report.
func (s *ReportService) GeneratePaymentReportPDF(ctx context.Context, period string) ([]byte, error) {
	report, err := s.BuildPaymentReport(ctx, period)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Rent Payment Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Period: %s (%s - %s)", report.Period, report.StartMonth, report.EndMonth), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Summary box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Summary", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Expected: Rs. %.2f", report.Summary.TotalExpected), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Collected: Rs. %.2f", report.Summary.TotalPaid), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Pending: Rs. %.2f", report.Summary.TotalPending), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Per-tenant table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tenant Payments", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Tenant", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Expected", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Paid", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Months P/U", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, tp := range report.TenantPayments {
		pdf.CellFormat(35, 6, tp.Tenant, "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, tp.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", tp.TotalExpected), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", tp.TotalPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d / %d", tp.PaidMonths, tp.UnpaidMonths), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Per-month table
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Monthly Breakdown", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(50, 7, "Month", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Expected", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Paid", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Paid / Unpaid", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, mp := range report.MonthPayments {
		pdf.CellFormat(50, 6, mp.Month, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", mp.TotalExpected), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", mp.TotalPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%d / %d", mp.PaidCount, mp.UnpaidCount), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
