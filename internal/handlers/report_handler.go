package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avibhor77/rent-sub001/internal/services"
	"github.com/avibhor77/rent-sub001/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GetPaymentReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = services.PeriodYTD
	}

	report, err := h.Service.BuildPaymentReport(r.Context(), period)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report,
	})
}

func (h *ReportHandler) GetPaymentReportPDF(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = services.PeriodYTD
	}

	pdf, err := h.Service.GeneratePaymentReportPDF(r.Context(), period)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payment-report-%s.pdf", period))
	w.Write(pdf)
}

func (h *ReportHandler) GetNextMonth(w http.ResponseWriter, r *http.Request) {
	next, err := h.Service.NextMonth()
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    next,
	})
}

func (h *ReportHandler) GetMonthExists(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]
	exists, err := h.Service.MonthExists(r.Context(), month)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"exists":  exists,
	})
}
