package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avibhor77/rent-sub001/internal/cache"
	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/services"
	"github.com/avibhor77/rent-sub001/pkg/utils"
)

type RentHandler struct {
	Service      *services.RentService
	CacheEnabled bool
}

func NewRentHandler(service *services.RentService, cacheEnabled bool) *RentHandler {
	return &RentHandler{Service: service, CacheEnabled: cacheEnabled}
}

func (h *RentHandler) invalidate(r *http.Request) {
	if h.CacheEnabled {
		cache.InvalidateDashboards(r.Context())
	}
}

func (h *RentHandler) GetRentData(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.Store.RentRecords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    records,
	})
}

func (h *RentHandler) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	var req models.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.MarkPaid(r.Context(), req.Tenant, req.Month); err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(r)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Payment for %s in %s marked as paid", req.Tenant, req.Month),
	})
}

func (h *RentHandler) AdjustRent(w http.ResponseWriter, r *http.Request) {
	var req models.AdjustRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.AdjustRent(r.Context(), req.Tenant, req.Month, req.Amount, req.Type); err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(r)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Rent for %s in %s adjusted to %.2f", req.Tenant, req.Month, req.Amount),
	})
}

func (h *RentHandler) UpsertRentRecord(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertRentRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpsertRentRecord(r.Context(), req.Tenant, req.Month, req.Updates); err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(r)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Rent record for %s in %s saved", req.Tenant, req.Month),
	})
}
