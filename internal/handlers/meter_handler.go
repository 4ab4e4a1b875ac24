package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/services"
	"github.com/avibhor77/rent-sub001/pkg/utils"
)

type MeterHandler struct {
	Service *services.RentService
	Charges *services.ChargeService
}

func NewMeterHandler(service *services.RentService, charges *services.ChargeService) *MeterHandler {
	return &MeterHandler{Service: service, Charges: charges}
}

func (h *MeterHandler) GetMeterData(w http.ResponseWriter, r *http.Request) {
	readings, err := h.Service.Store.MeterReadings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    readings,
	})
}

// GetEnergyCharges exposes the derived tenant -> charge mapping for a
// month; an empty object means no meter data yet.
func (h *MeterHandler) GetEnergyCharges(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		utils.Error(w, http.StatusBadRequest, "month parameter required")
		return
	}

	charges, err := h.Charges.EnergyCharges(r.Context(), month)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    charges,
		"month":   month,
	})
}

func (h *MeterHandler) UpdateMeterReadings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMeterReadingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateMeterReadings(r.Context(), req.Month, req.Readings); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Meter readings for %s updated", req.Month),
	})
}

func (h *MeterHandler) UpdateA206Meter(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMeterReadingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateA206Meter(r.Context(), req.Month, req.Readings); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("A-206 meter for %s updated", req.Month),
	})
}
