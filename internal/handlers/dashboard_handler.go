package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avibhor77/rent-sub001/internal/cache"
	"github.com/avibhor77/rent-sub001/internal/services"
	"github.com/avibhor77/rent-sub001/pkg/utils"
)

type DashboardHandler struct {
	Service      *services.DashboardService
	CacheEnabled bool
}

func NewDashboardHandler(service *services.DashboardService, cacheEnabled bool) *DashboardHandler {
	return &DashboardHandler{Service: service, CacheEnabled: cacheEnabled}
}

func (h *DashboardHandler) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		utils.Error(w, http.StatusBadRequest, "month parameter required")
		return
	}

	if h.CacheEnabled {
		if payload, ok := cache.GetDashboard(r.Context(), month); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	dashboard, err := h.Service.BuildDashboard(r.Context(), month)
	if err != nil {
		writeError(w, err)
		return
	}

	envelope := map[string]interface{}{
		"success": true,
		"data":    dashboard,
		"month":   month,
	}

	if h.CacheEnabled {
		if payload, err := json.Marshal(envelope); err == nil {
			cache.SetDashboard(r.Context(), month, payload)
		}
	}

	utils.JSON(w, http.StatusOK, envelope)
}
