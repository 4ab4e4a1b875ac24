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

type TenantHandler struct {
	Service      *services.RentService
	CacheEnabled bool
}

func NewTenantHandler(service *services.RentService, cacheEnabled bool) *TenantHandler {
	return &TenantHandler{Service: service, CacheEnabled: cacheEnabled}
}

func (h *TenantHandler) GetTenantConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.Service.Store.TenantConfigs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    configs,
	})
}

func (h *TenantHandler) UpdateTenantConfig(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTenantConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateTenantConfig(r.Context(), req.Tenant, req.Updates); err != nil {
		writeError(w, err)
		return
	}
	if h.CacheEnabled {
		cache.InvalidateDashboards(r.Context())
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Config for %s updated", req.Tenant),
	})
}
