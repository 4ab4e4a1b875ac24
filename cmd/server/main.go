package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/avibhor77/rent-sub001/internal/cache"
	"github.com/avibhor77/rent-sub001/internal/config"
	"github.com/avibhor77/rent-sub001/internal/handlers"
	"github.com/avibhor77/rent-sub001/internal/health"
	h "github.com/avibhor77/rent-sub001/internal/http"
	"github.com/avibhor77/rent-sub001/internal/middleware"
	"github.com/avibhor77/rent-sub001/internal/services"
	"github.com/avibhor77/rent-sub001/internal/store"
	"github.com/avibhor77/rent-sub001/internal/timeutil"
)

func main() {
	cfg := config.Load()

	cacheEnabled := false
	if cfg.Cache.Enabled {
		if err := cache.Init(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.TTL); err != nil {
			log.Printf("[Cache] redis unavailable, running without cache: %v", err)
		} else {
			cacheEnabled = true
			log.Printf("[Cache] redis connected at %s", cfg.Cache.RedisAddr)
		}
	}

	dataStore := store.NewMemoryStore(cfg.Store.InitTimeout, cfg.Store.SeedFile)
	dataStore.Warm()

	comparer := timeutil.Comparer{Order: timeutil.ParseOrder(cfg.Report.MonthOrder)}

	chargeService := services.NewChargeService(dataStore)
	dashboardService := services.NewDashboardService(dataStore, comparer)
	reportService := services.NewReportService(dataStore, comparer, cfg.Report.CurrentMonth)
	rentService := services.NewRentService(dataStore, chargeService)

	healthChecker := health.NewHealthChecker(dataStore)

	router := h.NewRouter(
		handlers.NewDashboardHandler(dashboardService, cacheEnabled),
		handlers.NewRentHandler(rentService, cacheEnabled),
		handlers.NewTenantHandler(rentService, cacheEnabled),
		handlers.NewMeterHandler(rentService, chargeService),
		handlers.NewReportHandler(reportService),
		handlers.NewHealthHandler(healthChecker),
	)

	var handler http.Handler = router
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.APILogging(handler)
	handler = middleware.NewCORS(cfg)(handler)
	handler = middleware.PanicRecovery(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] rent dashboard listening on %s (reference month %s)", addr, cfg.Report.CurrentMonth)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
