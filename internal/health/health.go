package health

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/avibhor77/rent-sub001/internal/store"
)

type HealthChecker struct {
	store     store.Store
	startedAt time.Time
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
}

type StoreHealth struct {
	Loaded bool `json:"loaded"`
}

type DetailedStatus struct {
	HealthStatus
	Uptime        string  `json:"uptime"`
	Goroutines    int     `json:"goroutines"`
	ProcessRSSMB  float64 `json:"process_rss_mb"`
	MemoryPercent float64 `json:"memory_percent"`
}

func NewHealthChecker(s store.Store) *HealthChecker {
	return &HealthChecker{store: s, startedAt: time.Now()}
}

// CheckBasic is the readiness view: healthy once the dataset preload has
// finished.
func (h *HealthChecker) CheckBasic() HealthStatus {
	status := "healthy"
	loaded := h.store.Loaded()
	if !loaded {
		status = "unhealthy"
	}
	return HealthStatus{
		Status: status,
		Store:  StoreHealth{Loaded: loaded},
	}
}

// CheckDetailed adds process-level stats for the monitoring view.
func (h *HealthChecker) CheckDetailed() DetailedStatus {
	out := DetailedStatus{
		HealthStatus: h.CheckBasic(),
		Uptime:       time.Since(h.startedAt).Round(time.Second).String(),
		Goroutines:   runtime.NumGoroutine(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		out.MemoryPercent = vm.UsedPercent
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil && info != nil {
			out.ProcessRSSMB = float64(info.RSS) / (1024 * 1024)
		}
	}
	return out
}
