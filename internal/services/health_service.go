package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"retailpulse/internal/config"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	datasets  config.DatasetsConfig
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Datasets  map[string]string      `json:"datasets,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(version string, datasets config.DatasetsConfig, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		datasets:  datasets,
		startTime: time.Now(),
		logger:    logger.With(slog.String("component", "health_service")),
	}
}

// Check reports overall health. The service is degraded when any source
// workbook is missing: the dashboards that depend on it will return load
// errors until the file appears.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Runtime: map[string]interface{}{
			"uptime_seconds": time.Since(s.startTime).Seconds(),
			"go_version":     runtime.Version(),
			"os":             runtime.GOOS,
			"arch":           runtime.GOARCH,
		},
		Datasets: make(map[string]string, 4),
	}

	checks := map[string]string{
		"price_list":     s.datasets.PriceList,
		"sales_workbook": s.datasets.SalesWorkbook,
		"stock_book":     s.datasets.StockBook,
		"physical_count": s.datasets.PhysicalCount,
	}
	for name, path := range checks {
		if _, err := os.Stat(path); err != nil {
			status.Datasets[name] = fmt.Sprintf("unavailable: %v", err)
			status.Status = "degraded"
		} else {
			status.Datasets[name] = "ok"
		}
	}

	if status.Status != "healthy" {
		s.logger.WarnContext(ctx, "health check degraded", slog.Any("datasets", status.Datasets))
	}

	return status
}
