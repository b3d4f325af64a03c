package http

import (
	"context"

	"retailpulse/pkg/contracts/domain"
)

// SalesServiceInterface is what the sales handler needs from the sales
// dashboard service.
type SalesServiceInterface interface {
	Report(ctx context.Context, filter domain.ReportFilter) (*domain.SalesReport, error)
	Categories(ctx context.Context) ([]string, error)
}

// VarianceServiceInterface is what the variance handler needs from the
// variance dashboard service.
type VarianceServiceInterface interface {
	Report(ctx context.Context, filter domain.ReportFilter) (*domain.VarianceReport, error)
	Categories(ctx context.Context) ([]string, error)
}
