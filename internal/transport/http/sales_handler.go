package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "retailpulse/internal/errors"
	"retailpulse/pkg/contracts/domain"
)

// SalesHandler serves the sales dashboard endpoints
type SalesHandler struct {
	service  SalesServiceInterface
	logger   *slog.Logger
	validate *validator.Validate
}

// NewSalesHandler creates a new sales dashboard handler
func NewSalesHandler(service SalesServiceInterface, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		service:  service,
		logger:   logger.With(slog.String("component", "sales_handler")),
		validate: validator.New(),
	}
}

// Routes returns the sales dashboard routes
func (h *SalesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/report", h.GetReport)
	r.Get("/categories", h.GetCategories)
	return r
}

// filterFromQuery builds a report filter from request query parameters and
// validates it. The three parameters mirror the dashboard widgets: an exact
// category (with "All" as the no-op sentinel) and two substring searches.
func (h *SalesHandler) filterFromQuery(r *http.Request) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		Category: r.URL.Query().Get("category"),
		Name:     r.URL.Query().Get("name"),
		Barcode:  r.URL.Query().Get("barcode"),
	}
	if err := h.validate.Struct(filter); err != nil {
		return domain.ReportFilter{}, err
	}
	return filter, nil
}

// GetReport handles GET /api/sales/report
func (h *SalesHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := h.filterFromQuery(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid sales report filter", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrValidation("filter", err.Error())))
		return
	}

	report, err := h.service.Report(ctx, filter)
	observeReportRun("sales", err)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build sales report", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	render.JSON(w, r, report)
}

// GetCategories handles GET /api/sales/categories
func (h *SalesHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list sales categories", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	render.JSON(w, r, map[string]interface{}{"categories": categories})
}
