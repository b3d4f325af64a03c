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

// VarianceHandler serves the stock variance dashboard endpoints
type VarianceHandler struct {
	service  VarianceServiceInterface
	logger   *slog.Logger
	validate *validator.Validate
}

// NewVarianceHandler creates a new variance dashboard handler
func NewVarianceHandler(service VarianceServiceInterface, logger *slog.Logger) *VarianceHandler {
	return &VarianceHandler{
		service:  service,
		logger:   logger.With(slog.String("component", "variance_handler")),
		validate: validator.New(),
	}
}

// Routes returns the variance dashboard routes
func (h *VarianceHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/report", h.GetReport)
	r.Get("/categories", h.GetCategories)
	return r
}

// GetReport handles GET /api/variance/report
func (h *VarianceHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := domain.ReportFilter{
		Category: r.URL.Query().Get("category"),
		Name:     r.URL.Query().Get("name"),
		Barcode:  r.URL.Query().Get("barcode"),
	}
	if err := h.validate.Struct(filter); err != nil {
		h.logger.WarnContext(ctx, "invalid variance report filter", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrValidation("filter", err.Error())))
		return
	}

	report, err := h.service.Report(ctx, filter)
	observeReportRun("variance", err)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build variance report", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	render.JSON(w, r, report)
}

// GetCategories handles GET /api/variance/categories
func (h *VarianceHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list variance categories", slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromAppError(err)))
		return
	}

	render.JSON(w, r, map[string]interface{}{"categories": categories})
}
