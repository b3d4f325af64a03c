package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "retailpulse/internal/errors"
	"retailpulse/pkg/contracts/domain"
)

// MockVarianceService is a mock implementation of VarianceServiceInterface
type MockVarianceService struct {
	mock.Mock
}

func (m *MockVarianceService) Report(ctx context.Context, filter domain.ReportFilter) (*domain.VarianceReport, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VarianceReport), args.Error(1)
}

func (m *MockVarianceService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestVarianceHandler_GetReport(t *testing.T) {
	mockService := new(MockVarianceService)
	handler := NewVarianceHandler(mockService, slog.Default())

	wantFilter := domain.ReportFilter{Barcode: "1001"}
	mockService.On("Report", wantFilter).Return(&domain.VarianceReport{
		Filter: wantFilter,
		Metrics: domain.VarianceMetrics{
			TotalBookValue:     300,
			TotalPhysicalValue: 160,
			TotalDiffValue:     -140,
			ItemCount:          3,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/report?barcode=1001", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.VarianceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, -140.0, report.Metrics.TotalDiffValue)
	assert.Equal(t, "1001", report.Filter.Barcode)
	mockService.AssertExpectations(t)
}

func TestVarianceHandler_GetReport_LoadErrorIs503(t *testing.T) {
	mockService := new(MockVarianceService)
	handler := NewVarianceHandler(mockService, slog.Default())

	mockService.On("Report", domain.ReportFilter{}).
		Return(nil, apperrors.NewLoadError("failed to open workbook", nil))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SOURCE_UNAVAILABLE")
}

func TestVarianceHandler_GetReport_FilterTooLong(t *testing.T) {
	mockService := new(MockVarianceService)
	handler := NewVarianceHandler(mockService, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/report?barcode="+strings.Repeat("9", 80), nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Report", mock.Anything)
}

func TestVarianceHandler_GetCategories(t *testing.T) {
	mockService := new(MockVarianceService)
	handler := NewVarianceHandler(mockService, slog.Default())

	mockService.On("Categories").Return([]string{"All", "Grains", "Unknown"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"All", "Grains", "Unknown"}, body.Categories)
}
