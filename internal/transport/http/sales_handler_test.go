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

// MockSalesService is a mock implementation of SalesServiceInterface
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) Report(ctx context.Context, filter domain.ReportFilter) (*domain.SalesReport, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

func (m *MockSalesService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestSalesHandler_GetReport(t *testing.T) {
	mockService := new(MockSalesService)
	handler := NewSalesHandler(mockService, slog.Default())

	wantFilter := domain.ReportFilter{Category: "Dairy", Name: "milk"}
	mockService.On("Report", wantFilter).Return(&domain.SalesReport{
		Filter:  wantFilter,
		Metrics: domain.SalesMetrics{TotalSales: 150, TotalProfit: 15, OverallGP: 0.1, ItemCount: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/report?category=Dairy&name=milk", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.SalesReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 150.0, report.Metrics.TotalSales)
	assert.Equal(t, "Dairy", report.Filter.Category)
	mockService.AssertExpectations(t)
}

func TestSalesHandler_GetReport_LoadErrorIs503(t *testing.T) {
	mockService := new(MockSalesService)
	handler := NewSalesHandler(mockService, slog.Default())

	mockService.On("Report", domain.ReportFilter{}).
		Return(nil, apperrors.NewLoadError("failed to open workbook", nil))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SOURCE_UNAVAILABLE")
}

func TestSalesHandler_GetReport_SchemaErrorIs422(t *testing.T) {
	mockService := new(MockSalesService)
	handler := NewSalesHandler(mockService, slog.Default())

	mockService.On("Report", domain.ReportFilter{}).
		Return(nil, apperrors.NewSchemaError(`required column "Item Code" not found`, nil))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "SCHEMA_MISMATCH")
}

func TestSalesHandler_GetReport_FilterTooLong(t *testing.T) {
	mockService := new(MockSalesService)
	handler := NewSalesHandler(mockService, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/report?name="+strings.Repeat("x", 200), nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Report", mock.Anything)
}

func TestSalesHandler_GetCategories(t *testing.T) {
	mockService := new(MockSalesService)
	handler := NewSalesHandler(mockService, slog.Default())

	mockService.On("Categories").Return([]string{"All", "Bakery", "Dairy"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"All", "Bakery", "Dairy"}, body.Categories)
}
