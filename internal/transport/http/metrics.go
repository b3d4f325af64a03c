package http

import (
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retailpulse_http_requests_total",
		Help: "HTTP requests served, by method, route, and status code.",
	}, []string{"method", "path", "status"})

	reportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retailpulse_report_runs_total",
		Help: "Dashboard pipeline runs, by dashboard and outcome.",
	}, []string{"dashboard", "outcome"})
)

// MetricsHandler exposes the prometheus registry at /metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// CountRequests is middleware recording one counter increment per request.
func CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		requestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}

// observeReportRun records one pipeline run for a dashboard.
func observeReportRun(dashboard string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	reportRuns.WithLabelValues(dashboard, outcome).Inc()
}
