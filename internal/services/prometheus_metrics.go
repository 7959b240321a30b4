package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsGenerated    *prometheus.CounterVec
	reportDuration      *prometheus.HistogramVec
	invalidAccounts     prometheus.Counter
	interestUnavailable prometheus.Counter
	projectionOutcomes  *prometheus.CounterVec
	portfolioSize       prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the analytics collectors on reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_reports_total",
				Help: "Total number of analytics reports requested",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_report_duration_milliseconds",
				Help:    "Analytics report assembly duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		invalidAccounts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_invalid_accounts_total",
				Help: "Total number of accounts skipped because their ledger could not be aggregated",
			},
		),
		interestUnavailable: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_interest_unavailable_total",
				Help: "Total number of accounts reported without interest saved",
			},
		),
		projectionOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_projections_total",
				Help: "Total number of debt-free projections by outcome",
			},
			[]string{"status"},
		),
		portfolioSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_portfolio_accounts",
				Help:    "Number of accounts read per portfolio report",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "report.generated":
		if report := tags["report"]; report != "" && status != "" {
			m.reportsGenerated.WithLabelValues(report, status).Inc()
		}
	case "report.invalid_account":
		m.invalidAccounts.Inc()
	case "report.interest_unavailable":
		m.interestUnavailable.Inc()
	case "projection.outcome":
		if status != "" {
			m.projectionOutcomes.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.account_summary":
		m.reportDuration.WithLabelValues("account_summary").Observe(float64(duration.Milliseconds()))
	case "report.dashboard_overview":
		m.reportDuration.WithLabelValues("dashboard_overview").Observe(float64(duration.Milliseconds()))
	case "report.progress_summary":
		m.reportDuration.WithLabelValues("progress_summary").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "portfolio.accounts" {
		m.portfolioSize.Observe(value)
	}
}
