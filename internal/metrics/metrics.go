// Package metrics exposes Prometheus counters for the scan loop.
package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"BounceSentry/internal/model"
)

// Metrics holds all Prometheus metrics for the scanner.
type Metrics struct {
	ScansTotal     prometheus.Counter
	SymbolsScanned prometheus.Counter
	SymbolsFailed  prometheus.Counter
	SignalsFound   prometheus.Counter
	ScanDuration   prometheus.Histogram
	LastRunSignals prometheus.Gauge

	registry *prometheus.Registry
}

// New creates and registers all scanner metrics on a private registry.
func New() *Metrics {
	m := &Metrics{
		ScansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bouncesentry_scans_total",
			Help: "Completed scan runs.",
		}),
		SymbolsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bouncesentry_symbols_scanned_total",
			Help: "Symbols attempted across all scans.",
		}),
		SymbolsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bouncesentry_symbols_failed_total",
			Help: "Symbols with missing or invalid data across all scans.",
		}),
		SignalsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bouncesentry_signals_total",
			Help: "Signals emitted across all scans.",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bouncesentry_scan_duration_seconds",
			Help:    "Wall time of one full scan.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		LastRunSignals: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bouncesentry_last_run_signals",
			Help: "Signals found by the most recent scan.",
		}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(
		m.ScansTotal, m.SymbolsScanned, m.SymbolsFailed,
		m.SignalsFound, m.ScanDuration, m.LastRunSignals,
	)
	return m
}

// ObserveRun records one completed scan report.
func (m *Metrics) ObserveRun(rep *model.Report) {
	m.ScansTotal.Inc()
	m.SymbolsScanned.Add(float64(rep.Stats.Attempted))
	m.SymbolsFailed.Add(float64(rep.Stats.Failed))
	m.SignalsFound.Add(float64(rep.Stats.Signals))
	m.ScanDuration.Observe(rep.Duration().Seconds())
	m.LastRunSignals.Set(float64(rep.Stats.Signals))
}

// Serve runs the /metrics endpoint on addr until ctx is cancelled, then
// shuts the server down gracefully. Blocks; run in a goroutine.
func (m *Metrics) Serve(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] metrics shutdown: %v", err)
		}
	}()

	log.Printf("[INFO] metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERROR] metrics server: %v", err)
	}
}
