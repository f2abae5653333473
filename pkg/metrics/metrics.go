// Package metrics registra as métricas Prometheus do painel:
//
//	sales_dashboard_renders_total{branch}
//	sales_dashboard_load_errors_total{kind}
//	sales_dashboard_load_duration_seconds
//	go_* e process_*
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once         sync.Once
	registry     *prometheus.Registry
	renders      *prometheus.CounterVec
	loadErrors   *prometheus.CounterVec
	loadDuration prometheus.Histogram
)

// Init registra os coletores uma única vez
func Init() {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		renders = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_dashboard_renders_total",
				Help: "Number of dashboard renders by selected branch",
			},
			[]string{"branch"},
		)

		loadErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_dashboard_load_errors_total",
				Help: "Number of failed sales data loads by error kind",
			},
			[]string{"kind"},
		)

		loadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sales_dashboard_load_duration_seconds",
			Help:    "Time spent loading the sales table",
			Buckets: prometheus.DefBuckets,
		})

		registry.MustRegister(
			renders,
			loadErrors,
			loadDuration,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
}

// Handler expõe as métricas registradas
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// IncrementRender conta uma renderização para a sucursal
func IncrementRender(branch string) {
	if renders != nil {
		renders.WithLabelValues(branch).Inc()
	}
}

// IncrementLoadError conta uma falha de carga do tipo informado
func IncrementLoadError(kind string) {
	if loadErrors != nil {
		loadErrors.WithLabelValues(kind).Inc()
	}
}

// ObserveLoad registra a duração de uma carga iniciada em start
func ObserveLoad(start time.Time) {
	if loadDuration != nil {
		loadDuration.Observe(time.Since(start).Seconds())
	}
}
