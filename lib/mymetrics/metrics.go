package mymetrics

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry            *prometheus.Registry
	Checkouts           *prometheus.CounterVec
	Rejections          *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	LatencyMS           prometheus.Histogram
}

func New(service string) *Metrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: service,
		Name:      "checkouts_total",
		Help:      "Total number of completed checkouts.",
	}, []string{"payment_method"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: service,
		Name:      "checkout_rejections_total",
		Help:      "Total number of rejected checkouts.",
	}, []string{"reason"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store",
		Subsystem: service,
		Name:      "persistence_failures_total",
		Help:      "Total number of failed writes to the order store or event log.",
	}, []string{"store"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "store",
		Subsystem: service,
		Name:      "checkout_duration_ms",
		Help:      "Checkout latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(checkouts, rejections, failures, latency)

	return &Metrics{
		registry:            registry,
		Checkouts:           checkouts,
		Rejections:          rejections,
		PersistenceFailures: failures,
		LatencyMS:           latency,
	}
}

func (m *Metrics) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})).Methods("GET")
}
