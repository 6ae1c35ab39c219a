// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the blog server and
// exposes them on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goblog"

// Metrics contains the custom collectors recorded by the HTTP layer and the
// post service.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	PostViewsTotal       prometheus.Counter
	ViewIncrementFailure prometheus.Counter
}

// New creates a registry with the Go and process collectors plus the blog
// collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return NewWithRegisterer(registry)
}

// NewWithRegisterer registers the blog collectors on reg. Handler serves an
// empty exposition unless reg is a *prometheus.Registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		PostViewsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_views_total",
			Help:      "Total number of recorded post views",
		}),
		ViewIncrementFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_view_increment_failures_total",
			Help:      "Total number of post view increments that failed",
		}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.PostViewsTotal, m.ViewIncrementFailure)

	if r, ok := reg.(*prometheus.Registry); ok {
		m.registry = r
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
// Compression is left to the HTTP middleware.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{DisableCompression: true})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry, DisableCompression: true})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ViewRecorded counts one successful view increment.
func (m *Metrics) ViewRecorded() {
	m.PostViewsTotal.Inc()
}

// ViewIncrementFailed counts one view increment that did not reach the store.
func (m *Metrics) ViewIncrementFailed() {
	m.ViewIncrementFailure.Inc()
}
