/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint, result string)
	ObserveResponseNS(endpoint string, t int64)
	AddTokens(n int)
	AddStatements(n int)
}

type metricsStore struct {
	registry   *prometheus.Registry
	Requests   *prometheus.CounterVec
	ResponseNS *prometheus.HistogramVec
	Tokens     prometheus.Counter
	Statements prometheus.Counter
}

var (
	EndpointLabel = "endpoint"
	ResultLabel   = "result"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lim_requests",
			Help: "Request counts for the playground endpoints",
		}, []string{EndpointLabel, ResultLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lim_response_ns",
			Help:    "Response times of the playground endpoints",
			Buckets: buckets,
		}, []string{EndpointLabel}),
		Tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "lim_tokens_total",
			Help: "The total number of tokens produced",
		}),
		Statements: factory.NewCounter(prometheus.CounterOpts{
			Name: "lim_statements_total",
			Help: "The total number of statements parsed",
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint, result string) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint, ResultLabel: result}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(endpoint string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}

func (ms *metricsStore) AddTokens(n int) {
	ms.Tokens.Add(float64(n))
}

func (ms *metricsStore) AddStatements(n int) {
	ms.Statements.Add(float64(n))
}
