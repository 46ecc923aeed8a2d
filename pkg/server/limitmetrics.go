/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/CrazzyCrisis/struct-prog-lang-Personal/pkg/lang/tokenizer"
	"github.com/prometheus/client_golang/prometheus"
)

type limitsCollector struct {
	config Config

	maxDepth       *prometheus.Desc
	maxSourceBytes *prometheus.Desc
	rules          *prometheus.Desc
}

// NewLimitsCollector exports the configured request limits and the size of
// the tokenizer rule table.
func NewLimitsCollector(config Config) prometheus.Collector {
	return &limitsCollector{
		config: config,
		maxDepth: prometheus.NewDesc(
			"lim_max_depth",
			"Deepest nesting accepted by the playground.",
			nil, nil,
		),
		maxSourceBytes: prometheus.NewDesc(
			"lim_max_source_bytes",
			"Largest program accepted by the playground.",
			nil, nil,
		),
		rules: prometheus.NewDesc(
			"lim_tokenizer_rules",
			"Number of rules in the tokenizer rule table.",
			nil, nil,
		),
	}
}

// Describe implements Collector.
func (c *limitsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.maxDepth
	ch <- c.maxSourceBytes
	ch <- c.rules
}

// Collect implements Collector.
func (c *limitsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.maxDepth, prometheus.GaugeValue, float64(c.config.MaxDepth))
	ch <- prometheus.MustNewConstMetric(c.maxSourceBytes, prometheus.GaugeValue, float64(c.config.MaxSourceBytes))
	ch <- prometheus.MustNewConstMetric(c.rules, prometheus.GaugeValue, float64(len(tokenizer.Rules())))
}
