// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics for account syncs and the
// admin console and exposes them for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sync outcomes used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport"
	OutcomeProtocol  = "protocol"
	OutcomeCanceled  = "canceled"
	OutcomeStorage   = "storage"
)

// Recorder is what services report to.
type Recorder interface {
	RecordSync(outcome string, duration time.Duration)
	RecordBalanceMerged()
	RecordBalanceSkipped()
	RecordAdminLogin(success bool)
}

// Collector is the Prometheus implementation of [Recorder].
type Collector struct {
	syncRuns        *prometheus.CounterVec
	syncDuration    prometheus.Histogram
	balancesMerged  prometheus.Counter
	balancesSkipped prometheus.Counter
	adminLogins     *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_dash_sync_runs_total",
			Help: "Account sync runs by outcome.",
		}, []string{"outcome"}),
		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trade_dash_sync_duration_seconds",
			Help:    "Wall time of a single account sync run.",
			Buckets: prometheus.DefBuckets,
		}),
		balancesMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trade_dash_balances_merged_total",
			Help: "Balance responses merged into a stored account.",
		}),
		balancesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trade_dash_balances_skipped_total",
			Help: "Balance responses skipped because of a broker error or an unknown account.",
		}),
		adminLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_dash_admin_logins_total",
			Help: "Admin login attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.syncRuns,
		c.syncDuration,
		c.balancesMerged,
		c.balancesSkipped,
		c.adminLogins,
	)

	return c
}

func (c *Collector) RecordSync(outcome string, duration time.Duration) {
	c.syncRuns.WithLabelValues(outcome).Inc()
	c.syncDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordBalanceMerged() {
	c.balancesMerged.Inc()
}

func (c *Collector) RecordBalanceSkipped() {
	c.balancesSkipped.Inc()
}

func (c *Collector) RecordAdminLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.adminLogins.WithLabelValues(result).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordSync(string, time.Duration) {}
func (Nop) RecordBalanceMerged()             {}
func (Nop) RecordBalanceSkipped()            {}
func (Nop) RecordAdminLogin(bool)            {}
