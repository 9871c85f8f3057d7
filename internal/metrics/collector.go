// Package metrics exposes VarGuard observability: prometheus
// collectors fed by the risk manager and an HTTP surface for scraping
// and status checks.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector aggregates the VarGuard prometheus metrics on a private
// registry. It implements the risk package's Recorder interface.
type Collector struct {
	registry *prometheus.Registry

	currentVaR  prometheus.Gauge
	regime      *prometheus.GaugeVec
	transitions *prometheus.CounterVec
	directives  *prometheus.CounterVec
	alerts      prometheus.Counter

	mu         sync.Mutex
	lastRegime string
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		currentVaR: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "varguard_current_var",
			Help: "Aggregate portfolio VaR as of the last position mutation",
		}),
		regime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "varguard_risk_regime",
			Help: "Active risk regime (1 for the active regime, 0 otherwise)",
		}, []string{"regime"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "varguard_regime_transitions_total",
			Help: "Regime transitions by from/to pair",
		}, []string{"from", "to"}),
		directives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "varguard_directives_sent_total",
			Help: "Directives emitted onto the trading engine queue",
		}, []string{"directive"}),
		alerts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "varguard_alerts_dispatched_total",
			Help: "Alerts dispatched on regime escalation",
		}),
	}
	c.registry.MustRegister(c.currentVaR, c.regime, c.transitions, c.directives, c.alerts)
	return c
}

// Registry returns the collector's private prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) RecordVaR(value float64) {
	c.currentVaR.Set(value)
}

// RecordRegime marks regime as active and clears the previously
// active one.
func (c *Collector) RecordRegime(regime string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastRegime != "" && c.lastRegime != regime {
		c.regime.WithLabelValues(c.lastRegime).Set(0)
	}
	c.regime.WithLabelValues(regime).Set(1)
	c.lastRegime = regime
}

func (c *Collector) RecordTransition(from, to string) {
	c.transitions.WithLabelValues(from, to).Inc()
}

func (c *Collector) RecordDirective(directive string) {
	c.directives.WithLabelValues(directive).Inc()
}

func (c *Collector) RecordAlert() {
	c.alerts.Inc()
}
