// Package metrics exposes Prometheus collectors for ledger commands and balances.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/insights"
)

// OutcomeOK labels a command that was applied.
const OutcomeOK = "ok"

// Metrics groups the ledger collectors.
type Metrics struct {
	Commands    *prometheus.CounterVec
	Outstanding prometheus.Gauge
	Available   prometheus.Gauge
	Utilization prometheus.Gauge
	Cards       prometheus.Gauge
}

// New creates the collectors under namespace and registers them on reg.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Ledger commands processed, by command and outcome.",
		}, []string{"command", "outcome"}),
		Outstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outstanding_rupees",
			Help:      "Total outstanding balance across all cards.",
		}),
		Available: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "available_rupees",
			Help:      "Total available credit across all cards.",
		}),
		Utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "utilization_percent",
			Help:      "Outstanding as a percentage of the total credit limit.",
		}),
		Cards: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cards",
			Help:      "Number of cards in the ledger.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Commands, m.Outstanding, m.Available, m.Utilization, m.Cards} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// ObserveCommand counts one command. The outcome label is OutcomeOK or the
// apperrors code of err.
func (m *Metrics) ObserveCommand(command string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = apperrors.Code(err)
	}
	m.Commands.WithLabelValues(command, outcome).Inc()
}

// ObserveSummary sets the balance gauges from a dashboard summary.
func (m *Metrics) ObserveSummary(s insights.Summary) {
	m.Outstanding.Set(s.TotalOutstanding.InexactFloat64())
	m.Available.Set(s.TotalAvailable.InexactFloat64())
	m.Utilization.Set(float64(s.Utilization))
	m.Cards.Set(float64(s.CardCount))
}
