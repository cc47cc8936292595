package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors, grouped by the
// validator they observe.
type Metrics struct {
	// Hierarchy engine metrics
	SuggestionsIssued prometheus.Counter
	CodeValidations   *prometheus.CounterVec

	// Journal validator metrics
	EntryValidations *prometheus.CounterVec

	// Shared
	ViolationsByRule *prometheus.CounterVec

	// Snapshot metrics
	SnapshotFetches   *prometheus.CounterVec
	SnapshotCacheHits prometheus.Counter
	SnapshotStaleness prometheus.Gauge
}

// New registers the metric set with the default registry. Call it once per
// process.
func New() *Metrics {
	return &Metrics{
		SuggestionsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerguard_code_suggestions_total",
			Help: "Total number of account codes suggested",
		}),
		CodeValidations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerguard_code_validations_total",
				Help: "Total account code validations by outcome",
			},
			[]string{"outcome"},
		),
		EntryValidations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerguard_entry_validations_total",
				Help: "Total journal entry validations by outcome",
			},
			[]string{"outcome"},
		),
		ViolationsByRule: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerguard_violations_total",
				Help: "Total violations returned, by rule",
			},
			[]string{"rule"},
		),
		SnapshotFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerguard_snapshot_fetches_total",
				Help: "Total snapshot fetches by source and status",
			},
			[]string{"source", "status"},
		),
		SnapshotCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerguard_snapshot_cache_hits_total",
			Help: "Total snapshot reads served from cache",
		}),
		SnapshotStaleness: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerguard_snapshot_age_seconds",
			Help: "Age of the last cached account snapshot",
		}),
	}
}

// Outcome labels for validation counters.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)
