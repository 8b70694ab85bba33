package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of storage operations.",
	}, []string{"store", "operation", "coin", "network", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of storage operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"store", "operation", "coin", "network", "status"})
)

// Repository records operations of one storage backend, e.g. clickhouse or leveldb.
type Repository struct {
	store string
}

func NewRepository(store string) *Repository {
	return &Repository{store: labelOrUnknown(store)}
}

func (m Repository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	labels := []string{m.store, operation, labelOrUnknown(string(coin)), labelOrUnknown(string(network)), statusLabel(err)}
	repositoryOperationsTotal.WithLabelValues(labels...).Inc()
	repositoryOperationDuration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}
