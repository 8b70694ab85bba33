package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

var (
	followerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "header_follower",
		Name:      "sync_total",
		Help:      "Count of header sync iterations.",
	}, []string{"coin", "network", "status"})
	followerSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "header_follower",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a header sync iteration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
	followerAppliedHeaders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "header_follower",
		Name:      "applied_headers_total",
		Help:      "Count of headers applied to the best chain.",
	}, []string{"coin", "network"})
	followerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "header_follower",
		Name:      "reorgs_total",
		Help:      "Count of applied reorganizations.",
	}, []string{"coin", "network"})
	followerReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "header_follower",
		Name:      "reorg_depth",
		Help:      "Number of best chain blocks replaced per reorganization.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"coin", "network"})
	followerTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "header_follower",
		Name:      "tip_height",
		Help:      "Height of the best chain tip.",
	}, []string{"coin", "network"})
)

// HeaderFollower records the header follower of one coin and network.
type HeaderFollower struct {
	coin    string
	network string
}

func NewHeaderFollower(coin model.Coin, network model.Network) *HeaderFollower {
	return &HeaderFollower{coin: labelOrUnknown(string(coin)), network: labelOrUnknown(string(network))}
}

// ObserveSync records one sync iteration and the number of headers it applied.
func (m HeaderFollower) ObserveSync(err error, applied int, started time.Time) {
	status := statusLabel(err)
	followerSyncTotal.WithLabelValues(m.coin, m.network, status).Inc()
	followerSyncDuration.WithLabelValues(m.coin, m.network, status).Observe(time.Since(started).Seconds())
	if applied > 0 {
		followerAppliedHeaders.WithLabelValues(m.coin, m.network).Add(float64(applied))
	}
}

func (m HeaderFollower) ObserveReorg(replaced uint64) {
	followerReorgsTotal.WithLabelValues(m.coin, m.network).Inc()
	followerReorgDepth.WithLabelValues(m.coin, m.network).Observe(float64(replaced))
}

func (m HeaderFollower) SetTip(height uint64) {
	followerTipHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}
