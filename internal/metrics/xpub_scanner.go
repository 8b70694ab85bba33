package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

var (
	xpubScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "xpub_scanner",
		Name:      "scans_total",
		Help:      "Count of xpub scans.",
	}, []string{"coin", "network", "status"})
	xpubScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "xpub_scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of an xpub scan.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"coin", "network", "status"})
	xpubDerivedAddresses = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "xpub_scanner",
		Name:      "derived_addresses",
		Help:      "Number of addresses derived per scan.",
		Buckets:   prometheus.ExponentialBuckets(20, 2, 10),
	}, []string{"coin", "network"})
	xpubUsedAddresses = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "xpub_scanner",
		Name:      "used_addresses",
		Help:      "Number of addresses with history per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})
)

// XPubScanner records xpub scans of one coin and network.
type XPubScanner struct {
	coin    string
	network string
}

func NewXPubScanner(coin model.Coin, network model.Network) *XPubScanner {
	return &XPubScanner{coin: labelOrUnknown(string(coin)), network: labelOrUnknown(string(network))}
}

func (m XPubScanner) ObserveScan(err error, derived, used int, started time.Time) {
	status := statusLabel(err)
	xpubScansTotal.WithLabelValues(m.coin, m.network, status).Inc()
	xpubScanDuration.WithLabelValues(m.coin, m.network, status).Observe(time.Since(started).Seconds())
	if err == nil {
		xpubDerivedAddresses.WithLabelValues(m.coin, m.network).Observe(float64(derived))
		xpubUsedAddresses.WithLabelValues(m.coin, m.network).Observe(float64(used))
	}
}
