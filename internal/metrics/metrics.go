package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Economy metrics
var (
	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAccountsCreated,
			Help: HelpTextAccountsCreated,
		},
	)

	TransfersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTransfersTotal,
			Help: HelpTextTransfersTotal,
		},
	)

	GamblesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamblesTotal,
			Help: HelpTextGamblesTotal,
		},
		[]string{LabelOutcome},
	)

	GambleVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGambleVolume,
			Help: HelpTextGambleVolume,
		},
	)

	DollarsMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDollarsMoved,
			Help: HelpTextDollarsMoved,
		},
		[]string{LabelOperation},
	)
)

// Inventory metrics
var (
	ItemsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
		[]string{LabelItemType},
	)

	ItemsTransferred = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsTransferred,
			Help: HelpTextItemsTransferred,
		},
	)
)

// Airdrop metrics
var (
	AirdropsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAirdropsStarted,
			Help: HelpTextAirdropsStarted,
		},
	)

	AirdropsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAirdropsClaimed,
			Help: HelpTextAirdropsClaimed,
		},
	)

	AirdropsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAirdropsExpired,
			Help: HelpTextAirdropsExpired,
		},
	)
)

// RecordGamble updates the gamble counters for one resolved wager.
func RecordGamble(stake int64, won, push bool) {
	GambleVolume.Add(float64(stake))
	switch {
	case push:
		GamblesTotal.WithLabelValues(OutcomePush).Inc()
	case won:
		GamblesTotal.WithLabelValues(OutcomeWin).Inc()
	default:
		GamblesTotal.WithLabelValues(OutcomeLoss).Inc()
	}
}
