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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase, LabelRarity},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	UpgradesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesResolved,
			Help: HelpTextUpgradesResolved,
		},
		[]string{LabelResult},
	)

	UpgradeChance = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameUpgradeChance,
			Help:    HelpTextUpgradeChance,
			Buckets: ChanceBuckets,
		},
	)

	ContractsSigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContractsSigned,
			Help: HelpTextContractsSigned,
		},
		[]string{LabelRarity},
	)

	PromoRedemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePromoRedemptions,
			Help: HelpTextPromoRedemptions,
		},
		[]string{LabelCode},
	)

	DailyBonusClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyBonusClaims,
			Help: HelpTextDailyBonusClaims,
		},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
		[]string{LabelSource},
	)

	MoneySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
		[]string{LabelSource},
	)
)
