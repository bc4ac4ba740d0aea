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

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Action Metrics
var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsTotal,
			Help: HelpTextActionsTotal,
		},
		[]string{LabelAction, LabelOutcome},
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameActionDuration,
			Help:    HelpTextActionDuration,
			Buckets: ActionLatencyBuckets,
		},
		[]string{LabelAction},
	)
)

// Business Metrics
var (
	Harvests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
	)

	HarvestedWeight = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvestedWeight,
			Help: HelpTextHarvestedWeight,
		},
	)

	TerpRewarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTerpRewarded,
			Help: HelpTextTerpRewarded,
		},
	)

	BiomassRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBiomassRedeemed,
			Help: HelpTextBiomassRedeemed,
		},
	)

	SeedsMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedsMinted,
			Help: HelpTextSeedsMinted,
		},
	)

	SeedsBred = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedsBred,
			Help: HelpTextSeedsBred,
		},
	)

	SlotsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsUnlocked,
			Help: HelpTextSlotsUnlocked,
		},
	)

	StageAdvances = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStageAdvances,
			Help: HelpTextStageAdvances,
		},
		[]string{LabelStage},
	)
)

// State gauges, refreshed by the scheduler
var (
	Accounts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAccounts,
			Help: HelpTextAccounts,
		},
	)

	TotalBiomass = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTotalBiomass,
			Help: HelpTextTotalBiomass,
		},
	)

	CureVault = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCureVault,
			Help: HelpTextCureVault,
		},
	)

	GlobalVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGlobalVersion,
			Help: HelpTextGlobalVersion,
		},
	)

	SeedCounter = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSeedCounter,
			Help: HelpTextSeedCounter,
		},
	)

	BiomassCounter = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBiomassCounter,
			Help: HelpTextBiomassCounter,
		},
	)
)
