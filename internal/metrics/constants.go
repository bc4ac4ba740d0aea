package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Action metric names
const (
	MetricNameActionsTotal   = "growpod_actions_total"
	MetricNameActionDuration = "growpod_action_duration_seconds"
)

// Business metric names
const (
	MetricNameHarvests        = "growpod_harvests_total"
	MetricNameHarvestedWeight = "growpod_harvested_weight_total"
	MetricNameTerpRewarded    = "growpod_terp_rewarded_total"
	MetricNameBiomassRedeemed = "growpod_biomass_redeemed_total"
	MetricNameSeedsMinted     = "growpod_seeds_minted_total"
	MetricNameSeedsBred       = "growpod_seeds_bred_total"
	MetricNameSlotsUnlocked   = "growpod_slots_unlocked_total"
	MetricNameStageAdvances   = "growpod_stage_advances_total"
)

// State gauge names
const (
	MetricNameAccounts       = "growpod_accounts"
	MetricNameTotalBiomass   = "growpod_total_biomass"
	MetricNameCureVault      = "growpod_cure_vault_balance"
	MetricNameGlobalVersion  = "growpod_global_version"
	MetricNameSeedCounter    = "growpod_seed_counter"
	MetricNameBiomassCounter = "growpod_biomass_counter"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Action metric help text
const (
	HelpTextActionsTotal   = "Total number of action invocations by outcome"
	HelpTextActionDuration = "Action invocation latency in seconds"
)

// Business metric help text
const (
	HelpTextHarvests        = "Total number of pods harvested"
	HelpTextHarvestedWeight = "Total harvested weight in micro-units"
	HelpTextTerpRewarded    = "Total TERP paid as rarity rewards in micro-units"
	HelpTextBiomassRedeemed = "Total biomass weight redeemed for BUD in micro-units"
	HelpTextSeedsMinted     = "Total number of seeds bought from the seed bank"
	HelpTextSeedsBred       = "Total number of seeds produced by breeding"
	HelpTextSlotsUnlocked   = "Total number of pod slots unlocked"
	HelpTextStageAdvances   = "Total number of pod stage advances by target stage"
)

// State gauge help text
const (
	HelpTextAccounts       = "Number of opted-in accounts"
	HelpTextTotalBiomass   = "Outstanding biomass weight awaiting processing"
	HelpTextCureVault      = "Current cure vault balance"
	HelpTextGlobalVersion  = "Current global config version"
	HelpTextSeedCounter    = "Seeds issued so far"
	HelpTextBiomassCounter = "Biomass tokens issued so far"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelStage   = "stage"
)

// Action outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// ============================================================================
// Event Payload Field Names
// ============================================================================

// Field names used when extracting values from event payloads
const (
	PayloadFieldWeight     = "weight"
	PayloadFieldTerpReward = "terp_reward"
	PayloadFieldStage      = "stage"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ActionLatencyBuckets covers store and ledger round trips
var ActionLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadNotMap = "Event payload is not a map"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
