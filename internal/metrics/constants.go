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
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameCasesOpened      = "cases_opened_total"
	MetricNameItemsSold        = "items_sold_total"
	MetricNameUpgradesResolved = "upgrades_resolved_total"
	MetricNameUpgradeChance    = "upgrade_chance_percent"
	MetricNameContractsSigned  = "contracts_signed_total"
	MetricNamePromoRedemptions = "promo_redemptions_total"
	MetricNameDailyBonusClaims = "daily_bonus_claims_total"
	MetricNameMoneyEarned      = "money_earned_total"
	MetricNameMoneySpent       = "money_spent_total"
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
	HelpTextEventsPublished = "Total number of session events published"
)

// Business metric help text
const (
	HelpTextCasesOpened      = "Total number of cases opened, by case and dropped rarity"
	HelpTextItemsSold        = "Total number of items sold"
	HelpTextUpgradesResolved = "Total number of upgrade attempts, by result"
	HelpTextUpgradeChance    = "Distribution of settled upgrade chances"
	HelpTextContractsSigned  = "Total number of trade-up contracts, by input rarity"
	HelpTextPromoRedemptions = "Total number of promo codes redeemed"
	HelpTextDailyBonusClaims = "Total number of daily bonuses claimed"
	HelpTextMoneyEarned      = "Total currency credited to sessions"
	HelpTextMoneySpent       = "Total currency debited from sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCase   = "case"
	LabelRarity = "rarity"
	LabelResult = "result"
	LabelCode   = "code"
	LabelSource = "source"
)

// Money flow sources
const (
	SourceCase       = "case"
	SourceSale       = "sale"
	SourceUpgradeBet = "upgrade_bet"
	SourcePromo      = "promo"
	SourceDailyBonus = "daily_bonus"
)

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ChanceBuckets spans the allowed upgrade chance range in percent
var ChanceBuckets = []float64{5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
