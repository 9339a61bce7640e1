package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameAccountsCreated  = "accounts_created_total"
	MetricNameTransfersTotal   = "transfers_total"
	MetricNameGamblesTotal     = "gambles_total"
	MetricNameGambleVolume     = "gamble_stake_dollars_total"
	MetricNameItemsCreated     = "items_created_total"
	MetricNameItemsTransferred = "items_transferred_total"
	MetricNameAirdropsStarted  = "airdrops_started_total"
	MetricNameAirdropsClaimed  = "airdrops_claimed_total"
	MetricNameAirdropsExpired  = "airdrops_expired_total"
	MetricNameDollarsMoved     = "dollars_moved_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextAccountsCreated  = "Total number of accounts created"
	HelpTextTransfersTotal   = "Total number of completed transfers"
	HelpTextGamblesTotal     = "Total number of gambles by outcome"
	HelpTextGambleVolume     = "Total dollars staked on gambles"
	HelpTextItemsCreated     = "Total number of item units minted"
	HelpTextItemsTransferred = "Total number of item units transferred"
	HelpTextAirdropsStarted  = "Total number of airdrops started"
	HelpTextAirdropsClaimed  = "Total number of airdrops claimed"
	HelpTextAirdropsExpired  = "Total number of airdrops that expired unclaimed"
	HelpTextDollarsMoved     = "Total dollars moved through the ledger by operation"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelItemType  = "item_type"
)

// Gamble outcome label values
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomePush = "push"
)

// HTTPLatencyBuckets covers the expected latency range for store-backed
// handlers.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
