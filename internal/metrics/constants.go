package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameSessionsStarted = "explorer_sessions_started_total"
	MetricNameAnswers         = "explorer_answers_total"
	MetricNamePhasesCompleted = "explorer_phases_completed_total"
	MetricNameOffersAnswered  = "explorer_offers_answered_total"
	MetricNameExchanges       = "explorer_exchanges_total"
	MetricNameActiveSessions  = "explorer_active_sessions"
	MetricNameSSEClients      = "explorer_sse_clients"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Game metric help text
const (
	HelpTextSessionsStarted = "Total number of sessions started or restarted"
	HelpTextAnswers         = "Hunt clicks and quiz answers by phase and result"
	HelpTextPhasesCompleted = "Total number of completed phases"
	HelpTextOffersAnswered  = "Picnic offers answered by choice"
	HelpTextExchanges       = "Food given to each friend"
	HelpTextActiveSessions  = "Sessions currently held in memory"
	HelpTextSSEClients      = "Connected event stream clients"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelPhase  = "phase"
	LabelResult = "result"
	LabelChoice = "choice"
	LabelNPC    = "npc"
)

// Result label values
const (
	ResultCorrect = "correct"
	ResultWrong   = "wrong"
)

// HTTPLatencyBuckets covers 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
