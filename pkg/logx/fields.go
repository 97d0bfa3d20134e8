package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldAttempt         = "attempt"
	FieldBackoffMs       = "backoff-ms"
	FieldCacheKey        = "cache-key"
	FieldDecision        = "decision"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldErrorCode       = "error-code"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldLoadID          = "load-id"
	FieldMCNumber        = "mc-number"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRound           = "round"
	FieldSessionID       = "session-id"
	FieldSource          = "source"
	FieldStack           = "stack"
	FieldTaskType        = "task-type"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
