package observability

// Standard attribute keys used when recording observations. Using these
// constants keeps log output consistent across the HTTP helpers and the
// client executors.
const (
	AttrHTTPMethod       = "http.method"
	AttrHTTPURL          = "http.url"
	AttrHTTPStatusCode   = "http.status_code"
	AttrHTTPBodySize     = "http.body_size"
	AttrHTTPDuration     = "http.duration"
	AttrRelayModel       = "relay.model"
	AttrRelayAttempt     = "relay.attempt"
	AttrRelayMaxAttempts = "relay.max_attempts"
	AttrRelayBackoff     = "relay.backoff"
)
