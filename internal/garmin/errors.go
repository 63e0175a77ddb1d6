package garmin

import "errors"

// Sentinel errors for Garmin Connect operations, checked with errors.Is.
var (
	// ErrNoData indicates the API has no data for the requested day or
	// activity (HTTP 404). Collectors treat this as an empty result.
	ErrNoData = errors.New("garmin: no data")

	// ErrUnauthorized indicates the session was rejected (HTTP 401/403).
	ErrUnauthorized = errors.New("garmin: unauthorized")

	// ErrAuthFailed indicates the SSO login itself failed.
	ErrAuthFailed = errors.New("garmin: authentication failed")

	// ErrCircuitOpen indicates the circuit breaker is rejecting calls
	// after repeated upstream failures.
	ErrCircuitOpen = errors.New("garmin: circuit breaker open")
)
