package influx

import "errors"

// Sentinel errors for InfluxDB operations, checked with errors.Is.
var (
	// ErrConnectionFailed indicates the initial connection attempt failed.
	ErrConnectionFailed = errors.New("influx: connection failed")

	// ErrOrgNotFound indicates the configured organization does not exist.
	ErrOrgNotFound = errors.New("influx: organization not found")

	// ErrWriteFailed indicates a point batch could not be written.
	ErrWriteFailed = errors.New("influx: write failed")
)
