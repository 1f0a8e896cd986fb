package weather

import "errors"

// Sentinel errors for the retrieval pipeline. Callers classify failures with
// errors.Is; messages carry the station id and year context needed to
// self-correct without re-querying internals.
var (
	// ErrInvalidArgument marks a bad caller option, such as an unrecognized
	// temperature unit. Raised before any I/O.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStationNotFound marks a station id absent from the station history.
	ErrStationNotFound = errors.New("station not found")

	// ErrNoDataAvailable marks a request that cannot yield any data: the
	// station has no inventory at all, or none of the requested years
	// intersect it.
	ErrNoDataAvailable = errors.New("no data available")

	// ErrTransport marks a non-"not found" failure from the byte source.
	// A 404 from the archive is not an error; it means an empty year.
	ErrTransport = errors.New("transport failure")
)
