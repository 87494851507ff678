package ergast

import "fmt"

// UpstreamError means the Ergast API was reachable but answered with a
// non-200 status. It is never retried and never substituted with a fallback.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d", e.Status)
}

// UnavailableError means the request never produced an HTTP response (DNS,
// connection, timeout, TLS). Endpoints with an offline fallback intercept it.
type UnavailableError struct {
	Host string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("external data source unavailable: %s", e.Host)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
