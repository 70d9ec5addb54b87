package providers

import (
	"errors"
	"fmt"
)

// ErrEmptyProfile marks a player document whose people list came back
// empty. Callers skip the player rather than failing the crawl.
var ErrEmptyProfile = errors.New("player profile not found")

// UpstreamError captures a non-success response from the stats API.
// It carries the logical resource being fetched and the failing URL so
// the top level can report which request invalidated the run.
type UpstreamError struct {
	Resource   string
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GET %s status_code=%d", e.URL, e.StatusCode)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
