package release

import (
	"fmt"
)

// StatusError indicates the release feed answered with a non-OK status.
// It never reaches callers of List, which degrades to an empty list, but
// keeps the log line specific.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("release feed returned status %d", e.StatusCode)
}
