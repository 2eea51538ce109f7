package flash

import (
	"errors"
	"fmt"
)

// ErrFlashInProgress indicates another flash holds the gate; the request
// was rejected immediately and did no work.
var ErrFlashInProgress = errors.New("flashing already in progress")

// ErrPortNotSelected indicates no serial port option is configured.
var ErrPortNotSelected = errors.New("port not selected")

// FlashError indicates the flashing subprocess exited non-zero. Output
// holds the captured stdout/stderr for diagnostics.
type FlashError struct {
	Output string
	Err    error
}

func (e *FlashError) Error() string {
	return fmt.Sprintf("flashing subprocess failed: %v", e.Err)
}

func (e *FlashError) Unwrap() error {
	return e.Err
}
