package firmware

import (
	"errors"
	"fmt"
)

// ErrNoVersionSelected indicates a flash was requested before a firmware
// version was selected, so there is no asset URL to download. Distinct from
// transport failures so the caller can prompt for a selection.
var ErrNoVersionSelected = errors.New("no firmware version selected")

// NetworkError indicates the firmware archive could not be retrieved.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to download firmware from %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ArchiveError indicates the downloaded firmware archive was corrupt or
// could not be extracted.
type ArchiveError struct {
	Err error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("failed to unpack firmware archive: %v", e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// MissingImageError indicates a required binary was absent from the
// firmware directory after extraction.
type MissingImageError struct {
	Name string
	Path string
}

func (e *MissingImageError) Error() string {
	return fmt.Sprintf("firmware image %s not found at %s", e.Name, e.Path)
}
