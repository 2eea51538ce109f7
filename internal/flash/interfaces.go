package flash

import (
	"github.com/elrs-tools/netpack-flasher/internal/firmware"
)

// Fetcher retrieves a firmware archive and unpacks it into the firmware
// directory.
type Fetcher interface {
	Fetch(url string) error
}

// Runner writes a firmware image set to a device over the given serial
// port, returning the captured tool output.
type Runner interface {
	WriteFlash(port string, images firmware.ImageSet) ([]byte, error)
}

// OptionSource exposes the persisted options the coordinator reads at
// flash time.
type OptionSource interface {
	Port() string
	Version() string
}
