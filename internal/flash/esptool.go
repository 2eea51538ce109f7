package flash

import (
	"os/exec"

	"github.com/elrs-tools/netpack-flasher/internal/firmware"
)

// Esptool protocol parameters. These are board-specific constants for the
// ESP32-S3 netpack; they are configuration, not derived values.
const (
	EsptoolCommand = "esptool"

	BaudRate    = "460800"
	ResetBefore = "default_reset"
	ResetAfter  = "hard_reset"
	ChipFamily  = "esp32s3"
	FlashMode   = "dio"
	FlashFreq   = "80m"
	FlashSize   = "2MB"

	// Write offsets of the three binaries
	BootloaderOffset = "0x0"
	FirmwareOffset   = "0x10000"
	PartitionOffset  = "0x8000"
)

// Esptool invokes the external esptool binary to write firmware images
type Esptool struct {
	command string
}

// NewEsptool creates a runner invoking the esptool binary from PATH
func NewEsptool() *Esptool {
	return &Esptool{command: EsptoolCommand}
}

// BuildArgs builds the esptool argument vector for writing the image set
// to the given serial port
func (e *Esptool) BuildArgs(port string, images firmware.ImageSet) []string {
	return []string{
		"-p", port,
		"-b", BaudRate,
		"--before", ResetBefore,
		"--after", ResetAfter,
		"--chip", ChipFamily,
		"write_flash",
		"--flash_mode", FlashMode,
		"--flash_freq", FlashFreq,
		"--flash_size", FlashSize,
		BootloaderOffset, images.Bootloader,
		FirmwareOffset, images.Firmware,
		PartitionOffset, images.PartitionTable,
	}
}

// WriteFlash verifies the image set and runs the flashing subprocess,
// returning its combined output. A missing image fails before the
// subprocess is spawned; a non-zero exit yields a *FlashError carrying
// the captured output.
func (e *Esptool) WriteFlash(port string, images firmware.ImageSet) ([]byte, error) {
	if err := images.Verify(); err != nil {
		return nil, err
	}

	cmd := exec.Command(e.command, e.BuildArgs(port, images)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, &FlashError{Output: string(output), Err: err}
	}

	return output, nil
}
