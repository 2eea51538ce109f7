package firmware

import (
	"os"
	"path/filepath"
)

// Binary names the release archive is expected to contain
const (
	BootloaderImage = "bootloader.bin"
	FirmwareImage   = "elrs-netpack.bin"
	PartitionImage  = "partition-table.bin"
)

// ImageSet holds the absolute paths of the three binaries a flash writes
type ImageSet struct {
	Bootloader     string
	Firmware       string
	PartitionTable string
}

// Images returns the expected image paths inside the given firmware directory
func Images(dir string) ImageSet {
	return ImageSet{
		Bootloader:     filepath.Join(dir, BootloaderImage),
		Firmware:       filepath.Join(dir, FirmwareImage),
		PartitionTable: filepath.Join(dir, PartitionImage),
	}
}

// Verify checks that all three binaries exist, returning a
// *MissingImageError for the first absent one
func (is ImageSet) Verify() error {
	images := []struct {
		name string
		path string
	}{
		{BootloaderImage, is.Bootloader},
		{FirmwareImage, is.Firmware},
		{PartitionImage, is.PartitionTable},
	}

	for _, image := range images {
		if _, err := os.Stat(image.path); err != nil {
			return &MissingImageError{Name: image.name, Path: image.path}
		}
	}
	return nil
}
