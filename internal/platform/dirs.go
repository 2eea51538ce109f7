package platform

import (
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// FirmwareDirName is the directory under the app storage root that release
// archives are unpacked into
const FirmwareDirName = "firmware"

// CreateDirectoryIfNotExists creates the directory if it doesn't exist
func CreateDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, DefaultDirPermissions)
	}
	return nil
}

// FirmwareDir resolves the firmware directory under the given storage root
func FirmwareDir(storageRoot string) string {
	return filepath.Join(storageRoot, FirmwareDirName)
}
