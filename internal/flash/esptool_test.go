package flash

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/elrs-tools/netpack-flasher/internal/firmware"
)

func TestBuildArgs(t *testing.T) {
	esptool := NewEsptool()
	images := firmware.ImageSet{
		Bootloader:     "/fw/bootloader.bin",
		Firmware:       "/fw/elrs-netpack.bin",
		PartitionTable: "/fw/partition-table.bin",
	}

	args := esptool.BuildArgs("/dev/ttyACM0", images)

	expected := []string{
		"-p", "/dev/ttyACM0",
		"-b", "460800",
		"--before", "default_reset",
		"--after", "hard_reset",
		"--chip", "esp32s3",
		"write_flash",
		"--flash_mode", "dio",
		"--flash_freq", "80m",
		"--flash_size", "2MB",
		"0x0", "/fw/bootloader.bin",
		"0x10000", "/fw/elrs-netpack.bin",
		"0x8000", "/fw/partition-table.bin",
	}

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i, arg := range expected {
		if args[i] != arg {
			t.Errorf("Expected arg %d to be '%s', got '%s'", i, arg, args[i])
		}
	}
}

// writeImages populates a directory with the three expected binaries
func writeImages(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{firmware.BootloaderImage, firmware.FirmwareImage, firmware.PartitionImage} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

// fakeTool writes an executable script standing in for esptool
func fakeTool(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "esptool-fake")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write fake tool: %v", err)
	}
	return path
}

func TestWriteFlashMissingImage(t *testing.T) {
	esptool := &Esptool{command: fakeTool(t, "exit 0\n")}

	// Empty directory: all three binaries are missing
	_, err := esptool.WriteFlash("/dev/ttyACM0", firmware.Images(t.TempDir()))

	var missing *firmware.MissingImageError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingImageError before spawning the subprocess, got %v", err)
	}
	if missing.Name != firmware.BootloaderImage {
		t.Errorf("Expected first missing image to be %s, got %s", firmware.BootloaderImage, missing.Name)
	}
}

func TestWriteFlashSuccess(t *testing.T) {
	esptool := &Esptool{command: fakeTool(t, "echo Hash of data verified.\nexit 0\n")}

	output, err := esptool.WriteFlash("/dev/ttyACM0", firmware.Images(writeImages(t)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(string(output), "Hash of data verified.") {
		t.Errorf("Expected captured tool output, got '%s'", output)
	}
}

func TestWriteFlashNonZeroExit(t *testing.T) {
	esptool := &Esptool{command: fakeTool(t, "echo flash timeout\nexit 2\n")}

	output, err := esptool.WriteFlash("/dev/ttyACM0", firmware.Images(writeImages(t)))

	var flashErr *FlashError
	if !errors.As(err, &flashErr) {
		t.Fatalf("Expected *FlashError, got %v", err)
	}

	if !strings.Contains(flashErr.Output, "flash timeout") {
		t.Errorf("Expected error to carry captured output, got '%s'", flashErr.Output)
	}
	if !strings.Contains(string(output), "flash timeout") {
		t.Errorf("Expected returned output to be captured, got '%s'", output)
	}
}
