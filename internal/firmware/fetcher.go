package firmware

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultDirPermissions is used for the firmware directory and any
// directories contained in the archive
const DefaultDirPermissions = 0755

// Fetcher downloads firmware archives and unpacks them into a fixed
// local firmware directory
type Fetcher struct {
	client *http.Client
	dir    string
}

// NewFetcher creates a fetcher extracting into the given directory.
// The HTTP client carries no timeout: archive sizes vary and the download
// is already guarded by the flash gate.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{
		client: &http.Client{},
		dir:    dir,
	}
}

// Dir returns the firmware directory this fetcher extracts into
func (f *Fetcher) Dir() string {
	return f.dir
}

// Fetch downloads the archive at url and extracts all entries into the
// firmware directory, overwriting previous contents. An empty url yields
// ErrNoVersionSelected so the caller can prompt for a selection.
func (f *Fetcher) Fetch(url string) error {
	if url == "" {
		return ErrNoVersionSelected
	}

	logrus.Infof("Downloading firmware archive from %s", url)

	resp, err := f.client.Get(url)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}

	if err := f.extract(data); err != nil {
		return err
	}

	logrus.Infof("Firmware archive extracted to %s", f.dir)
	return nil
}

// extract unpacks the zip archive held in data into the firmware directory
func (f *Fetcher) extract(data []byte) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return &ArchiveError{Err: err}
	}

	if err := os.MkdirAll(f.dir, DefaultDirPermissions); err != nil {
		return &ArchiveError{Err: err}
	}

	for _, entry := range reader.File {
		if err := f.extractEntry(entry); err != nil {
			return &ArchiveError{Err: err}
		}
	}

	return nil
}

// extractEntry writes a single archive entry under the firmware directory
func (f *Fetcher) extractEntry(entry *zip.File) error {
	target := filepath.Join(f.dir, entry.Name)

	// Reject entries that would escape the firmware directory
	if !strings.HasPrefix(target, filepath.Clean(f.dir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal archive path: %s", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, DefaultDirPermissions)
	}

	if err := os.MkdirAll(filepath.Dir(target), DefaultDirPermissions); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return nil
}
