package release

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elrs-tools/netpack-flasher/internal/model"
)

// DefaultFeedURL is the release feed the netpack firmware is published to
const DefaultFeedURL = "https://api.github.com/repos/i-am-grub/elrs-netpack/releases"

// MetadataTimeout bounds the release feed request; the firmware download
// itself is not bounded because archive sizes vary
const MetadataTimeout = 5 * time.Second

// Service lists published firmware releases from a remote feed
type Service struct {
	client  *http.Client
	feedURL string
}

// NewService creates a release lister for the given feed URL
func NewService(feedURL string) *Service {
	return &Service{
		client:  &http.Client{Timeout: MetadataTimeout},
		feedURL: feedURL,
	}
}

// releaseEntry mirrors the fields of one entry in the release feed
type releaseEntry struct {
	TagName    string `json:"tag_name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
	Assets     []struct {
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// List fetches the release feed and returns the selectable releases: drafts
// are always dropped, prereleases only offered when includeBeta is true.
// Any failure (transport, timeout, malformed feed) degrades to an empty
// list, since it only affects which versions are offered.
func (s *Service) List(ctx context.Context, includeBeta bool) []model.Release {
	entries, err := s.fetch(ctx)
	if err != nil {
		logrus.Warnf("Release feed unavailable: %v", err)
		return nil
	}

	releases := make([]model.Release, 0, len(entries))
	for _, entry := range entries {
		release := model.Release{
			TagName:    entry.TagName,
			Draft:      entry.Draft,
			Prerelease: entry.Prerelease,
		}
		if len(entry.Assets) > 0 {
			release.DownloadURL = entry.Assets[0].BrowserDownloadURL
		}
		releases = append(releases, release)
	}

	selectable := model.FilterReleases(releases, includeBeta)
	logrus.Debugf("Release feed returned %d entries, %d selectable", len(releases), len(selectable))
	return selectable
}

// fetch retrieves and decodes the raw release feed
func (s *Service) fetch(ctx context.Context) ([]releaseEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var entries []releaseEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}

	return entries, nil
}
