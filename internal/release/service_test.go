package release

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elrs-tools/netpack-flasher/internal/model"
)

const feedBody = `[
	{"tag_name": "v1", "draft": true, "prerelease": false,
	 "assets": [{"browser_download_url": "https://example.com/v1.zip"}]},
	{"tag_name": "v2", "draft": false, "prerelease": true,
	 "assets": [{"browser_download_url": "https://example.com/v2.zip"}]},
	{"tag_name": "v3", "draft": false, "prerelease": false,
	 "assets": [{"browser_download_url": "https://example.com/v3.zip"}]}
]`

func TestListFiltersDraftsAndPrereleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedBody))
	}))
	defer server.Close()

	service := NewService(server.URL)

	releases := service.List(context.Background(), false)
	if tags := model.ReleaseTags(releases); len(tags) != 1 || tags[0] != "v3" {
		t.Errorf("Expected [v3] with beta disabled, got %v", tags)
	}

	releases = service.List(context.Background(), true)
	tags := model.ReleaseTags(releases)
	if len(tags) != 2 || tags[0] != "v2" || tags[1] != "v3" {
		t.Errorf("Expected [v2 v3] with beta enabled, got %v", tags)
	}
}

func TestListCarriesAssetURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedBody))
	}))
	defer server.Close()

	service := NewService(server.URL)

	releases := service.List(context.Background(), false)
	if len(releases) != 1 {
		t.Fatalf("Expected 1 release, got %d", len(releases))
	}

	if releases[0].DownloadURL != "https://example.com/v3.zip" {
		t.Errorf("Expected v3 asset URL, got '%s'", releases[0].DownloadURL)
	}
}

func TestListDegradesToEmptyOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(server.URL)

	if releases := service.List(context.Background(), true); len(releases) != 0 {
		t.Errorf("Expected empty list on server error, got %d releases", len(releases))
	}
}

func TestListDegradesToEmptyOnUnreachableFeed(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	service := NewService(server.URL)

	if releases := service.List(context.Background(), true); len(releases) != 0 {
		t.Errorf("Expected empty list on transport failure, got %d releases", len(releases))
	}
}

func TestListDegradesToEmptyOnMalformedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	service := NewService(server.URL)

	if releases := service.List(context.Background(), true); len(releases) != 0 {
		t.Errorf("Expected empty list on malformed feed, got %d releases", len(releases))
	}
}

func TestListDegradesToEmptyOnTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timeout test in short mode")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(feedBody))
	}))
	defer server.Close()

	service := NewService(server.URL)
	service.client.Timeout = 50 * time.Millisecond

	if releases := service.List(context.Background(), true); len(releases) != 0 {
		t.Errorf("Expected empty list on timeout, got %d releases", len(releases))
	}
}

func TestListSkipsMissingAssets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"tag_name": "v4", "draft": false, "prerelease": false, "assets": []}]`))
	}))
	defer server.Close()

	service := NewService(server.URL)

	releases := service.List(context.Background(), false)
	if len(releases) != 1 {
		t.Fatalf("Expected 1 release, got %d", len(releases))
	}

	// A release without assets is still listed; the empty URL surfaces as
	// the distinct no-version error at flash time
	if releases[0].DownloadURL != "" {
		t.Errorf("Expected empty download URL, got '%s'", releases[0].DownloadURL)
	}
}
