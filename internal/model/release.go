package model

// Release represents a published firmware release from the remote feed
type Release struct {
	TagName     string // version tag, e.g. "v1.2.0"
	Draft       bool   // unpublished draft, never offered
	Prerelease  bool   // beta build, offered only when the beta toggle is on
	DownloadURL string // URL of the first release asset (the firmware zip)
}

// FilterReleases returns the releases that may be offered for selection.
// Drafts are always dropped; prereleases are dropped unless includeBeta is
// true. Input order is preserved.
func FilterReleases(releases []Release, includeBeta bool) []Release {
	filtered := make([]Release, 0, len(releases))
	for _, release := range releases {
		if release.Draft {
			continue
		}
		if release.Prerelease && !includeBeta {
			continue
		}
		filtered = append(filtered, release)
	}
	return filtered
}

// ReleaseTags returns the tag names of the given releases, in order
func ReleaseTags(releases []Release) []string {
	tags := make([]string, 0, len(releases))
	for _, release := range releases {
		tags = append(tags, release.TagName)
	}
	return tags
}
