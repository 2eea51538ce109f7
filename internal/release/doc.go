// Package release lists published firmware releases from the remote
// release feed and applies the draft/prerelease selection rules.
package release
