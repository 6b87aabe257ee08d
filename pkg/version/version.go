package version

import (
	"fmt"
	"runtime"
	"strings"
)

// RepoURL is where releases are published.
const RepoURL = "https://github.com/kcaldas/shellfolio"

var (
	// Build information - these will be set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	BuiltBy   = "unknown"
	GoVersion = runtime.Version()
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns version information
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		BuiltBy:   BuiltBy,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetVersion returns just the version string
func GetVersion() string {
	return Version
}

// IsDev reports whether v is an unreleased build.
func IsDev(v string) bool {
	return v == "" || v == "dev" || v == "development"
}

// ReleasesURL lists every release.
func ReleasesURL() string {
	return RepoURL + "/releases"
}

// ChangelogURL points at the release notes of the running version, or at the
// release list for dev builds.
func ChangelogURL() string {
	return changelogURL(Version)
}

func changelogURL(v string) string {
	if IsDev(v) {
		return ReleasesURL()
	}
	return ReleasesURL() + "/tag/v" + strings.TrimPrefix(v, "v")
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("shellfolio version %s\ncommit: %s\nbuilt: %s\nby: %s\ngo: %s\nplatform: %s\nchangelog: %s",
		i.Version, i.Commit, i.Date, i.BuiltBy, i.GoVersion, i.Platform, changelogURL(i.Version))
}

// ShortString returns a short version string
func (i Info) ShortString() string {
	return fmt.Sprintf("shellfolio version %s", i.Version)
}
