package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, "shellfolio version "+Version, info.ShortString())
	assert.Contains(t, info.String(), "commit: "+Commit)
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://github.com/kcaldas/shellfolio/releases", ReleasesURL())

	tests := []struct {
		version string
		want    string
	}{
		{"dev", "https://github.com/kcaldas/shellfolio/releases"},
		{"", "https://github.com/kcaldas/shellfolio/releases"},
		{"1.2.0", "https://github.com/kcaldas/shellfolio/releases/tag/v1.2.0"},
		{"v1.2.0", "https://github.com/kcaldas/shellfolio/releases/tag/v1.2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, changelogURL(tt.version))
		})
	}
}

func TestChangelogURL_UsesBuildVersion(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "2.0.1"
	assert.Equal(t, "https://github.com/kcaldas/shellfolio/releases/tag/v2.0.1", ChangelogURL())
	assert.Contains(t, GetInfo().String(), "changelog: "+ChangelogURL())
}
