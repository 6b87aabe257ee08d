package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{name: "newer release", current: "1.1.0", latest: "1.2.0", want: true},
		{name: "same release", current: "1.2.0", latest: "1.2.0", want: false},
		{name: "older release", current: "1.3.0", latest: "1.2.0", want: false},
		{name: "v prefix", current: "v1.2.0", latest: "1.2.1", want: true},
		{name: "dev build", current: "dev", latest: "0.1.0", want: true},
		{name: "empty version", current: "", latest: "0.1.0", want: true},
		{name: "not semver", current: "nightly", latest: "0.1.0", want: true},
		{name: "prerelease is older", current: "1.2.0-rc.1", latest: "1.2.0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NeedsUpdate(tt.current, tt.latest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeedsUpdate_InvalidLatest(t *testing.T) {
	_, err := NeedsUpdate("1.0.0", "latest")
	assert.ErrorContains(t, err, "invalid latest version latest")
}
