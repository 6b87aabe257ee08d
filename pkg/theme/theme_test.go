package theme

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	dark, err := ByName(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, DarkTheme(), dark)

	light, err := ByName("light")
	require.NoError(t, err)
	assert.Equal(t, "light", light.Glamour)

	_, err = ByName("solarized")
	assert.ErrorContains(t, err, "available: dark, light")
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Light, DarkTheme().Opposite().Name)
	assert.Equal(t, Dark, LightTheme().Opposite().Name)
}

func TestComputeStyles(t *testing.T) {
	styles := DarkTheme().ComputeStyles()

	assert.Equal(t, lipgloss.Color("#E63946"), styles.Accent.GetForeground())
	assert.Equal(t, lipgloss.Color("#4ADE80"), styles.PromptUser.GetForeground())
	assert.True(t, styles.PromptUser.GetBold())
	assert.True(t, styles.Link.GetUnderline())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps dark defaults", func(t *testing.T) {
		path := filepath.Join(dir, "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"custom","colors":{"accent":"#FF00FF"}}`), 0o644))

		custom, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "custom", custom.Name)
		assert.Equal(t, "#FF00FF", custom.Colors.Accent)
		assert.Equal(t, DarkTheme().Colors.PromptCyan, custom.Colors.PromptCyan)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestProvider(t *testing.T) {
	p, err := NewProviderByName("dark")
	require.NoError(t, err)

	assert.Equal(t, Light, p.Toggle().Name)
	assert.Equal(t, lipgloss.Color("#C1121F"), p.Styles().Accent.GetForeground())
	assert.Equal(t, Dark, p.Toggle().Name)

	p.SetTheme(LightTheme())
	assert.Equal(t, Light, p.Theme().Name)

	_, err = NewProviderByName("nope")
	assert.Error(t, err)
}

func TestProvider_ConcurrentToggle(t *testing.T) {
	p := NewProvider(DarkTheme())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Toggle()
		}()
		go func() {
			defer wg.Done()
			_ = p.Styles()
		}()
	}
	wg.Wait()

	assert.Equal(t, Dark, p.Theme().Name)
}
