package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
}

func TestDefault(t *testing.T) {
	bundle, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, bundle.Profile.Name)
	assert.NotEmpty(t, bundle.Profile.About.CurrentFocus)
	assert.NotEmpty(t, bundle.Profile.Education)
	assert.Len(t, bundle.Skills.Categories, 6)
	assert.Equal(t, 18, bundle.Skills.Total())
	assert.NotEmpty(t, bundle.Projects.Projects)
	assert.NotEmpty(t, bundle.Experience.Positions)
	assert.Equal(t, "IaC", bundle.Skills.Categories[3].ShortName)
}

func TestLoad_DirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProfileFile, `
name: Ada Lovelace
email: ada@example.com
links:
  github: https://github.com/ada
`)

	bundle, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", bundle.Profile.Name)
	assert.Empty(t, bundle.Profile.Education)

	defaults, err := Default()
	require.NoError(t, err)
	assert.Equal(t, defaults.Skills, bundle.Skills, "files missing from the directory come from the defaults")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "file.txt", "x")

		_, err := Load(filepath.Join(dir, "file.txt"))
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("unknown field", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, SkillsFile, "categories:\n  - name: Cloud\n    colour: accent\n")

		_, err := Load(dir)
		assert.ErrorContains(t, err, "skills.yaml")
	})

	t.Run("missing profile name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProfileFile, "title: Nobody\n")

		_, err := Load(dir)
		assert.ErrorContains(t, err, "name is required")
	})

	t.Run("unknown color", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, SkillsFile, "categories:\n  - name: Cloud\n    color: purple\n")

		_, err := Load(dir)
		assert.ErrorContains(t, err, `unknown color "purple"`)
	})
}

func TestLoad_ExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "portfolio"), 0o755))
	writeFile(t, filepath.Join(home, "portfolio"), ProfileFile, "name: Home User\n")

	bundle, err := Load("~/portfolio")
	require.NoError(t, err)
	assert.Equal(t, "Home User", bundle.Profile.Name)
}

func TestProfileHelpers(t *testing.T) {
	assert.Equal(t, "jordan-avery", Profile{Name: "  Jordan   Avery "}.Slug())
	assert.Equal(t, "@jordanavery_ops", Handle("https://twitter.com/jordanavery_ops"))
	assert.Equal(t, "@ada", Handle("https://github.com/ada/"))
	assert.Equal(t, "github.com/ada", StripScheme("https://github.com/ada"))
}
