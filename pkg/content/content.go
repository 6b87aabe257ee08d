// Package content loads the portfolio records shown by the shell commands.
//
// Defaults are compiled into the binary. A content directory may override any
// of the files profile.yaml, skills.yaml, projects.yaml and experience.yaml;
// files it does not contain fall back to the defaults.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when the configured content directory does not exist.
var ErrNotFound = errors.New("content directory not found")

//go:embed defaults/*.yaml
var defaults embed.FS

// File names looked up in a content directory.
const (
	ProfileFile    = "profile.yaml"
	SkillsFile     = "skills.yaml"
	ProjectsFile   = "projects.yaml"
	ExperienceFile = "experience.yaml"
)

// Colors accepted for skill categories. They name theme palette roles.
var Colors = []string{"accent", "prompt-green", "prompt-cyan", "prompt-yellow"}

type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Twitter  string `yaml:"twitter"`
}

type About struct {
	Intro        string   `yaml:"intro"`
	Description  string   `yaml:"description"`
	Philosophy   string   `yaml:"philosophy"`
	CurrentFocus []string `yaml:"current_focus"`
}

type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

type Profile struct {
	Name      string      `yaml:"name"`
	Title     string      `yaml:"title"`
	Email     string      `yaml:"email"`
	Links     Links       `yaml:"links"`
	About     About       `yaml:"about"`
	Education []Education `yaml:"education"`
}

type SkillCategory struct {
	Icon      string   `yaml:"icon"`
	Name      string   `yaml:"name"`
	ShortName string   `yaml:"short_name"`
	Color     string   `yaml:"color"`
	Skills    []string `yaml:"skills"`
}

type Skills struct {
	Categories []SkillCategory `yaml:"categories"`
}

// Total returns the number of skills across all categories.
func (s Skills) Total() int {
	total := 0
	for _, c := range s.Categories {
		total += len(c.Skills)
	}
	return total
}

type Project struct {
	Icon         string   `yaml:"icon"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"` // Markdown
	Technologies []string `yaml:"technologies"`
	Link         string   `yaml:"link,omitempty"`
}

type Projects struct {
	Projects []Project `yaml:"projects"`
}

type Position struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

type Experience struct {
	Positions []Position `yaml:"positions"`
}

// Bundle holds every record the commands need.
type Bundle struct {
	Profile    Profile
	Skills     Skills
	Projects   Projects
	Experience Experience
}

// Default returns the compiled-in content.
func Default() (*Bundle, error) {
	return Load("")
}

// Load reads the content, taking each file from dir when present there and
// from the compiled-in defaults otherwise. A leading ~ in dir is expanded.
func Load(dir string) (*Bundle, error) {
	if dir != "" {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to expand content directory: %w", err)
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, expanded)
			}
			return nil, fmt.Errorf("failed to stat content directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("content path %s is not a directory", expanded)
		}
		dir = expanded
	}

	bundle := &Bundle{}
	files := []struct {
		name string
		into any
	}{
		{ProfileFile, &bundle.Profile},
		{SkillsFile, &bundle.Skills},
		{ProjectsFile, &bundle.Projects},
		{ExperienceFile, &bundle.Experience},
	}

	for _, f := range files {
		data, source, err := readFile(dir, f.name)
		if err != nil {
			return nil, err
		}
		if err := decode(data, f.into); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", source, err)
		}
	}

	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func readFile(dir, name string) ([]byte, string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, path, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	data, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return nil, name, fmt.Errorf("failed to read default %s: %w", name, err)
	}
	return data, "default " + name, nil
}

// decode rejects unknown keys so typos in content files are reported.
func decode(data []byte, into any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the invariants the commands rely on.
func (b *Bundle) Validate() error {
	var errs []error
	if strings.TrimSpace(b.Profile.Name) == "" {
		errs = append(errs, errors.New("profile: name is required"))
	}
	for i, c := range b.Skills.Categories {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("skills: category %d has no name", i))
		}
		if c.Color != "" && !validColor(c.Color) {
			errs = append(errs, fmt.Errorf("skills: category %q has unknown color %q (use one of %s)",
				c.Name, c.Color, strings.Join(Colors, ", ")))
		}
	}
	for i, p := range b.Projects.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects: project %d has no title", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

func validColor(color string) bool {
	for _, c := range Colors {
		if c == color {
			return true
		}
	}
	return false
}

// Slug is the profile name lowercased with whitespace runs replaced by dashes.
func (p Profile) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(p.Name)), "-")
}

// Handle returns the last path element of a profile URL, "@user" style.
func Handle(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		url = url[i+1:]
	}
	return "@" + url
}

// StripScheme removes a leading https:// from a URL for display.
func StripScheme(url string) string {
	return strings.TrimPrefix(url, "https://")
}
