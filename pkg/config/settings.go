package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"

	"github.com/kcaldas/shellfolio/pkg/theme"
)

const (
	// DirName is the settings directory under the user's home.
	DirName = ".shellfolio"
	// FileName is the settings file inside DirName.
	FileName = "settings.json"
	// DotEnvFile is loaded from the working directory before the environment is read.
	DotEnvFile = ".env"
)

// Front-ends selectable with the tui setting.
const (
	TUIGocui     = "gocui"
	TUIBubbletea = "bubbletea"
)

// OutputModes lists the accepted gocui colour depths.
var OutputModes = []string{"true", "256", "normal", "simulator"}

// Settings are the user preferences persisted in settings.json.
type Settings struct {
	Theme       string `json:"theme"`
	ContentDir  string `json:"content_dir,omitempty"`
	TUI         string `json:"tui"`
	OutputMode  string `json:"output_mode"`
	PromptUser  string `json:"prompt_user"`
	PromptHost  string `json:"prompt_host"`
	HistorySize int    `json:"history_size"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:       theme.Dark,
		TUI:         TUIGocui,
		OutputMode:  "true",
		PromptUser:  "visitor",
		PromptHost:  "portfolio",
		HistorySize: 50,
	}
}

// Validate reports every invalid field.
func (s *Settings) Validate() error {
	var errs []error
	if !slices.Contains(theme.Names(), s.Theme) {
		errs = append(errs, fmt.Errorf("unknown theme %q", s.Theme))
	}
	if s.TUI != TUIGocui && s.TUI != TUIBubbletea {
		errs = append(errs, fmt.Errorf("unknown tui %q (want %s or %s)", s.TUI, TUIGocui, TUIBubbletea))
	}
	if !slices.Contains(OutputModes, s.OutputMode) {
		errs = append(errs, fmt.Errorf("unknown output mode %q", s.OutputMode))
	}
	if s.PromptUser == "" || s.PromptHost == "" {
		errs = append(errs, errors.New("prompt user and host must not be empty"))
	}
	if s.HistorySize <= 0 {
		errs = append(errs, fmt.Errorf("history size must be positive, got %d", s.HistorySize))
	}
	return errors.Join(errs...)
}

// ApplyEnv overrides fields with the SHELLFOLIO_* variables that are set.
func (s *Settings) ApplyEnv(m Manager) {
	s.Theme = m.GetStringWithDefault(EnvTheme, s.Theme)
	s.ContentDir = m.GetStringWithDefault(EnvContentDir, s.ContentDir)
	s.TUI = m.GetStringWithDefault(EnvTUI, s.TUI)
	s.OutputMode = m.GetStringWithDefault(EnvOutputMode, s.OutputMode)
	s.PromptUser = m.GetStringWithDefault(EnvPromptUser, s.PromptUser)
	s.PromptHost = m.GetStringWithDefault(EnvPromptHost, s.PromptHost)
	s.HistorySize = m.GetIntWithDefault(EnvHistorySize, s.HistorySize)
}

// ExpandedContentDir returns ContentDir with a leading ~ resolved.
func (s *Settings) ExpandedContentDir() (string, error) {
	if s.ContentDir == "" {
		return "", nil
	}
	return homedir.Expand(s.ContentDir)
}

// LoadDotEnv loads variables from the given file without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// DefaultDir returns SHELLFOLIO_CONFIG_DIR or ~/.shellfolio.
func DefaultDir(m Manager) (string, error) {
	if dir := m.GetStringWithDefault(EnvConfigDir, ""); dir != "" {
		return homedir.Expand(dir)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Store reads and writes settings.json.
type Store struct {
	path     string
	settings *Settings
	loaded   bool
	mu       sync.RWMutex
}

// NewStore creates a store for dir/settings.json, creating dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, FileName)}, nil
}

// Path is the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the file over the defaults. A missing file yields the defaults.
func (s *Store) Load() (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return settings, nil
}

// Save writes the settings as indented JSON.
func (s *Store) Save(settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Get returns a copy of the current settings, loading them on first use.
// A broken file falls back to the defaults.
func (s *Store) Get() Settings {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return *s.settings
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loadLocked()
	}
	return *s.settings
}

func (s *Store) loadLocked() {
	settings, err := s.Load()
	if err != nil {
		settings = DefaultSettings()
	}
	s.settings = settings
	s.loaded = true
}

// Update applies fn to the settings and optionally saves them.
func (s *Store) Update(fn func(*Settings), save bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loadLocked()
	}
	fn(s.settings)

	if save {
		return s.Save(s.settings)
	}
	return nil
}

// Reload rereads the file.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Load()
	if err != nil {
		return err
	}
	s.settings = settings
	s.loaded = true
	return nil
}

// Overrides are the settings given on the command line. Empty fields are
// left alone.
type Overrides struct {
	Theme      string
	ContentDir string
	TUI        string
}

// Apply copies the non-empty overrides onto s.
func (o Overrides) Apply(s *Settings) {
	if o.Theme != "" {
		s.Theme = o.Theme
	}
	if o.ContentDir != "" {
		s.ContentDir = o.ContentDir
	}
	if o.TUI != "" {
		s.TUI = o.TUI
	}
}

// Resolve layers defaults, the settings file, the environment and the command
// line overrides, then validates the result.
func Resolve(store *Store, m Manager, overrides Overrides) (*Settings, error) {
	settings, err := store.Load()
	if err != nil {
		return nil, err
	}
	settings.ApplyEnv(m)
	overrides.Apply(settings)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}
