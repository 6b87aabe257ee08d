// Package di wires the portfolio shell together for the command line and
// both terminal front-ends.
package di

import (
	"fmt"

	"github.com/kcaldas/shellfolio/pkg/config"
	"github.com/kcaldas/shellfolio/pkg/content"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/registry"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
	"github.com/kcaldas/shellfolio/pkg/theme"
)

// Shell is everything a front-end needs to run one session.
type Shell struct {
	Store    *config.Store
	Settings *config.Settings
	Session  *terminal.Session[render.Doc]
	Themes   *theme.Provider
	Painter  *render.Painter
	Prompt   portfolio.Prompt
}

// ProvideConfigManager provides the environment backed config manager
func ProvideConfigManager() config.Manager {
	return config.NewManager()
}

// ProvideStore opens the settings store in the configured directory
func ProvideStore(m config.Manager) (*config.Store, error) {
	dir, err := config.DefaultDir(m)
	if err != nil {
		return nil, err
	}
	return config.NewStore(dir)
}

// ProvideSettings resolves the effective settings
func ProvideSettings(store *config.Store, m config.Manager, overrides config.Overrides) (*config.Settings, error) {
	return config.Resolve(store, m, overrides)
}

// ProvideBundle loads the portfolio content. Without a content directory the
// embedded content is used.
func ProvideBundle(settings *config.Settings) (*content.Bundle, error) {
	dir, err := settings.ExpandedContentDir()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return content.Default()
	}
	bundle, err := content.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content from %s: %w", dir, err)
	}
	return bundle, nil
}

// ProvideRegistry registers the portfolio commands
func ProvideRegistry(bundle *content.Bundle) (*registry.Registry[render.Doc], error) {
	return portfolio.NewRegistry(bundle, portfolio.Options{})
}

// ProvideThemes provides the theme selected in the settings
func ProvideThemes(settings *config.Settings) (*theme.Provider, error) {
	return theme.NewProviderByName(settings.Theme)
}

// ProvidePrompt builds the prompt from the settings
func ProvidePrompt(settings *config.Settings) portfolio.Prompt {
	prompt := portfolio.DefaultPrompt()
	prompt.User = settings.PromptUser
	prompt.Host = settings.PromptHost
	return prompt
}

// ProvideSession starts a shell session over the registry
func ProvideSession(reg *registry.Registry[render.Doc], settings *config.Settings) *terminal.Session[render.Doc] {
	return terminal.NewSession[render.Doc](reg, portfolio.Formatter{}, terminal.Options{
		HistorySize: settings.HistorySize,
		Logger:      logging.NewComponentLogger("terminal"),
	})
}
