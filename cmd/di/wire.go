//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/kcaldas/shellfolio/pkg/config"
	"github.com/kcaldas/shellfolio/pkg/render"
)

// ConfigWireSet resolves the settings
var ConfigWireSet = wire.NewSet(
	ProvideConfigManager,
	ProvideStore,
	ProvideSettings,
)

// ShellWireSet builds a session and its rendering collaborators
var ShellWireSet = wire.NewSet(
	ProvideBundle,
	ProvideRegistry,
	ProvideThemes,
	ProvidePrompt,
	ProvideSession,
	render.NewPainter,
	wire.Struct(new(Shell), "*"),
)

// InjectSettings is a wire injector for the effective settings alone
func InjectSettings(overrides config.Overrides) (*config.Settings, error) {
	wire.Build(ConfigWireSet)
	return nil, nil
}

// InjectShell is a wire injector for a complete shell
func InjectShell(overrides config.Overrides) (*Shell, error) {
	wire.Build(ConfigWireSet, ShellWireSet)
	return nil, nil
}
