package theme

import (
	"sync"
)

// Provider provides thread-safe access to the current theme and its styles.
// Front-ends read it from their render loop while key handlers toggle it.
type Provider struct {
	mu     sync.RWMutex
	theme  Theme
	styles Styles
}

// NewProvider creates a provider starting with the given theme.
func NewProvider(initial Theme) *Provider {
	return &Provider{
		theme:  initial,
		styles: initial.ComputeStyles(),
	}
}

// NewProviderByName creates a provider for a built-in theme name.
func NewProviderByName(name string) (*Provider, error) {
	t, err := ByName(name)
	if err != nil {
		return nil, err
	}
	return NewProvider(t), nil
}

// Theme returns the current theme
func (p *Provider) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Styles returns the current computed styles
func (p *Provider) Styles() Styles {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.styles
}

// SetTheme replaces the current theme
func (p *Provider) SetTheme(t Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = t
	p.styles = t.ComputeStyles()
}

// Toggle switches between the dark and light themes and returns the new one.
func (p *Provider) Toggle() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = p.theme.Opposite()
	p.styles = p.theme.ComputeStyles()
	return p.theme
}
