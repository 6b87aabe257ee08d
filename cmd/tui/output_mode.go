package tui

import (
	"github.com/awesome-gocui/gocui"
)

// OutputMode converts the output_mode setting to a gocui.OutputMode.
// This controls terminal color depth:
//
//   - "true": 24-bit color (default)
//   - "256": 256-color mode
//   - "normal": 8-color mode
//   - "simulator": headless simulator, for tests
func OutputMode(name string) gocui.OutputMode {
	switch name {
	case "normal":
		return gocui.OutputNormal
	case "256":
		return gocui.Output256
	case "simulator":
		return gocui.OutputSimulator
	default:
		return gocui.OutputTrue
	}
}
