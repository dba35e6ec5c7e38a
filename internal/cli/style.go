package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Values of --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// titleDecorator returns the function that styles header title lines written
// to out, or nil when titles stay plain.
func titleDecorator(mode string, out io.Writer) (func(string) string, error) {
	switch mode {
	case colorNever:
		return nil, nil
	case colorAuto:
		f, ok := out.(*os.File)
		if !ok || !isTerminal(f) {
			return nil, nil
		}
		return boldTitle(lipgloss.NewRenderer(out)), nil
	case colorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI)
		return boldTitle(r), nil
	default:
		return nil, fmt.Errorf("invalid --color value %q: use auto, always or never", mode)
	}
}

func boldTitle(r *lipgloss.Renderer) func(string) string {
	style := r.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion)
	return func(s string) string {
		return style.Render(s)
	}
}
