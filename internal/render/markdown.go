package render

import (
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const detectTimeout = 50 * time.Millisecond

// Markdown renders content for the terminal. theme is light, dark or system;
// system picks from the terminal background. Other values are passed to
// glamour as a standard style name. width <= 0 disables word wrapping.
func Markdown(content, theme string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(ResolveStyle(theme))}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// ResolveStyle maps a settings theme to a glamour standard style.
func ResolveStyle(theme string) string {
	switch theme {
	case "", "dark":
		return "dark"
	case "system":
		return detectStyle(detectTimeout)
	default:
		return theme
	}
}

// detectStyle asks the terminal for its background through termenv. A
// concrete GLAMOUR_STYLE wins, and dark is assumed when the terminal does not
// answer within timeout.
func detectStyle(timeout time.Duration) string {
	style := os.Getenv("GLAMOUR_STYLE")
	if style != "" && style != "auto" {
		return style
	}

	ch := make(chan string, 1)
	go func() {
		out := termenv.NewOutput(os.Stdout)
		if out.HasDarkBackground() {
			ch <- "dark"
			return
		}
		ch <- "light"
	}()

	select {
	case s := <-ch:
		return s
	case <-time.After(timeout):
		return "dark"
	}
}
