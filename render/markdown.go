package render

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const defaultWidth = 80

// Markdown renders the answer for the terminal, wrapped to the
// terminal's width.
func Markdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(Width()),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// Width is the wrap width for rendered markdown: the terminal width,
// capped at defaultWidth for readability on wide terminals.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || w > defaultWidth {
		return defaultWidth
	}
	return w
}
