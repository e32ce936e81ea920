package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/msetsma/gitnav/internal/output"
)

// PreviewWriter wraps out in a writer that downgrades styled text to what
// the destination can display. noColor forces plain output. An fzf preview
// pane is a pipe, so automatic detection would strip the colors fzf is
// perfectly able to render; in that case the profile is forced to basic
// ANSI instead.
func PreviewWriter(out io.Writer, noColor bool) io.Writer {
	w := colorprofile.NewWriter(out, os.Environ())
	switch {
	case noColor || !output.ColorsAllowed():
		w.Profile = colorprofile.NoTTY
	case InsideFzfPreview():
		w.Profile = colorprofile.ANSI
	}
	return w
}

// InsideFzfPreview reports whether the process was started as an fzf
// preview command. fzf exports FZF_PREVIEW_COLUMNS to those commands.
func InsideFzfPreview() bool {
	_, ok := os.LookupEnv("FZF_PREVIEW_COLUMNS")
	return ok
}
