// Package fzf drives the external fuzzy selector as a single blocking
// subprocess. gitnav owns discovery and preview; fzf owns the interactive
// loop.
package fzf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/msetsma/gitnav/internal/config"
	"github.com/msetsma/gitnav/internal/scanner"
)

// ErrNotInstalled reports that no fzf binary is reachable on PATH.
var ErrNotInstalled = errors.New("fzf not found in PATH")

// ErrCancelled reports that the user left the selector without picking an
// entry (ESC, Ctrl-C, or an empty list).
var ErrCancelled = errors.New("selection cancelled")

// EnsureInstalled verifies an fzf binary is available.
func EnsureInstalled() error {
	if _, err := exec.LookPath("fzf"); err != nil {
		return ErrNotInstalled
	}
	return nil
}

// Options configures one selector run.
type Options struct {
	UI         config.UIConfig
	PreviewExe string // binary fzf re-invokes as `<exe> --preview {2}`
	Query      string // initial query, may be empty
}

// buildArgs assembles the fzf argument list. Rows arrive as name<TAB>path;
// only the name column is shown, the path column feeds the preview command
// and the selection.
func buildArgs(opts Options) []string {
	args := []string{
		"--prompt", opts.UI.Prompt,
		"--header", opts.UI.Header,
		"--delimiter", "\t",
		"--with-nth", "1",
		"--preview-window", fmt.Sprintf("right:%d%%:wrap", opts.UI.PreviewWidthPercent),
		"--layout", opts.UI.Layout,
		"--height", fmt.Sprintf("%d%%", opts.UI.HeightPercent),
	}
	if opts.UI.ShowBorder {
		args = append(args, "--border")
	}
	args = append(args, "--no-sort")
	args = append(args, "--preview", opts.PreviewExe+" --preview {2}")
	if opts.Query != "" {
		args = append(args, "--query", opts.Query)
	}
	return args
}

// Select presents repos in fzf and returns the chosen repository path.
// fzf inherits stderr for its interface; stdout is captured for the
// selection. A non-zero fzf exit maps to ErrCancelled.
func Select(ctx context.Context, repos []scanner.Repo, opts Options) (string, error) {
	if len(repos) == 0 {
		return "", ErrCancelled
	}

	var input strings.Builder
	for _, r := range repos {
		input.WriteString(r.Name)
		input.WriteByte('\t')
		input.WriteString(r.Path)
		input.WriteByte('\n')
	}

	cmd := exec.CommandContext(ctx, "fzf", buildArgs(opts)...)
	cmd.Stdin = strings.NewReader(input.String())
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("run fzf: %w", err)
	}

	return parseSelection(string(out))
}

// parseSelection extracts the path column from the row fzf printed.
func parseSelection(out string) (string, error) {
	line := strings.TrimSpace(out)
	_, path, ok := strings.Cut(line, "\t")
	if !ok || path == "" {
		return "", fmt.Errorf("unexpected fzf output: %q", line)
	}
	return path, nil
}
