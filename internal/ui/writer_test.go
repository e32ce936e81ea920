package ui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearColorEnv resets every variable that influences profile detection so
// subtests control them explicitly.
func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NO_COLOR", "FZF_PREVIEW_COLUMNS", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR", "COLORTERM"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("TERM", "xterm-256color")
}

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func readBack(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read back %s: %v", f.Name(), err)
	}
	return string(data)
}

func TestPreviewWriter_NoColorStripsStyling(t *testing.T) {
	clearColorEnv(t)
	f := tempFile(t)

	styled := PreviewStyles().Label.Render("Status:")
	if !strings.Contains(styled, "\x1b[") {
		t.Fatal("styled fixture carries no ANSI codes")
	}

	w := PreviewWriter(f, true)
	if _, err := io.WriteString(w, styled); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := readBack(t, f)
	if strings.Contains(got, "\x1b[") {
		t.Errorf("output still styled with colors disabled: %q", got)
	}
	if !strings.Contains(got, "Status:") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestPreviewWriter_PlainPipeStripsStyling(t *testing.T) {
	clearColorEnv(t)
	f := tempFile(t)

	w := PreviewWriter(f, false)
	if _, err := io.WriteString(w, PreviewStyles().Hash.Render("abc1234")); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := readBack(t, f)
	if strings.Contains(got, "\x1b[") {
		t.Errorf("non-terminal output still styled: %q", got)
	}
	if !strings.Contains(got, "abc1234") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestPreviewWriter_FzfPaneKeepsColor(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("FZF_PREVIEW_COLUMNS", "80")
	f := tempFile(t)

	w := PreviewWriter(f, false)
	if _, err := io.WriteString(w, PreviewStyles().Label.Render("Branch:")); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := readBack(t, f)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("fzf preview output lost its styling: %q", got)
	}
	if !strings.Contains(got, "Branch:") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestPreviewWriter_NoColorEnvWinsOverPane(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("FZF_PREVIEW_COLUMNS", "80")
	t.Setenv("NO_COLOR", "1")
	f := tempFile(t)

	w := PreviewWriter(f, false)
	if _, err := io.WriteString(w, PreviewStyles().Label.Render("Branch:")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := readBack(t, f); strings.Contains(got, "\x1b[") {
		t.Errorf("NO_COLOR output still styled: %q", got)
	}
}

func TestInsideFzfPreview(t *testing.T) {
	clearColorEnv(t)
	if InsideFzfPreview() {
		t.Error("InsideFzfPreview() = true without FZF_PREVIEW_COLUMNS")
	}
	t.Setenv("FZF_PREVIEW_COLUMNS", "120")
	if !InsideFzfPreview() {
		t.Error("InsideFzfPreview() = false with FZF_PREVIEW_COLUMNS set")
	}
}
