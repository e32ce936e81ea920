package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintNoReposGuidance(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printNoReposGuidance(&buf, "/home/user/code")

	want := strings.Join([]string{
		"Error: ENOREPOS - No repositories found",
		"",
		"No git repositories found in: /home/user/code",
		"",
		"Fix: Verify the path exists and contains git repositories",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("guidance = %q, want %q", got, want)
	}
}

func TestPrintFzfMissingGuidance(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printFzfMissingGuidance(&buf)

	got := buf.String()
	for _, want := range []string{
		"Error: ENOFZF - fzf not found",
		"macOS:   brew install fzf",
		"Linux:   apt install fzf  or  pacman -S fzf",
		"Windows: scoop install fzf",
		"gitnav --list",
		"Documentation: https://github.com/msetsma/gitnav#requirements",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("guidance missing %q:\n%s", want, got)
		}
	}
}

func TestPrintUnsupportedShellGuidance(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUnsupportedShellGuidance(&buf, "csh")

	got := buf.String()
	for _, want := range []string{
		"Error: ENOSUPPORT - Unsupported shell",
		"The shell 'csh' is not supported by gitnav.",
		"Supported shells: zsh, bash, fish, nu, nushell",
		"gitnav init zsh",
		"gitnav init nu",
		"Documentation: https://github.com/msetsma/gitnav#shell-integration",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("guidance missing %q:\n%s", want, got)
		}
	}
}
