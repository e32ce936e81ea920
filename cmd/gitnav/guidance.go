package main

import (
	"fmt"
	"io"
)

// Guidance blocks for the failure modes a user can fix themselves. Each
// carries an error code, what went wrong, and the way out.

func printNoReposGuidance(w io.Writer, searchPath string) {
	fmt.Fprintln(w, "Error: ENOREPOS - No repositories found")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "No git repositories found in: %s\n", searchPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fix: Verify the path exists and contains git repositories")
}

func printFzfMissingGuidance(w io.Writer) {
	fmt.Fprintln(w, "Error: ENOFZF - fzf not found")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "fzf is required for interactive mode.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  macOS:   brew install fzf")
	fmt.Fprintln(w, "  Linux:   apt install fzf  or  pacman -S fzf")
	fmt.Fprintln(w, "  Windows: scoop install fzf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Alternatively, use non-interactive mode:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  gitnav --list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documentation: https://github.com/msetsma/gitnav#requirements")
}

func printUnsupportedShellGuidance(w io.Writer, shell string) {
	fmt.Fprintln(w, "Error: ENOSUPPORT - Unsupported shell")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "The shell '%s' is not supported by gitnav.\n", shell)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells: zsh, bash, fish, nu, nushell")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fix: Use one of the supported shells:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  gitnav init zsh")
	fmt.Fprintln(w, "  gitnav init bash")
	fmt.Fprintln(w, "  gitnav init fish")
	fmt.Fprintln(w, "  gitnav init nu")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documentation: https://github.com/msetsma/gitnav#shell-integration")
}
