package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msetsma/gitnav/internal/output"
)

// unsupportedShellError carries the offending shell name so Execute can
// print the ENOSUPPORT guidance block.
type unsupportedShellError struct {
	shell string
}

func (e *unsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell: %s (supported: zsh, bash, fish, nu, nushell)", e.shell)
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Generate shell integration script",
		GroupID:   GroupSetup,
		ValidArgs: []string{"zsh", "bash", "fish", "nu", "nushell"},
		Args:      cobra.ExactArgs(1),
		Long: `Generate the 'gn' shell wrapper for the given shell.

gitnav itself can only print the selected path (a subprocess cannot
change its parent shell's directory). The wrapper captures that path
and performs the actual cd.`,
		Example: `  eval "$(gitnav init zsh)"        # add to ~/.zshrc
  eval "$(gitnav init bash)"       # add to ~/.bashrc
  gitnav init fish | source        # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, ok := initScript(args[0])
			if !ok {
				return &unsupportedShellError{shell: args[0]}
			}
			output.FromContext(cmd.Context()).Print(script)
			return nil
		},
	}

	return cmd
}

// initScript returns the integration script for a shell name. The second
// return value is false for unsupported shells.
func initScript(shell string) (string, bool) {
	switch shell {
	case "zsh":
		return zshInit, true
	case "bash":
		return bashInit, true
	case "fish":
		return fishInit, true
	case "nu", "nushell":
		return nushellInit, true
	default:
		return "", false
	}
}

const zshInit = `# gitnav shell integration for zsh
# Add this to your ~/.zshrc:
#   eval "$(gitnav init zsh)"

gn() {
  local result
  result=$(gitnav "$@")

  if [[ -n "$result" ]] && [[ -d "$result" ]]; then
    cd "$result" || return 1

    # Optional: show a quick listing after cd
    if command -v eza &> /dev/null; then
      eza -l
    elif command -v ls &> /dev/null; then
      ls -la
    fi
  fi
}
`

const bashInit = `# gitnav shell integration for bash
# Add this to your ~/.bashrc:
#   eval "$(gitnav init bash)"

gn() {
  local result
  result=$(gitnav "$@")

  if [[ -n "$result" ]] && [[ -d "$result" ]]; then
    cd "$result" || return 1

    # Optional: show a quick listing after cd
    if command -v eza &> /dev/null; then
      eza -l
    elif command -v ls &> /dev/null; then
      ls -la
    fi
  fi
}
`

const fishInit = `# gitnav shell integration for fish
# Add this to your ~/.config/fish/config.fish:
#   gitnav init fish | source

function gn
  set result (gitnav $argv)

  if test -n "$result" -a -d "$result"
    cd "$result"; or return 1

    # Optional: show a quick listing after cd
    if command -v eza &> /dev/null
      eza -l
    else if command -v ls &> /dev/null
      ls -la
    end
  end
end
`

const nushellInit = `# gitnav shell integration for nushell
# Add this to your nushell config (typically ~/.config/nushell/config.nu):
#   gitnav init nu | save --force ~/.cache/gitnav/init.nu
#   source ~/.cache/gitnav/init.nu

def --env gn [...args] {
  let result = (gitnav ...$args | str trim)

  if ($result != "") and ($result | path exists) {
    cd $result

    # Optional: show a quick listing after cd
    if (which eza | length) > 0 {
      eza -l
    } else if (which ls | length) > 0 {
      ls
    }
  }
}
`
