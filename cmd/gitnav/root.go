package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msetsma/gitnav/internal/config"
	"github.com/msetsma/gitnav/internal/fzf"
	"github.com/msetsma/gitnav/internal/log"
	"github.com/msetsma/gitnav/internal/output"
)

var (
	// Persistent flags
	cfgPath   string
	quiet     bool
	verbose   bool
	noColor   bool
	debugMode bool

	// Root command flags
	force       bool
	searchPath  string
	maxDepth    int
	listOnly    bool
	jsonOutput  bool
	query       string
	copyToClip  bool
	previewPath string

	// Shared state injected into commands
	cfg config.Config
)

// Command group IDs for organizing help output
const (
	GroupCore  = "core"
	GroupSetup = "setup"
)

// Exit codes, following sysexits.h conventions. 130 is 128 + SIGINT.
const (
	exitSuccess      = 0
	exitGeneralError = 1
	exitUsageError   = 2
	exitDataError    = 65
	exitUnavailable  = 69
	exitIOError      = 74
	exitInterrupted  = 130
)

// rootCmd is the navigator itself; subcommands cover setup and maintenance.
var rootCmd = &cobra.Command{
	Use:   "gitnav",
	Short: "Fast git repository navigator with fuzzy finding",
	Long: `gitnav finds the git repositories under a base path and hands them to
fzf for fuzzy selection. The selected path is printed to stdout so a
shell wrapper can cd into it (see 'gitnav init').

Scan results are cached on disk and expire after a TTL, so repeated
invocations skip the filesystem walk.`,
	Example: `  gn                    # interactive repository selection
  gn -f                 # force cache refresh
  gn --path ~/work      # search in a specific directory
  gn --query api        # start the finder with a pre-filled query
  gn --list             # list all repos (no interactive mode)
  gn --list --json      # machine-readable output
  gitnav init zsh       # generate shell integration
  gitnav config         # show example config
  gitnav clear-cache    # clear cached scans`,
	Args:                       cobra.NoArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := log.New(os.Stderr, verbose, quiet, debugMode)
		ctx = log.WithLogger(ctx, logger)
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		// Completion and help never need configuration.
		if cmd.Name() == "help" || cmd.Name() == "__complete" {
			return nil
		}

		loaded, err := config.Load(cfgPath)
		if err != nil {
			logger.Warnf("%v (using defaults)", err)
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if previewPath != "" {
			return runPreview(cmd.Context(), cfg, previewPath, noColor)
		}
		return runNavigation(cmd.Context(), cfg, navOptions{
			force:    force,
			path:     searchPath,
			maxDepth: maxDepth,
			list:     listOnly,
			asJSON:   jsonOutput,
			query:    query,
			copyPath: copyToClip,
		})
	},
}

// Execute runs the root command and maps errors to exit codes.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		exitWith(err)
	}
}

// exitWith reports err on stderr and terminates with the matching exit
// code. Cancelling the finder is not an error worth reporting; the known
// failure modes print their guidance blocks instead of a bare message.
func exitWith(err error) {
	var noRepos *noReposError
	var badShell *unsupportedShellError

	switch {
	case errors.Is(err, fzf.ErrCancelled):
		os.Exit(exitInterrupted)
	case errors.Is(err, fzf.ErrNotInstalled):
		printFzfMissingGuidance(os.Stderr)
		os.Exit(exitUnavailable)
	case errors.As(err, &noRepos):
		printNoReposGuidance(os.Stderr, noRepos.searchPath)
		os.Exit(exitGeneralError)
	case errors.As(err, &badShell):
		printUnsupportedShellGuidance(os.Stderr, badShell.shell)
		os.Exit(exitGeneralError)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gitnav -h' for help")
		os.Exit(exitGeneralError)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "Path to custom config file")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	f := rootCmd.Flags()
	f.BoolVarP(&force, "force", "f", false, "Force refresh (bypass cache)")
	f.StringVarP(&searchPath, "path", "p", "", "Override base search path")
	f.IntVarP(&maxDepth, "max-depth", "d", 0, "Override max search depth")
	f.BoolVarP(&listOnly, "list", "l", false, "List repositories without launching fzf (enables piping)")
	f.BoolVar(&jsonOutput, "json", false, "Output as JSON (for scripting)")
	f.StringVar(&query, "query", "", "Filter repositories by fuzzy name match")
	f.BoolVar(&copyToClip, "copy", false, "Also copy the selected path to the clipboard")
	f.StringVar(&previewPath, "preview", "", "Generate preview for a repository path (internal use by fzf)")
	_ = f.MarkHidden("preview")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	rootCmd.AddCommand(newClearCacheCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newConfigCmd())
}
