package main

import (
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/msetsma/gitnav/internal/output"
)

func newVersionCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Show version information",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			out.Printf("gitnav %s\n", version)
			if detailed {
				printVersionDetails(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detailed, "verbose", "v", false, "Show detailed version information")

	return cmd
}

func printVersionDetails(out *output.Printer) {
	out.Println("\nBuild Information:")
	out.Printf("  Version: %s\n", version)
	out.Printf("  Commit: %s\n", commit)
	out.Printf("  Built: %s\n", date)
	out.Println("  Repository: https://github.com/msetsma/gitnav")

	out.Println("\nSystem Information:")
	out.Printf("  OS: %s\n", runtime.GOOS)
	out.Printf("  Architecture: %s\n", runtime.GOARCH)
	out.Printf("  Go Version: %s\n", runtime.Version())

	out.Println("\nFeatures:")
	out.Printf("  Colors: %s\n", enabledWord(output.ColorsEnabled(os.Stdout)))
	out.Println("  Interactive Mode: enabled")

	if info, ok := debug.ReadBuildInfo(); ok {
		out.Println("\nDependencies:")
		for _, dep := range info.Deps {
			if notableDeps[dep.Path] {
				out.Printf("  %s %s\n", dep.Path, dep.Version)
			}
		}
	}
}

// notableDeps are the direct dependencies worth surfacing in version
// output; the full graph would drown the useful lines.
var notableDeps = map[string]bool{
	"github.com/go-git/go-git/v5": true,
	"github.com/spf13/cobra":      true,
	"charm.land/lipgloss/v2":      true,
	"github.com/sahilm/fuzzy":     true,
	"github.com/BurntSushi/toml":  true,
}

func enabledWord(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
