package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msetsma/gitnav/internal/cache"
	"github.com/msetsma/gitnav/internal/output"
)

func newClearCacheCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "clear-cache",
		Short:   "Clear all cache files",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Delete every cached scan result.

The next invocation scans the filesystem fresh. Use --dry-run to see
what would be removed first.`,
		Example: `  gitnav clear-cache            # delete cached scans
  gitnav clear-cache --dry-run  # list what would be deleted`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			dir, err := cache.DefaultDir()
			if err != nil {
				return fmt.Errorf("locate cache directory: %w", err)
			}
			store, err := cache.New(dir, cfg.Cache.TTL())
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}

			stats, err := store.Clear(dryRun)
			if err != nil {
				return err
			}

			if dryRun {
				out.Printf("Cache directory: %s\n", store.Dir())
				out.Printf("Cache files: %d\n", stats.Count())
				out.Printf("Total size: %d bytes\n\n", stats.TotalBytes)

				if stats.Count() == 0 {
					out.Println("No cache files to delete")
					return nil
				}
				out.Println("Files to be deleted:")
				for _, e := range stats.Entries {
					out.Printf("  %s (%d bytes)\n", e.Path, e.Size)
				}
				return nil
			}

			out.Println("Cache cleared successfully")
			if stats.Count() > 0 {
				out.Printf("Deleted %d cache files (%d bytes)\n", stats.Count(), stats.TotalBytes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be deleted without deleting")

	return cmd
}
