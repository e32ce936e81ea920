package main

import (
	"context"
	"fmt"

	"github.com/msetsma/gitnav/internal/config"
	"github.com/msetsma/gitnav/internal/output"
	"github.com/msetsma/gitnav/internal/preview"
	"github.com/msetsma/gitnav/internal/ui"
)

// runPreview renders the preview block for a single repository. fzf invokes
// this once per highlighted row via the hidden --preview flag.
func runPreview(ctx context.Context, cfg config.Config, repoPath string, noColor bool) error {
	info, err := preview.Gather(repoPath, cfg.Preview.RecentCommits)
	if err != nil {
		return err
	}

	w := ui.PreviewWriter(output.FromContext(ctx).Writer(), noColor)
	_, err = fmt.Fprintln(w, preview.Render(info, cfg.Preview, ui.PreviewStyles()))
	return err
}
