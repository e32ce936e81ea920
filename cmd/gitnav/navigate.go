package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/msetsma/gitnav/internal/cache"
	"github.com/msetsma/gitnav/internal/config"
	"github.com/msetsma/gitnav/internal/fzf"
	"github.com/msetsma/gitnav/internal/log"
	"github.com/msetsma/gitnav/internal/nav"
	"github.com/msetsma/gitnav/internal/output"
	"github.com/msetsma/gitnav/internal/scanner"
)

// navOptions carries the root command flags into the navigation run.
type navOptions struct {
	force    bool
	path     string
	maxDepth int
	list     bool
	asJSON   bool
	query    string
	copyPath bool
}

// noReposError reports a scan that completed but found nothing. Execute
// turns it into the ENOREPOS guidance block.
type noReposError struct {
	searchPath string
}

func (e *noReposError) Error() string {
	return fmt.Sprintf("no git repositories found in %s", e.searchPath)
}

// runNavigation resolves the repository list and either prints it (--list)
// or hands it to fzf and prints the selection.
func runNavigation(ctx context.Context, cfg config.Config, opts navOptions) error {
	logger := log.FromContext(ctx)
	out := output.FromContext(ctx)

	searchPath := cfg.Search.BasePath
	if opts.path != "" {
		searchPath = opts.path
	}
	searchPath, err := config.ExpandPath(searchPath)
	if err != nil {
		return err
	}

	maxDepth := cfg.Search.MaxDepth
	if opts.maxDepth > 0 {
		maxDepth = opts.maxDepth
	}

	logger.Debugf("Search path: %s", searchPath)
	logger.Debugf("Max depth: %d", maxDepth)
	logger.Debugf("Cache enabled: %t", cfg.Cache.Enabled)
	logger.Debugf("Force refresh: %t", opts.force)

	pipeline := nav.Pipeline{Scan: scanner.Scan}
	if cfg.Cache.Enabled {
		pipeline.Store = openStore(logger, cfg.Cache.TTL())
	}

	repos, err := pipeline.Repos(ctx, searchPath, maxDepth, opts.force)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		return &noReposError{searchPath: searchPath}
	}
	logger.Verbosef("found %d repositories", len(repos))

	if opts.list {
		return printList(out, repos, opts)
	}

	if err := fzf.EnsureInstalled(); err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate gitnav binary: %w", err)
	}

	selected, err := fzf.Select(ctx, repos, fzf.Options{
		UI:         cfg.UI,
		PreviewExe: exe,
		Query:      opts.query,
	})
	if err != nil {
		return err
	}

	if opts.copyPath {
		if err := clipboard.WriteAll(selected); err != nil {
			logger.Warnf("could not copy path to clipboard: %v", err)
		}
	}

	// The shell wrapper cds into whatever lands on stdout.
	out.Println(selected)
	return nil
}

// printList writes the repository list in plain or JSON form. The query
// filter applies here; in interactive mode fzf does its own filtering.
func printList(out *output.Printer, repos []scanner.Repo, opts navOptions) error {
	if opts.query != "" {
		repos = nav.FilterByName(repos, opts.query)
	}

	if opts.asJSON {
		data, err := json.MarshalIndent(repos, "", "  ")
		if err != nil {
			return fmt.Errorf("encode repositories as JSON: %w", err)
		}
		out.Println(string(data))
		return nil
	}

	for _, r := range repos {
		out.Println(r.Path)
	}
	return nil
}

// openStore opens the default cache store. An unusable cache degrades to
// scanning every run, reported once as a warning.
func openStore(logger *log.Logger, ttl time.Duration) *cache.Store {
	dir, err := cache.DefaultDir()
	if err != nil {
		logger.Warnf("cache unavailable: %v", err)
		return nil
	}
	store, err := cache.New(dir, ttl)
	if err != nil {
		logger.Warnf("cache unavailable: %v", err)
		return nil
	}
	return store
}
