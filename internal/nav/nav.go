// Package nav resolves the repository list for a base path, consulting
// the cache store before falling back to a filesystem scan.
package nav

import (
	"context"

	"github.com/msetsma/gitnav/internal/cache"
	"github.com/msetsma/gitnav/internal/log"
	"github.com/msetsma/gitnav/internal/scanner"
)

// ScanFunc performs the discovery step. Injected so callers and tests can
// substitute the walk.
type ScanFunc func(ctx context.Context, basePath string, maxDepth int) ([]scanner.Repo, error)

// Pipeline combines a cache store with a scan function. A nil Store
// disables caching entirely.
type Pipeline struct {
	Store *cache.Store
	Scan  ScanFunc
}

// Repos returns the repositories under basePath. With force set the cache
// read is skipped, but the fresh result is still saved so the next run
// starts a new TTL window. A failed save is logged as a warning and never
// fails the lookup. An empty result is a valid outcome, cached like any
// other.
func (p Pipeline) Repos(ctx context.Context, basePath string, maxDepth int, force bool) ([]scanner.Repo, error) {
	logger := log.FromContext(ctx)

	if p.Store != nil && !force {
		if repos, ok := p.Store.Load(basePath); ok {
			logger.Verbosef("cache hit for %s (%d repositories)", basePath, len(repos))
			return repos, nil
		}
		logger.Verbosef("cache miss for %s, scanning", basePath)
	}

	repos, err := p.Scan(ctx, basePath, maxDepth)
	if err != nil {
		return nil, err
	}

	if p.Store != nil {
		if err := p.Store.Save(basePath, repos); err != nil {
			logger.Warnf("could not update cache: %v", err)
		}
	}

	return repos, nil
}
