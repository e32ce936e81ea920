// Package scanner discovers git repositories under a base path.
//
// The walk is bounded by a maximum depth, never follows symbolic links and
// honors .gitignore files (per directory, plus the user's global excludes)
// the way a git-aware traversal tool would. A directory containing a .git
// entry is reported as a repository and not descended into, so nested
// checkouts below it are never reported separately.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/msetsma/gitnav/internal/log"
)

// ErrPathNotFound reports a base path that does not exist or is not a
// readable directory.
var ErrPathNotFound = errors.New("base path not found")

// Repo identifies a discovered git repository.
type Repo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewRepo builds a Repo for the given directory. The display name is the
// final path component.
func NewRepo(path string) Repo {
	return Repo{Name: filepath.Base(path), Path: path}
}

// Scan walks basePath down to maxDepth levels (basePath itself is depth 0)
// and returns every directory that contains a .git entry, sorted by name.
//
// The base path must exist and be a readable directory; otherwise the
// returned error wraps ErrPathNotFound. maxDepth must be at least 1.
// Unreadable subdirectories are skipped (logged in verbose mode) and the
// scan continues with partial results.
func Scan(ctx context.Context, basePath string, maxDepth int) ([]Repo, error) {
	if maxDepth < 1 {
		return nil, fmt.Errorf("max depth must be at least 1, got %d", maxDepth)
	}

	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, basePath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, basePath)
	}

	w := &walker{
		maxDepth: maxDepth,
		logger:   log.FromContext(ctx),
	}

	if err := w.walk(ctx, basePath, nil, 0, globalPatterns()); err != nil {
		return nil, err
	}

	slices.SortFunc(w.repos, func(a, b Repo) int {
		return strings.Compare(a.Name, b.Name)
	})

	return w.repos, nil
}

type walker struct {
	maxDepth int
	logger   *log.Logger
	repos    []Repo
}

// walk visits dir, located at the given depth below the base path.
// rel holds the path segments from the base to dir and anchors the
// gitignore pattern domains.
func (w *walker) walk(ctx context.Context, dir string, rel []string, depth int, patterns []gitignore.Pattern) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if isRepo(dir) {
		w.repos = append(w.repos, NewRepo(dir))
		return nil
	}

	if depth == w.maxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			return fmt.Errorf("%w: %s: %v", ErrPathNotFound, dir, err)
		}
		w.logger.Verbosef("skipping %s: %v", dir, err)
		return nil
	}

	if local := readIgnoreFile(dir, rel); len(local) > 0 {
		// Full slice expression so sibling branches never share appends.
		patterns = append(patterns[:len(patterns):len(patterns)], local...)
	}
	matcher := gitignore.NewMatcher(patterns)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		childRel := append(slices.Clone(rel), entry.Name())
		if matcher.Match(childRel, true) {
			w.logger.Verbosef("ignoring %s", filepath.Join(dir, entry.Name()))
			continue
		}

		if err := w.walk(ctx, filepath.Join(dir, entry.Name()), childRel, depth+1, patterns); err != nil {
			return err
		}
	}

	return nil
}

// isRepo reports whether dir contains git metadata. A .git directory is a
// normal checkout; a .git regular file covers worktrees and submodules.
func isRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// readIgnoreFile parses dir/.gitignore into patterns anchored at domain.
// A missing or unreadable file yields no patterns.
func readIgnoreFile(dir string, domain []string) []gitignore.Pattern {
	f, err := os.Open(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var ps []gitignore.Pattern
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	return ps
}

// globalPatterns loads the user's global excludes (core.excludesfile).
// Failures are ignored: global excludes are a convenience, not a
// requirement.
func globalPatterns() []gitignore.Pattern {
	ps, err := gitignore.LoadGlobalPatterns(osfs.New("/"))
	if err != nil {
		return nil
	}
	return ps
}
