package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/msetsma/gitnav/internal/scanner"
)

// Store persists scan results on disk, one file per scanned base path.
type Store struct {
	dir string
	ttl time.Duration
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string, ttl time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &Store{dir: dir, ttl: ttl}, nil
}

// DefaultDir returns the platform cache directory for gitnav, for example
// ~/.cache/gitnav on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate user cache directory: %w", err)
	}
	return filepath.Join(base, "gitnav"), nil
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string { return s.dir }

// key derives the cache key for a base path. The path is cleaned first,
// so spellings that differ only by a trailing slash share one key.
func key(basePath string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(basePath)))
	return hex.EncodeToString(sum[:])[:16]
}

// file returns the cache file path for a base path.
func (s *Store) file(basePath string) string {
	return filepath.Join(s.dir, "repos_"+key(basePath)+".cache")
}

// Load returns the cached scan results for basePath. The second return
// value reports a usable hit: a missing, expired or malformed cache file
// is a miss, never an error. An empty fresh file is a valid hit recording
// a scan that found nothing.
func (s *Store) Load(basePath string) ([]scanner.Repo, bool) {
	path := s.file(basePath)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > s.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	return parse(data)
}

// parse decodes the tab-separated cache payload. One malformed line
// invalidates the whole file.
func parse(data []byte) ([]scanner.Repo, bool) {
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return []scanner.Repo{}, true
	}

	lines := strings.Split(content, "\n")
	repos := make([]scanner.Repo, 0, len(lines))
	for _, line := range lines {
		name, path, ok := strings.Cut(line, "\t")
		if !ok || name == "" || path == "" {
			return nil, false
		}
		repos = append(repos, scanner.Repo{Name: name, Path: path})
	}
	return repos, true
}

// Save writes the scan results for basePath, replacing any previous entry
// and restarting its TTL. The write goes through a temp file and a rename
// so readers never observe a half-written cache.
func (s *Store) Save(basePath string, repos []scanner.Repo) error {
	var b strings.Builder
	for _, r := range repos {
		b.WriteString(r.Name)
		b.WriteByte('\t')
		b.WriteString(r.Path)
		b.WriteByte('\n')
	}

	path := s.file(basePath)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Entry describes one cache file considered by Clear.
type Entry struct {
	Path string
	Size int64
}

// ClearStats reports what Clear removed, or would remove in dry-run mode.
type ClearStats struct {
	Entries    []Entry
	TotalBytes int64
}

// Count returns the number of cache files covered by the stats.
func (c ClearStats) Count() int { return len(c.Entries) }

// Clear removes every cache file in the store directory and reports what
// was removed. With dryRun set it only reports. Files that do not match
// the cache naming scheme are left alone.
func (s *Store) Clear(dryRun bool) (ClearStats, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "repos_*.cache"))
	if err != nil {
		return ClearStats{}, fmt.Errorf("list cache files: %w", err)
	}

	var stats ClearStats
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		stats.Entries = append(stats.Entries, Entry{Path: m, Size: info.Size()})
		stats.TotalBytes += info.Size()
	}

	if dryRun {
		return stats, nil
	}

	for _, e := range stats.Entries {
		if err := os.Remove(e.Path); err != nil && !os.IsNotExist(err) {
			return stats, fmt.Errorf("remove %s: %w", e.Path, err)
		}
	}

	return stats, nil
}
