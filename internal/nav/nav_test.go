package nav

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/msetsma/gitnav/internal/cache"
	"github.com/msetsma/gitnav/internal/log"
	"github.com/msetsma/gitnav/internal/scanner"
)

// countingScan returns a ScanFunc double that counts walks and serves a
// fixed result.
func countingScan(calls *int, repos []scanner.Repo) ScanFunc {
	return func(ctx context.Context, basePath string, maxDepth int) ([]scanner.Repo, error) {
		*calls++
		return repos, nil
	}
}

func testStore(t *testing.T, ttl time.Duration) *cache.Store {
	t.Helper()

	store, err := cache.New(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("cache.New() error = %v", err)
	}
	return store
}

func TestPipeline_SecondLookupServedFromCache(t *testing.T) {
	t.Parallel()

	repos := []scanner.Repo{
		{Name: "alpha", Path: "/home/user/code/alpha"},
		{Name: "beta", Path: "/home/user/code/beta"},
	}
	calls := 0
	p := Pipeline{Store: testStore(t, time.Minute), Scan: countingScan(&calls, repos)}

	first, err := p.Repos(context.Background(), "/home/user/code", 5, false)
	if err != nil {
		t.Fatalf("Repos() error = %v", err)
	}
	second, err := p.Repos(context.Background(), "/home/user/code", 5, false)
	if err != nil {
		t.Fatalf("Repos() error = %v", err)
	}

	if calls != 1 {
		t.Errorf("scan walks = %d, want 1", calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %v vs %v", first, second)
	}
}

func TestPipeline_ForceBypassesCacheButSaves(t *testing.T) {
	t.Parallel()

	calls := 0
	p := Pipeline{
		Store: testStore(t, time.Minute),
		Scan:  countingScan(&calls, []scanner.Repo{{Name: "alpha", Path: "/b/alpha"}}),
	}

	if _, err := p.Repos(context.Background(), "/b", 5, false); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Repos(context.Background(), "/b", 5, true); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("scan walks = %d, want 2 (force rescans)", calls)
	}

	// The forced result was saved, so the next lookup hits the cache.
	if _, err := p.Repos(context.Background(), "/b", 5, false); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("scan walks = %d, want 2 (forced save reused)", calls)
	}
}

func TestPipeline_ExpiredEntryRescans(t *testing.T) {
	t.Parallel()

	// TTL zero: every entry is already expired on the next read.
	calls := 0
	p := Pipeline{
		Store: testStore(t, 0),
		Scan:  countingScan(&calls, []scanner.Repo{{Name: "alpha", Path: "/b/alpha"}}),
	}

	if _, err := p.Repos(context.Background(), "/b", 5, false); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Repos(context.Background(), "/b", 5, false); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("scan walks = %d, want 2 for expired entries", calls)
	}
}

func TestPipeline_NilStoreAlwaysScans(t *testing.T) {
	t.Parallel()

	calls := 0
	p := Pipeline{Store: nil, Scan: countingScan(&calls, nil)}

	for range 3 {
		if _, err := p.Repos(context.Background(), "/b", 5, false); err != nil {
			t.Fatal(err)
		}
	}

	if calls != 3 {
		t.Errorf("scan walks = %d, want 3 with caching disabled", calls)
	}
}

func TestPipeline_EmptyResultIsCached(t *testing.T) {
	t.Parallel()

	calls := 0
	p := Pipeline{Store: testStore(t, time.Minute), Scan: countingScan(&calls, []scanner.Repo{})}

	repos, err := p.Repos(context.Background(), "/b", 5, false)
	if err != nil {
		t.Fatalf("Repos() error = %v", err)
	}
	if len(repos) != 0 {
		t.Errorf("Repos() = %v, want empty", repos)
	}

	if _, err := p.Repos(context.Background(), "/b", 5, false); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("scan walks = %d, want 1 (empty result cached)", calls)
	}
}

func TestPipeline_ScanErrorPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("walk failed")
	p := Pipeline{
		Store: testStore(t, time.Minute),
		Scan: func(ctx context.Context, basePath string, maxDepth int) ([]scanner.Repo, error) {
			return nil, wantErr
		},
	}

	if _, err := p.Repos(context.Background(), "/b", 5, false); !errors.Is(err, wantErr) {
		t.Errorf("Repos() error = %v, want %v", err, wantErr)
	}
}

func TestPipeline_SaveFailureIsWarnedNotFatal(t *testing.T) {
	t.Parallel()

	store := testStore(t, time.Minute)
	// Remove the store directory out from under it so the save fails.
	if err := os.RemoveAll(store.Dir()); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, false, false, false))

	calls := 0
	p := Pipeline{Store: store, Scan: countingScan(&calls, []scanner.Repo{{Name: "alpha", Path: "/b/alpha"}})}

	repos, err := p.Repos(ctx, "/b", 5, false)
	if err != nil {
		t.Fatalf("Repos() error = %v, want success despite failed save", err)
	}
	if len(repos) != 1 {
		t.Errorf("Repos() = %v, want the scanned result", repos)
	}
	if !strings.Contains(buf.String(), "Warning: could not update cache") {
		t.Errorf("missing save warning, log output: %q", buf.String())
	}
}
