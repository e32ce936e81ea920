package preview

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// ErrRepositoryUnavailable reports a path whose git metadata cannot be
// opened.
var ErrRepositoryUnavailable = errors.New("repository unavailable")

// Commit is one entry of the recent-commits section.
type Commit struct {
	Hash    string // abbreviated to 7 characters
	Subject string // first line of the commit message
}

// Info holds everything a preview renders, gathered in one pass and free
// of any styling.
type Info struct {
	Name       string
	Path       string
	Branch     string
	Detached   bool
	HasCommits bool

	LastCommitAt time.Time

	Staged    int
	Unstaged  int
	Untracked int

	Commits []Commit
}

// Gather opens the repository at path and collects preview data. Up to
// recentCommits entries are read from the history.
//
// A path that cannot be opened as a repository wraps
// ErrRepositoryUnavailable. Anything that fails past that point degrades
// its own section instead: an empty repository reports HasCommits=false,
// a bare repository reports zero status counts.
func Gather(path string, recentCommits int) (*Info, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRepositoryUnavailable, path, err)
	}

	info := &Info{
		Name: filepath.Base(path),
		Path: path,
	}

	head, err := repo.Head()
	if err != nil {
		// No HEAD to resolve: a freshly initialized repository.
		return info, nil
	}

	info.HasCommits = true
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	} else {
		info.Detached = true
	}

	if commit, err := repo.CommitObject(head.Hash()); err == nil {
		info.LastCommitAt = commit.Author.When
	}

	if iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()}); err == nil {
		for len(info.Commits) < recentCommits {
			c, err := iter.Next()
			if err != nil {
				break
			}
			subject, _, _ := strings.Cut(c.Message, "\n")
			info.Commits = append(info.Commits, Commit{
				Hash:    c.Hash.String()[:7],
				Subject: subject,
			})
		}
		iter.Close()
	}

	gatherStatus(repo, info)

	return info, nil
}

// gatherStatus fills the staged/unstaged/untracked counters. A file can
// count as both staged and unstaged when it was modified again after
// staging.
func gatherStatus(repo *gogit.Repository, info *Info) {
	wt, err := repo.Worktree()
	if err != nil {
		return
	}
	status, err := wt.Status()
	if err != nil {
		return
	}

	for _, st := range status {
		if st.Staging == gogit.Untracked {
			info.Untracked++
			continue
		}
		if st.Staging != gogit.Unmodified {
			info.Staged++
		}
		if st.Worktree != gogit.Unmodified {
			info.Unstaged++
		}
	}
}
