package nav

import (
	"github.com/sahilm/fuzzy"

	"github.com/msetsma/gitnav/internal/scanner"
)

// repoSource adapts a repo slice for the fuzzy matcher.
type repoSource []scanner.Repo

func (r repoSource) String(i int) string { return r[i].Name }
func (r repoSource) Len() int            { return len(r) }

// FilterByName narrows repos to fuzzy matches of query against the
// repository names, best match first. An empty query returns repos
// unchanged.
func FilterByName(repos []scanner.Repo, query string) []scanner.Repo {
	if query == "" {
		return repos
	}

	matches := fuzzy.FindFrom(query, repoSource(repos))
	out := make([]scanner.Repo, 0, len(matches))
	for _, m := range matches {
		out = append(out, repos[m.Index])
	}
	return out
}
