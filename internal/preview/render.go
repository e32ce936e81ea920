package preview

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/msetsma/gitnav/internal/config"
)

// Styles carries the lipgloss styles Render applies to each element.
// The zero value renders unstyled text.
type Styles struct {
	Label     lipgloss.Style
	Name      lipgloss.Style
	Branch    lipgloss.Style
	Activity  lipgloss.Style
	Staged    lipgloss.Style
	Unstaged  lipgloss.Style
	Untracked lipgloss.Style
	Hash      lipgloss.Style
}

// PlainStyles returns the zero style set. Rendering with it produces the
// bare text content, byte for byte.
func PlainStyles() Styles {
	return Styles{}
}

// Render lays out the preview block for info. Sections are toggled by cfg;
// the header is always present. The returned string carries no trailing
// newline.
func Render(info *Info, cfg config.PreviewConfig, st Styles) string {
	lines := []string{
		st.Label.Render("Repository:") + " " + st.Name.Render(info.Name),
		st.Label.Render("Location:") + " " + info.Path,
		"",
	}

	if cfg.ShowBranch {
		branch := info.Branch
		switch {
		case !info.HasCommits:
			branch = "(no commits yet)"
		case info.Detached:
			branch = "(detached HEAD)"
		}
		lines = append(lines, st.Label.Render("Branch:")+" "+st.Branch.Render(branch))
	}

	if cfg.ShowLastActivity {
		if info.HasCommits && !info.LastCommitAt.IsZero() {
			relative := RelativeTime(info.LastCommitAt, time.Now())
			absolute := info.LastCommitAt.Format(Layout(cfg.DateFormat))
			lines = append(lines,
				st.Label.Render("Last Activity:")+" "+st.Activity.Render(relative+" ("+absolute+")"))
		} else {
			lines = append(lines, st.Label.Render("Last Activity:")+" no commits yet")
		}
		lines = append(lines, "")
	}

	if cfg.ShowStatus {
		lines = append(lines, st.Label.Render("Status:"))
		if info.Staged == 0 && info.Unstaged == 0 && info.Untracked == 0 {
			lines = append(lines, "  Clean working tree")
		} else {
			if info.Staged > 0 {
				lines = append(lines, "  "+st.Staged.Render(fmt.Sprintf("+%d staged", info.Staged)))
			}
			if info.Unstaged > 0 {
				lines = append(lines, "  "+st.Unstaged.Render(fmt.Sprintf("~%d unstaged", info.Unstaged)))
			}
			if info.Untracked > 0 {
				lines = append(lines, "  "+st.Untracked.Render(fmt.Sprintf("?%d untracked", info.Untracked)))
			}
		}
		lines = append(lines, "")
	}

	if cfg.RecentCommits > 0 {
		lines = append(lines, st.Label.Render("Recent commits:"))
		if len(info.Commits) == 0 {
			lines = append(lines, "  (no commits yet)")
		} else {
			for _, c := range info.Commits {
				lines = append(lines, "  "+st.Hash.Render(c.Hash)+" "+c.Subject)
			}
		}
	}

	return strings.Join(lines, "\n")
}
