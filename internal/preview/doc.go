// Package preview builds the repository summary shown next to the
// selector list.
//
// Generation happens in two phases. [Gather] opens a repository with
// go-git and collects plain data into an [Info]: current branch, last
// commit time, working-tree counts and up to N recent commits. [Render]
// turns an Info into the preview block, applying a caller-supplied
// [Styles] set per element. Tests render with [PlainStyles] and compare
// bare text; the real UI hands in colored styles and lets the output
// writer downgrade them to the terminal's capabilities.
//
// # Degradation
//
// Only an unopenable repository fails, wrapping
// [ErrRepositoryUnavailable]. Every query past that point degrades its
// own section: an empty repository renders "(no commits yet)", a bare
// repository renders zero status counts.
//
// # Time Rendering
//
// Last activity prints twice: [RelativeTime] picks the coarsest unit
// that fits ("3 days ago"), and the absolute form follows in
// parentheses, laid out per the configured strftime-like date format
// (see [Layout]).
package preview
