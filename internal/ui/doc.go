// Package ui provides terminal presentation for gitnav output.
//
// This package uses the Charm libraries (lipgloss, colorprofile) for
// styled preview rendering that degrades cleanly on destinations without
// color support.
//
// # Preview Styling
//
// [PreviewStyles] returns the colored style set applied to preview
// sections: bold cyan labels, green/yellow/red status counts, yellow
// commit hashes. Colors stay within the basic ANSI range so fzf preview
// panes and plain terminals render them identically.
//
// # Profile Detection
//
// [PreviewWriter] wraps an output destination in a profile-aware writer:
//
//   - NO_COLOR, TERM=dumb, or an explicit no-color request strip all
//     styling
//   - an fzf preview pane ([InsideFzfPreview]) forces basic ANSI even
//     though the pane is a pipe, because fzf renders the codes itself
//   - otherwise the profile is detected from the destination
package ui
