// Package config handles loading and validation of gitnav configuration.
//
// Configuration is read from ~/.config/gitnav/config.toml (or a custom
// path given with -c/--config). A missing file is not an error: built-in
// defaults apply, and values present in a partial file are merged over
// them section by section.
//
// # Sections
//
//   - [search]: base_path (absolute or ~) and max_depth (>= 1) for the
//     repository scanner
//   - [cache]: enabled flag and ttl_seconds for the on-disk scan cache
//   - [ui]: fzf prompt, header, layout, sizing and border settings
//   - [preview]: section toggles, recent commit count and the
//     strftime-style date_format used for absolute timestamps
//
// # Validation
//
// [Config.Validate] range-checks every value and reports the literal
// configured value in its errors. Load validates automatically; flag
// overrides applied later (e.g. --max-depth) are validated by the
// components that consume them.
//
// # Path Rules
//
// Directory paths must be absolute or start with ~ (no relative paths
// like "." or "..") to avoid confusion about the working directory.
// [ExpandPath] expands the ~ prefix since shells do not expand it inside
// config files.
package config
