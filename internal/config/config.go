package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// SearchConfig controls where and how deep the scanner looks for repositories.
type SearchConfig struct {
	BasePath string `toml:"base_path"`
	MaxDepth int    `toml:"max_depth"`
}

// CacheConfig controls the on-disk scan cache.
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

// TTL returns the cache time-to-live as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// UIConfig holds the fzf presentation settings.
type UIConfig struct {
	Prompt              string `toml:"prompt"`
	Header              string `toml:"header"`
	PreviewWidthPercent int    `toml:"preview_width_percent"`
	Layout              string `toml:"layout"`
	HeightPercent       int    `toml:"height_percent"`
	ShowBorder          bool   `toml:"show_border"`
}

// PreviewConfig toggles the sections of a repository preview.
type PreviewConfig struct {
	ShowBranch       bool   `toml:"show_branch"`
	ShowLastActivity bool   `toml:"show_last_activity"`
	ShowStatus       bool   `toml:"show_status"`
	RecentCommits    int    `toml:"recent_commits"`
	DateFormat       string `toml:"date_format"`
}

// Config holds the gitnav configuration.
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Cache   CacheConfig   `toml:"cache"`
	UI      UIConfig      `toml:"ui"`
	Preview PreviewConfig `toml:"preview"`
}

// ValidLayouts are the fzf layouts gitnav accepts.
var ValidLayouts = []string{"default", "reverse", "reverse-list"}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			BasePath: "~",
			MaxDepth: 5,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 300,
		},
		UI: UIConfig{
			Prompt:              "Select repo > ",
			Header:              "Repository (↑/↓, ⏎, Esc)",
			PreviewWidthPercent: 60,
			Layout:              "reverse",
			HeightPercent:       90,
			ShowBorder:          true,
		},
		Preview: PreviewConfig{
			ShowBranch:       true,
			ShowLastActivity: true,
			ShowStatus:       true,
			RecentCommits:    5,
			DateFormat:       "%Y-%m-%d %H:%M",
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns an error if the path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s must not be empty", fieldName)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// DefaultPath returns the default config file path,
// typically ~/.config/gitnav/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gitnav", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file yields Default() without error; values present
// in the file are merged over the defaults, so partial files work.
// Returns an error only if the file exists but cannot be parsed or fails
// validation.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that all configured values are in range. Errors carry the
// literal configured value so a user can fix the file without guessing.
func (c *Config) Validate() error {
	if err := ValidatePath(c.Search.BasePath, "search.base_path"); err != nil {
		return err
	}
	if c.Search.MaxDepth < 1 {
		return fmt.Errorf("search.max_depth must be at least 1, got %d", c.Search.MaxDepth)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds must not be negative, got %d", c.Cache.TTLSeconds)
	}
	if c.UI.PreviewWidthPercent < 1 || c.UI.PreviewWidthPercent > 99 {
		return fmt.Errorf("ui.preview_width_percent must be between 1 and 99, got %d", c.UI.PreviewWidthPercent)
	}
	if c.UI.HeightPercent < 1 || c.UI.HeightPercent > 100 {
		return fmt.Errorf("ui.height_percent must be between 1 and 100, got %d", c.UI.HeightPercent)
	}
	if !slices.Contains(ValidLayouts, c.UI.Layout) {
		return fmt.Errorf("ui.layout must be one of %s, got %q", strings.Join(ValidLayouts, ", "), c.UI.Layout)
	}
	if c.Preview.RecentCommits < 0 {
		return fmt.Errorf("preview.recent_commits must not be negative, got %d", c.Preview.RecentCommits)
	}
	if c.Preview.DateFormat == "" {
		return errors.New("preview.date_format must not be empty")
	}
	return nil
}

const exampleConfig = `# gitnav configuration
# Location: ~/.config/gitnav/config.toml
# All settings are optional; omitted values use the defaults shown here.

[search]
# Directory to scan for git repositories.
# Must be an absolute path or start with ~.
base_path = "~"

# How many directory levels below base_path to descend (must be >= 1).
# A repository found at any level is not searched for nested repositories.
max_depth = 5

[cache]
# Cache scan results on disk so repeated invocations skip the filesystem walk.
enabled = true

# Seconds a cached scan result stays valid.
ttl_seconds = 300

[ui]
# fzf prompt and header.
prompt = "Select repo > "
header = "Repository (↑/↓, ⏎, Esc)"

# Width of the preview pane as a percentage of the window.
preview_width_percent = 60

# fzf layout: "default", "reverse" or "reverse-list".
layout = "reverse"

# Height of the fzf window as a percentage of the terminal.
height_percent = 90

# Draw a border around the fzf window.
show_border = true

[preview]
# Toggle individual preview sections.
show_branch = true
show_last_activity = true
show_status = true

# Number of recent commits to show (0 hides the section).
recent_commits = 5

# strftime-style format for absolute timestamps.
date_format = "%Y-%m-%d %H:%M"
`

// Example returns the example config file text.
func Example() string {
	return exampleConfig
}

// Init creates the example config file at the default location.
// If force is true, an existing file is overwritten.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(exampleConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
