// Package config loads and validates blogen site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blogen/internal/fileutil"
	"github.com/alnah/go-blogen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxSiteTitleLength  = 200  // Blog title on the index header
	MaxTaglineLength    = 500  // Intro line under the title
	MaxURLLength        = 2048 // Browser limit
	MaxDirLength        = 512  // Articles/output paths
	MaxStyleNameLength  = 100  // CSS style name
	MaxDateFormatLength = 50   // dateutil token format
)

// Config holds all configuration for site generation.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Articles ArticlesConfig `yaml:"articles"`
	Output   OutputConfig   `yaml:"output"`
	CSS      CSSConfig      `yaml:"css"`
	Dates    DatesConfig    `yaml:"dates"`
}

// SiteConfig defines the index page identity.
type SiteConfig struct {
	Title        string `yaml:"title"`        // Blog title (h1 on the index)
	Tagline      string `yaml:"tagline"`      // Intro line under the title
	PortfolioURL string `yaml:"portfolioURL"` // Back-link target (empty = no link)
}

// ArticlesConfig defines where persisted articles live.
type ArticlesConfig struct {
	Dir string `yaml:"dir"` // Articles directory (default "articles")
}

// OutputConfig defines where the generated index goes.
type OutputConfig struct {
	Index string `yaml:"index"` // Index output path (default "index.html")
}

// CSSConfig defines article styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Built-in style name (empty = default)
}

// DatesConfig defines date rendering using dateutil tokens.
type DatesConfig struct {
	IndexFormat   string `yaml:"indexFormat"`   // Article dates on the index
	ArticleFormat string `yaml:"articleFormat"` // Byline inside articles
}

// DefaultConfig returns the stock personal-blog configuration.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:   "Essays",
			Tagline: "Thoughts on technology, design, and what matters.",
		},
		Articles: ArticlesConfig{Dir: "articles"},
		Output:   OutputConfig{Index: "index.html"},
		CSS:      CSSConfig{Style: ""},
		Dates: DatesConfig{
			IndexFormat:   "MMMM YYYY",
			ArticleFormat: "MMMM D, YYYY",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field length limits.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxSiteTitleLength},
		{"site.tagline", c.Site.Tagline, MaxTaglineLength},
		{"site.portfolioURL", c.Site.PortfolioURL, MaxURLLength},
		{"articles.dir", c.Articles.Dir, MaxDirLength},
		{"output.index", c.Output.Index, MaxDirLength},
		{"css.style", c.CSS.Style, MaxStyleNameLength},
		{"dates.indexFormat", c.Dates.IndexFormat, MaxDateFormatLength},
		{"dates.articleFormat", c.Dates.ArticleFormat, MaxDateFormatLength},
	}

	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}

	return nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/blogen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "blogen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
