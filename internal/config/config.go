// Package config loads the sitetools configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// NavMap is the path to the navigation map file.
	NavMap string     `yaml:"nav_map" validate:"required"`
	Next   NextConfig `yaml:"next"`

	Render RenderConfig `yaml:"render"`
	Inject InjectConfig `yaml:"inject"`
	Data   DataConfig   `yaml:"data"`
}

// NextConfig controls how resolved next-page candidates are addressed.
type NextConfig struct {
	IDPrefix     string `yaml:"id_prefix" validate:"required"`
	URLPrefix    string `yaml:"url_prefix"`
	DefaultTrack string `yaml:"default_track" validate:"required"`
	SharedTrack  string `yaml:"shared_track"`
}

// RenderConfig controls Markdown page rendering.
type RenderConfig struct {
	ContentDir string `yaml:"content_dir"`
	OutputDir  string `yaml:"output_dir"`
	Layout     string `yaml:"layout,omitempty"` // optional HTML layout template
}

// InjectConfig controls file injection targets.
type InjectConfig struct {
	Targets []string `yaml:"targets,omitempty" validate:"dive,required"`
}

// DataConfig controls data file merging.
type DataConfig struct {
	Files  []string `yaml:"files,omitempty" validate:"dive,required"`
	Output string   `yaml:"output,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just note it in verbose runs
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns a configuration with all defaults applied, for commands
// that can run without a configuration file.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.NavMap == "" {
		c.NavMap = "navigation.yaml"
	}
	if c.Next.IDPrefix == "" {
		c.Next.IDPrefix = "next"
	}
	if c.Next.URLPrefix == "" {
		c.Next.URLPrefix = "/"
	}
	if c.Next.DefaultTrack == "" {
		c.Next.DefaultTrack = "main"
	}
	if c.Next.SharedTrack == "" {
		c.Next.SharedTrack = "shared"
	}
	if c.Render.ContentDir == "" {
		c.Render.ContentDir = "content"
	}
	if c.Render.OutputDir == "" {
		c.Render.OutputDir = "./site"
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := `# sitetools configuration
nav_map: navigation.yaml

next:
  id_prefix: next
  url_prefix: /docs
  default_track: main
  shared_track: shared

render:
  content_dir: content
  output_dir: ./site
  # layout: layouts/page.html

data:
  files:
    - data/defaults.yaml
    - data/site.yaml
  output: data/merged.yaml
`
	// #nosec G306 -- example configuration is not sensitive
	if err := os.WriteFile(configPath, []byte(example), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
