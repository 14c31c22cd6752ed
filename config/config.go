package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Icons    IconsConfig    `yaml:"icons"`
	Manifest ManifestConfig `yaml:"manifest"`
}

// CanvasConfig controls the square canvas centered icons are built on.
// Content is scaled to fit inside Inner and padded out to Size, which leaves
// a safe margin for maskable icons.
type CanvasConfig struct {
	Size  int `yaml:"size"`
	Inner int `yaml:"inner"`
}

type IconsConfig struct {
	ManifestSizes []int `yaml:"manifest_sizes"`
	FaviconSizes  []int `yaml:"favicon_sizes"`
	LogoSize      int   `yaml:"logo_size"`
}

// ManifestConfig holds the static PWA metadata written to manifest.json.
// ShortName left empty means "use the project name".
type ManifestConfig struct {
	Name            string   `yaml:"name"`
	ShortName       string   `yaml:"short_name"`
	Description     string   `yaml:"description"`
	Lang            string   `yaml:"lang"`
	Dir             string   `yaml:"dir"`
	StartURL        string   `yaml:"start_url"`
	Scope           string   `yaml:"scope"`
	Display         string   `yaml:"display"`
	Orientation     string   `yaml:"orientation"`
	ThemeColor      string   `yaml:"theme_color"`
	BackgroundColor string   `yaml:"background_color"`
	IconBasePath    string   `yaml:"icon_base_path"`
	Categories      []string `yaml:"categories"`
}

// Default returns the built-in configuration. The sizes match what browsers
// and install prompts actually request.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Size:  500,
			Inner: 320,
		},
		Icons: IconsConfig{
			ManifestSizes: []int{32, 48, 72, 128, 180, 192, 256, 384, 512},
			FaviconSizes:  []int{32, 48, 64, 128, 256},
			LogoSize:      192,
		},
		Manifest: ManifestConfig{
			Name:            "Application name",
			Description:     "Application description.",
			Lang:            "en",
			Dir:             "ltr",
			StartURL:        "/",
			Scope:           "/",
			Display:         "standalone",
			Orientation:     "portrait-primary",
			ThemeColor:      "#ffffff",
			BackgroundColor: "#ffffff",
			IconBasePath:    "/assets/media/img/manifest",
			Categories:      []string{},
		},
	}
}

// Load reads and parses the configuration file. Fields not set in the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that every configured size can actually be rendered
func (c *Config) Validate() error {
	if c.Canvas.Size <= 0 {
		return fmt.Errorf("canvas.size must be positive, got %d", c.Canvas.Size)
	}
	if c.Canvas.Inner <= 0 {
		return fmt.Errorf("canvas.inner must be positive, got %d", c.Canvas.Inner)
	}
	if c.Canvas.Inner > c.Canvas.Size {
		return fmt.Errorf("canvas.inner (%d) must not exceed canvas.size (%d)", c.Canvas.Inner, c.Canvas.Size)
	}
	if len(c.Icons.ManifestSizes) == 0 {
		return fmt.Errorf("icons.manifest_sizes must not be empty")
	}
	for _, size := range c.Icons.ManifestSizes {
		if size <= 0 {
			return fmt.Errorf("icons.manifest_sizes entry must be positive, got %d", size)
		}
	}
	if len(c.Icons.FaviconSizes) == 0 {
		return fmt.Errorf("icons.favicon_sizes must not be empty")
	}
	for _, size := range c.Icons.FaviconSizes {
		if size <= 0 {
			return fmt.Errorf("icons.favicon_sizes entry must be positive, got %d", size)
		}
	}
	if c.Icons.LogoSize <= 0 {
		return fmt.Errorf("icons.logo_size must be positive, got %d", c.Icons.LogoSize)
	}
	return nil
}
