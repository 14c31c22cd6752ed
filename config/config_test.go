package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}

	if cfg.Canvas.Size != 500 || cfg.Canvas.Inner != 320 {
		t.Errorf("Expected canvas 500/320, got %d/%d", cfg.Canvas.Size, cfg.Canvas.Inner)
	}

	if len(cfg.Icons.ManifestSizes) != 9 {
		t.Errorf("Expected 9 manifest sizes, got %d", len(cfg.Icons.ManifestSizes))
	}

	if cfg.Icons.LogoSize != 192 {
		t.Errorf("Expected logo size 192, got %d", cfg.Icons.LogoSize)
	}

	if cfg.Manifest.Display != "standalone" {
		t.Errorf("Expected display 'standalone', got '%s'", cfg.Manifest.Display)
	}
}

func TestLoadConfig(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
canvas:
  size: 400
  inner: 256

icons:
  manifest_sizes: [64, 128]

manifest:
  name: "Demo App"
  short_name: "demo"
  theme_color: "#112233"
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Canvas.Size != 400 {
		t.Errorf("Expected canvas size 400, got %d", cfg.Canvas.Size)
	}

	if len(cfg.Icons.ManifestSizes) != 2 {
		t.Errorf("Expected 2 manifest sizes, got %d", len(cfg.Icons.ManifestSizes))
	}

	if cfg.Manifest.Name != "Demo App" {
		t.Errorf("Expected name 'Demo App', got '%s'", cfg.Manifest.Name)
	}

	if cfg.Manifest.ThemeColor != "#112233" {
		t.Errorf("Expected theme_color '#112233', got '%s'", cfg.Manifest.ThemeColor)
	}

	// Fields not present in the file keep their defaults
	if cfg.Icons.LogoSize != 192 {
		t.Errorf("Expected default logo size 192, got %d", cfg.Icons.LogoSize)
	}

	if len(cfg.Icons.FaviconSizes) != 5 {
		t.Errorf("Expected default favicon sizes, got %v", cfg.Icons.FaviconSizes)
	}

	if cfg.Manifest.StartURL != "/" {
		t.Errorf("Expected default start_url '/', got '%s'", cfg.Manifest.StartURL)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config { return Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero canvas size",
			mutate:  func(c *Config) { c.Canvas.Size = 0 },
			wantErr: true,
		},
		{
			name:    "inner larger than canvas",
			mutate:  func(c *Config) { c.Canvas.Inner = c.Canvas.Size + 1 },
			wantErr: true,
		},
		{
			name:    "empty manifest sizes",
			mutate:  func(c *Config) { c.Icons.ManifestSizes = nil },
			wantErr: true,
		},
		{
			name:    "negative manifest size",
			mutate:  func(c *Config) { c.Icons.ManifestSizes = []int{192, -1} },
			wantErr: true,
		},
		{
			name:    "zero favicon size",
			mutate:  func(c *Config) { c.Icons.FaviconSizes = []int{0} },
			wantErr: true,
		},
		{
			name:    "zero logo size",
			mutate:  func(c *Config) { c.Icons.LogoSize = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
