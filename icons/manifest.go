package icons

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"pwagen/config"
)

// ManifestIcon is one icon record in the web app manifest
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

// Manifest models the manifest.json document. Field order follows the
// common ordering of hand-written web app manifests.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	Lang            string         `json:"lang"`
	Dir             string         `json:"dir"`
	StartURL        string         `json:"start_url"`
	Scope           string         `json:"scope"`
	Display         string         `json:"display"`
	Orientation     string         `json:"orientation"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Icons           []ManifestIcon `json:"icons"`
	Categories      []string       `json:"categories"`
}

// BuildManifest assembles the manifest document for the given project.
// Only manifest-category specs are listed; the logo and favicon are not
// part of the icon set a browser installs from.
func BuildManifest(cfg *config.Config, project string, specs []SizeSpec) *Manifest {
	icons := make([]ManifestIcon, 0, len(specs))
	for _, spec := range specs {
		if spec.Purpose == "" {
			continue
		}
		sizes := fmt.Sprintf("%dx%d", spec.Width, spec.Height)
		icons = append(icons, ManifestIcon{
			Src:     path.Join(cfg.Manifest.IconBasePath, fmt.Sprintf("%s-%s.png", spec.Label, sizes)),
			Sizes:   sizes,
			Type:    "image/png",
			Purpose: spec.Purpose,
		})
	}

	shortName := cfg.Manifest.ShortName
	if shortName == "" {
		shortName = project
	}

	return &Manifest{
		Name:            cfg.Manifest.Name,
		ShortName:       shortName,
		Description:     cfg.Manifest.Description,
		Lang:            cfg.Manifest.Lang,
		Dir:             cfg.Manifest.Dir,
		StartURL:        cfg.Manifest.StartURL,
		Scope:           cfg.Manifest.Scope,
		Display:         cfg.Manifest.Display,
		Orientation:     cfg.Manifest.Orientation,
		ThemeColor:      cfg.Manifest.ThemeColor,
		BackgroundColor: cfg.Manifest.BackgroundColor,
		Icons:           icons,
		Categories:      cfg.Manifest.Categories,
	}
}

// Write serializes the manifest as pretty-printed JSON at path
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
