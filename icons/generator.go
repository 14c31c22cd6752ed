package icons

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"pwagen/config"
)

// Generator produces the complete asset set for one project
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a new asset generator
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate runs the full pipeline: load the source, write every manifest
// icon, emit manifest.json, then the logo and favicon. Processing is
// strictly sequential and fail-fast; the first error aborts the run and
// whatever was already written stays on disk.
func (g *Generator) Generate(sourcePath, project string, center bool) error {
	// Load before touching the output directory, so a bad source leaves
	// nothing behind.
	src, err := LoadSource(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to load source image: %w", err)
	}

	outDir := project

	base := src
	if center {
		canvas, err := CenterOnCanvas(src, g.cfg.Canvas.Size, g.cfg.Canvas.Inner)
		if err != nil {
			return fmt.Errorf("failed to build centered base: %w", err)
		}
		base = canvas
	}

	specs := ManifestSpecs(g.cfg.Icons.ManifestSizes, center)
	if err := g.writeManifestIcons(base, outDir, specs); err != nil {
		return err
	}

	manifest := BuildManifest(g.cfg, project, specs)
	if err := manifest.Write(filepath.Join(outDir, "manifest.json")); err != nil {
		return fmt.Errorf("failed to emit manifest: %w", err)
	}

	if err := g.writeLogo(src, outDir); err != nil {
		return err
	}

	if err := g.writeFavicon(src, outDir); err != nil {
		return err
	}

	log.Printf("Icons and manifest.json saved in '%s/'", outDir)
	return nil
}

// writeManifestIcons transforms and writes one file per SizeSpec
func (g *Generator) writeManifestIcons(base image.Image, outDir string, specs []SizeSpec) error {
	for _, spec := range specs {
		img, err := Transform(base, spec)
		if err != nil {
			return fmt.Errorf("failed to transform %s: %w", spec.Dest, err)
		}
		if err := WritePNG(img, filepath.Join(outDir, spec.Dest)); err != nil {
			return fmt.Errorf("failed to write manifest icon: %w", err)
		}
	}
	return nil
}

// writeLogo writes the crop-to-fill project logo. The logo always derives
// from the original source, never from the centered base.
func (g *Generator) writeLogo(src image.Image, outDir string) error {
	img, err := Transform(src, LogoSpec(g.cfg.Icons.LogoSize))
	if err != nil {
		return fmt.Errorf("failed to transform logo: %w", err)
	}
	if err := WritePNG(img, filepath.Join(outDir, "logo.png")); err != nil {
		return fmt.Errorf("failed to write logo: %w", err)
	}
	return nil
}

// writeFavicon writes favicon.ico with one embedded image per configured size
func (g *Generator) writeFavicon(src image.Image, outDir string) error {
	images := make([]image.Image, 0, len(g.cfg.Icons.FaviconSizes))
	for _, size := range g.cfg.Icons.FaviconSizes {
		img, err := Transform(src, SizeSpec{Label: "favicon", Width: size, Height: size})
		if err != nil {
			return fmt.Errorf("failed to transform favicon: %w", err)
		}
		images = append(images, img)
	}

	if err := WriteICO(images, filepath.Join(outDir, "favicon.ico")); err != nil {
		return fmt.Errorf("failed to write favicon: %w", err)
	}
	return nil
}
