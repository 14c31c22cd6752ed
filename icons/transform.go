package icons

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// SizeSpec describes one output artifact: its size, where it goes relative
// to the project directory, and how the source content is mapped onto it.
type SizeSpec struct {
	Label    string
	Width    int
	Height   int
	Dest     string
	Centered bool
	Purpose  string // manifest icon purpose ("any", "maskable"); empty for non-manifest artifacts
}

// manifestPrefixes pairs each icon filename prefix with its manifest purpose
var manifestPrefixes = []struct {
	Label   string
	Purpose string
}{
	{"icon", "any"},
	{"maskable-icon", "maskable"},
}

// ManifestSpecs expands the configured manifest sizes into the full ordered
// list of manifest-category SizeSpecs, one per prefix per size.
func ManifestSpecs(sizes []int, centered bool) []SizeSpec {
	specs := make([]SizeSpec, 0, len(sizes)*len(manifestPrefixes))
	for _, size := range sizes {
		for _, prefix := range manifestPrefixes {
			specs = append(specs, SizeSpec{
				Label:    prefix.Label,
				Width:    size,
				Height:   size,
				Dest:     fmt.Sprintf("manifest/%s-%dx%d.png", prefix.Label, size, size),
				Centered: centered,
				Purpose:  prefix.Purpose,
			})
		}
	}
	return specs
}

// LogoSpec returns the fixed spec for the project logo. The logo is always
// cropped to fill, never padded, regardless of the center flag.
func LogoSpec(size int) SizeSpec {
	return SizeSpec{
		Label:  "logo",
		Width:  size,
		Height: size,
		Dest:   "logo.png",
	}
}

// Transform produces a new pixel buffer of exactly spec.Width x spec.Height.
//
// Centered specs scale the source proportionally to fit inside the target
// and pad the rest with transparent pixels; when the padding is odd the
// extra pixel goes to the bottom/right edge. Non-centered specs crop to
// fill, so no padding is ever introduced. Upscaling past the source
// resolution is allowed.
func Transform(src image.Image, spec SizeSpec) (*image.NRGBA, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d for %s", ErrInvalidSize, spec.Width, spec.Height, spec.Label)
	}

	if !spec.Centered {
		return imaging.Fill(src, spec.Width, spec.Height, imaging.Center, imaging.Lanczos), nil
	}

	w, h := scaleDims(src.Bounds(), spec.Width, spec.Height)
	scaled := imaging.Resize(src, w, h, imaging.Lanczos)
	if w == spec.Width && h == spec.Height {
		return scaled, nil
	}
	return padToCanvas(scaled, spec.Width, spec.Height), nil
}

// CenterOnCanvas builds the square base image centered icons are derived
// from: the source scaled to fit inside an inner x inner box and padded out
// to size x size. The margin keeps maskable icons inside the safe zone.
func CenterOnCanvas(src image.Image, size, inner int) (*image.NRGBA, error) {
	if size <= 0 || inner <= 0 || inner > size {
		return nil, fmt.Errorf("%w: canvas %d with inner %d", ErrInvalidSize, size, inner)
	}

	w, h := scaleDims(src.Bounds(), inner, inner)
	scaled := imaging.Resize(src, w, h, imaging.Lanczos)
	return padToCanvas(scaled, size, size), nil
}

// scaleDims returns the largest dimensions that preserve b's aspect ratio
// and fit inside maxW x maxH. Sources smaller than the box scale up; the
// binding axis always lands exactly on its bound.
func scaleDims(b image.Rectangle, maxW, maxH int) (int, int) {
	scale := math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := int(math.Round(float64(b.Dx()) * scale))
	h := int(math.Round(float64(b.Dy()) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// padToCanvas pastes img centered on a transparent width x height canvas.
// Integer division floors the offsets, so odd padding lands bottom/right.
func padToCanvas(img *image.NRGBA, width, height int) *image.NRGBA {
	canvas := imaging.New(width, height, color.NRGBA{})
	offX := (width - img.Bounds().Dx()) / 2
	offY := (height - img.Bounds().Dy()) / 2
	return imaging.Paste(canvas, img, image.Pt(offX, offY))
}
