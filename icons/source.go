package icons

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	// Register decoders beyond imaging's built-in set so LoadSource accepts
	// WebP sources as well.
	_ "golang.org/x/image/webp"
)

var (
	// ErrSourceNotFound indicates the source image path does not exist or
	// is not a regular file.
	ErrSourceNotFound = errors.New("source image not found")

	// ErrDecode indicates the source file is not a supported raster format.
	ErrDecode = errors.New("unsupported or corrupt image")

	// ErrInvalidSize indicates a requested target dimension is not positive.
	ErrInvalidSize = errors.New("invalid target size")
)

// LoadSource opens and decodes the source image. The returned image is read
// once and never mutated; every transform works on its own copy.
func LoadSource(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return img, nil
}
