// Package preview validates the .tga thumbnail images that accompany a
// workshop level submission before they're bundled into a level pack.
package preview

import (
	"fmt"
	"image"
	"io"

	"github.com/ftrvxmtrx/tga"
)

// MaxDimension bounds the width and height a workshop preview image may
// have; larger images are rejected rather than silently downscaled.
const MaxDimension = 1024

// Info describes a validated preview image.
type Info struct {
	Width  int
	Height int
}

// Decode reads and validates a .tga preview image, rejecting anything
// too large to be a reasonable workshop thumbnail.
func Decode(r io.Reader) (Info, image.Image, error) {
	img, err := tga.Decode(r)
	if err != nil {
		return Info{}, nil, fmt.Errorf("preview: decode tga: %w", err)
	}

	bounds := img.Bounds()
	info := Info{Width: bounds.Dx(), Height: bounds.Dy()}
	if info.Width <= 0 || info.Height <= 0 {
		return Info{}, nil, fmt.Errorf("preview: empty image (%dx%d)", info.Width, info.Height)
	}
	if info.Width > MaxDimension || info.Height > MaxDimension {
		return Info{}, nil, fmt.Errorf("preview: image %dx%d exceeds max dimension %d", info.Width, info.Height, MaxDimension)
	}

	return info, img, nil
}
