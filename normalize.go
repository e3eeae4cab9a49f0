package jigsaw

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Normalize stretches src into a size×size RGBA buffer. The aspect ratio is
// not preserved: every piece crop is taken from this square, so a wide photo
// ends up squashed horizontally. The result depends only on src and size.
func Normalize(src image.Image, size int) (*image.RGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("normalize: %w: nil image", ErrImageLoad)
	}
	if size <= 0 {
		return nil, fmt.Errorf("normalize: invalid size %d", size)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("normalize: %w: empty image %v", ErrImageLoad, b)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
