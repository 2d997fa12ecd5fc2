// Package compose stacks page bitmaps top-to-bottom onto a single canvas.
package compose

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrNoImages is returned when there are no bitmaps to compose
var ErrNoImages = errors.New("no images to compose")

// Size returns the canvas dimensions for a set of page bitmaps: width is
// the widest page, height is the sum of all page heights.
func Size(images []image.Image) (width, height int) {
	for _, img := range images {
		bounds := img.Bounds()
		height += bounds.Dy()
		if bounds.Dx() > width {
			width = bounds.Dx()
		}
	}
	return width, height
}

// Stack pastes the bitmaps in order onto a white canvas, each at x=0 and at
// the running sum of the heights of the bitmaps before it. Every bitmap is
// consumed exactly once, so the canvas height is the exact sum of the input
// heights. Narrower pages keep white padding on the right.
func Stack(images []image.Image) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	maxWidth, totalHeight := Size(images)

	canvas := imaging.New(maxWidth, totalHeight, color.White)

	currentY := 0
	for _, img := range images {
		canvas = imaging.Paste(canvas, img, image.Pt(0, currentY))
		currentY += img.Bounds().Dy()
	}

	return canvas, nil
}
