package mvle

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RenderOptions control episode rendering. All pixel values are at 1x; the
// renderer works at Scale times these and downscales at the end, which keeps
// Korean glyphs crisp.
type RenderOptions struct {
	Scale        int // supersampling factor
	Width        int // final output width
	FontSize     int
	PaddingX     int // left and right margin
	PaddingTop   int // also applied below the last block
	LineSpacing  int
	BlockSpacing int
}

// DefaultRenderOptions matches the original drag-and-drop tool: 1200px wide
// output rendered with 2x supersampling.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:        2,
		Width:        1200,
		FontSize:     28,
		PaddingX:     60,
		PaddingTop:   80,
		LineSpacing:  16,
		BlockSpacing: 32,
	}
}

// FontSizePx returns the pixel size faces must be loaded at, including the
// supersampling factor
func (o RenderOptions) FontSizePx() float64 {
	scale := o.Scale
	if scale < 1 {
		scale = 1
	}
	return float64(o.FontSize * scale)
}

// placedBlock is the first-pass layout result for one block
type placedBlock struct {
	y     int
	lines []string
	bold  bool
}

// Render lays out and draws the episode onto a white canvas. Layout runs in
// two passes: first measure every block to fix the total height, then draw.
// The supersampled canvas is Lanczos-downscaled to the final width.
func Render(ep *Episode, fonts FontSet, opts RenderOptions) (*image.NRGBA, error) {
	if len(ep.Blocks) == 0 {
		return nil, ErrNoBlocks
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	imgWidth := opts.Width * scale
	padX := opts.PaddingX * scale
	padTop := opts.PaddingTop * scale
	textWidth := imgWidth - 2*padX
	lineHeight := (opts.FontSize + opts.LineSpacing) * scale
	blockSpacing := opts.BlockSpacing * scale

	// First pass: wrap each block and fix its vertical position
	currentY := padTop
	var layout []placedBlock
	for _, block := range ep.Blocks {
		if strings.TrimSpace(block.Text) == "" {
			currentY += blockSpacing
			continue
		}
		bold := block.Bold()
		ko, cjk := fonts.pair(bold)
		lines := wrapPixels(block.Text, fixed.I(textWidth), ko, cjk)
		layout = append(layout, placedBlock{y: currentY, lines: lines, bold: bold})
		currentY += len(lines)*lineHeight + blockSpacing
	}
	totalHeight := currentY + padTop

	// Second pass: draw
	canvas := imaging.New(imgWidth, totalHeight, color.White)
	drawer := &font.Drawer{
		Dst: canvas,
		Src: image.NewUniform(color.NRGBA{R: 30, G: 30, B: 30, A: 255}),
	}
	for _, pb := range layout {
		ko, cjk := fonts.pair(pb.bold)
		y := pb.y
		for _, line := range pb.lines {
			drawLineMixed(drawer, padX, y, line, ko, cjk)
			y += lineHeight
		}
	}

	if scale > 1 {
		return imaging.Resize(canvas, opts.Width, 0, imaging.Lanczos), nil
	}
	return canvas, nil
}

// drawLineMixed draws one line rune by rune so each rune gets the right
// face. top is the top edge of the line; Drawer.Dot wants the baseline.
func drawLineMixed(d *font.Drawer, x, top int, line string, ko, cjk font.Face) {
	cursor := fixed.I(x)
	for _, r := range line {
		face := faceFor(r, ko, cjk)
		d.Face = face
		d.Dot = fixed.Point26_6{X: cursor, Y: fixed.I(top) + face.Metrics().Ascent}
		d.DrawString(string(r))
		cursor += font.MeasureString(face, string(r))
	}
}
