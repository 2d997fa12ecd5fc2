package mvle

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFonts uses the fixed-metrics basicfont for all four slots so layout
// is deterministic without any font files on disk.
func testFonts() FontSet {
	return FontSet{Ko: testFace, KoBold: testFace, CJK: testFace, CJKBold: testFace}
}

// testRenderOptions keeps the canvas small: 100px wide, no supersampling
func testRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:        1,
		Width:        100,
		FontSize:     13,
		PaddingX:     10,
		PaddingTop:   10,
		LineSpacing:  3,
		BlockSpacing: 8,
	}
}

func TestRenderNoBlocks(t *testing.T) {
	_, err := Render(&Episode{}, testFonts(), testRenderOptions())
	assert.ErrorIs(t, err, ErrNoBlocks)
}

func TestRenderSingleBlockDimensions(t *testing.T) {
	ep := &Episode{Blocks: []Block{{Text: "hello"}}}

	img, err := Render(ep, testFonts(), testRenderOptions())
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 100, bounds.Dx())
	// padTop 10 + one line (13+3) + blockSpacing 8 + padTop 10 below
	assert.Equal(t, 44, bounds.Dy())
}

func TestRenderWrapAddsLines(t *testing.T) {
	// text width is 100 - 2*10 = 80px, so 12 glyphs at 7px wrap to two lines
	ep := &Episode{Blocks: []Block{{Text: "aaaaaaaaaaaa"}}}

	img, err := Render(ep, testFonts(), testRenderOptions())
	require.NoError(t, err)

	// one extra line adds lineHeight 16
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestRenderBlankBlockOnlyAddsSpacing(t *testing.T) {
	ep := &Episode{Blocks: []Block{
		{Text: "hello"},
		{Text: "   "},
		{Text: "world"},
	}}

	img, err := Render(ep, testFonts(), testRenderOptions())
	require.NoError(t, err)

	// two text blocks at 24 each, one blank block at 8, plus 2*padTop
	assert.Equal(t, 76, img.Bounds().Dy())
}

func TestRenderSupersamplingDownscales(t *testing.T) {
	ep := &Episode{Blocks: []Block{{Text: "hello"}}}

	opts := testRenderOptions()
	opts.Scale = 2

	img, err := Render(ep, testFonts(), opts)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 100, bounds.Dx(), "output keeps the 1x width after downscale")
	assert.Equal(t, 44, bounds.Dy(), "height scales down by the same factor")
}

func TestRenderBackgroundIsWhite(t *testing.T) {
	ep := &Episode{Blocks: []Block{{Text: "hi"}}}

	img, err := Render(ep, testFonts(), testRenderOptions())
	require.NoError(t, err)

	corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, corner)
}

func TestRenderDrawsText(t *testing.T) {
	ep := &Episode{Blocks: []Block{{Text: "MMMM"}}}

	img, err := Render(ep, testFonts(), testRenderOptions())
	require.NoError(t, err)

	// some pixel inside the first line must be darker than the background
	bounds := img.Bounds()
	found := false
	for y := 10; y < 26 && !found; y++ {
		for x := 10; x < bounds.Dx()-10; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R < 200 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "expected dark text pixels in the first line")
}
