// Package engine drives document to long-PNG conversion: rasterize every
// page, stack the bitmaps vertically, write one PNG.
package engine

import (
	"errors"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/drummonds/goLongPNG/engine/compose"
	"github.com/drummonds/goLongPNG/engine/pdfrender"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// Options control a single conversion run
type Options struct {
	Zoom         float64 // render scale, 2.0 doubles the native resolution
	ResizeWidth  int     // resize the finished canvas to this width, 0 disables
	SharpenSigma float64 // sharpen the finished canvas, 0 disables
}

// DefaultOptions returns the standard 2x render with no post-processing
func DefaultOptions() Options {
	return Options{Zoom: 2.0}
}

// Result describes a finished conversion
type Result struct {
	OutputPath string
	PageCount  int
	Width      int
	Height     int
}

// DefaultOutputPath derives the output file for an input document by
// replacing its extension with .png
func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".png"
}

// Convert renders every page of the PDF at inputPath and writes one
// vertically stacked PNG to outputPath. An empty outputPath falls back to
// DefaultOutputPath. The conversion is all-or-nothing: any page failure
// aborts the run and no output file is produced.
func Convert(renderer pdfrender.Renderer, inputPath, outputPath string, opts Options) (*Result, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 2.0
	}

	images, err := renderer.RenderPages(inputPath, opts.Zoom)
	if err != nil {
		Logger.Error("Unable to rasterize PDF document", "inputPath", inputPath, "error", err)
		return nil, err
	}
	Logger.Info("PDF rasterized", "inputPath", inputPath, "pages", len(images), "zoom", opts.Zoom)

	canvas, err := compose.Stack(images)
	if err != nil {
		if errors.Is(err, compose.ErrNoImages) {
			Logger.Error("PDF has no pages", "inputPath", inputPath)
			return nil, ErrEmptyDocument
		}
		return nil, err
	}

	processed := postProcess(canvas, opts)

	if err := savePNG(outputPath, processed); err != nil {
		Logger.Error("Unable to save output image", "outputPath", outputPath, "error", err)
		return nil, err
	}

	bounds := processed.Bounds()
	result := &Result{
		OutputPath: outputPath,
		PageCount:  len(images),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}
	Logger.Info("Successfully converted PDF to long PNG",
		"outputPath", outputPath,
		"pages", result.PageCount,
		"width", result.Width,
		"height", result.Height)
	return result, nil
}

// postProcess applies the optional resize and sharpen passes
func postProcess(canvas image.Image, opts Options) image.Image {
	processed := canvas
	if opts.ResizeWidth > 0 {
		processed = imaging.Resize(processed, opts.ResizeWidth, 0, imaging.Lanczos)
	}
	if opts.SharpenSigma > 0 {
		processed = imaging.Sharpen(processed, opts.SharpenSigma)
	}
	return processed
}

// savePNG writes img to path, removing the file again if encoding fails
// partway so a broken artifact is never left behind
func savePNG(path string, img image.Image) error {
	outFile, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := png.Encode(outFile, img); err != nil {
		outFile.Close()
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}

	if err := outFile.Close(); err != nil {
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
