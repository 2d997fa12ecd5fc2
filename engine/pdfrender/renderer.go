package pdfrender

import (
	"fmt"
	"image"
)

// PointsPerInch is the native PDF resolution; a zoom factor of 1.0 renders
// one pixel per point.
const PointsPerInch = 72.0

// PageSize is the intrinsic size of one page in points.
type PageSize struct {
	Width  float64
	Height float64
}

// Renderer defines the interface for rasterizing PDF pages
type Renderer interface {
	// RenderPages converts all pages of a PDF file to images, in page
	// order, scaled by zoom relative to native page resolution
	RenderPages(filename string, zoom float64) ([]image.Image, error)

	// PageSizes returns the native size of every page in points
	PageSizes(filename string) ([]PageSize, error)

	// Close cleans up any resources used by the renderer
	Close() error
}

// NewRenderer creates a renderer for the named backend: "fitz" (MuPDF,
// requires CGo) or "pdfium" (WebAssembly, pure Go).
func NewRenderer(backend string) (Renderer, error) {
	switch backend {
	case "", "fitz":
		return NewFitzRenderer()
	case "pdfium":
		return NewPDFiumRenderer()
	default:
		return nil, fmt.Errorf("unknown renderer backend %q (want fitz or pdfium)", backend)
	}
}
