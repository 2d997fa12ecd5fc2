package pdfrender

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// FitzRenderer implements PDF rendering using go-fitz (requires CGo and MuPDF)
type FitzRenderer struct {
}

// NewFitzRenderer creates a new Fitz-based PDF renderer
func NewFitzRenderer() (*FitzRenderer, error) {
	return &FitzRenderer{}, nil
}

// RenderPages converts all pages of a PDF file to images using go-fitz.
// MuPDF renders at 72 DPI per unit zoom, so zoom 2.0 maps to 144 DPI.
func (r *FitzRenderer) RenderPages(filename string, zoom float64) ([]image.Image, error) {
	doc, err := fitz.New(filename)
	if err != nil {
		return nil, &OpenError{Path: filename, Err: err}
	}
	defer doc.Close()

	numPages := doc.NumPage()
	images := make([]image.Image, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		img, err := doc.ImageDPI(pageNum, PointsPerInch*zoom)
		if err != nil {
			return nil, &PageError{Path: filename, Page: pageNum, Err: err}
		}
		images = append(images, img)
	}

	return images, nil
}

// PageSizes returns the native page sizes using go-fitz page bounds
func (r *FitzRenderer) PageSizes(filename string) ([]PageSize, error) {
	doc, err := fitz.New(filename)
	if err != nil {
		return nil, &OpenError{Path: filename, Err: err}
	}
	defer doc.Close()

	numPages := doc.NumPage()
	sizes := make([]PageSize, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		bounds, err := doc.Bound(pageNum)
		if err != nil {
			return nil, &PageError{Path: filename, Page: pageNum, Err: err}
		}
		sizes = append(sizes, PageSize{
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
		})
	}

	return sizes, nil
}

// Close cleans up resources (no-op for Fitz renderer as doc is closed per-render)
func (r *FitzRenderer) Close() error {
	return nil
}
