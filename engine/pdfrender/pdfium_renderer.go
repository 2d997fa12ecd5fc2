package pdfrender

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

// PDFiumRenderer implements PDF rendering using go-pdfium with WebAssembly (pure Go, no CGo)
type PDFiumRenderer struct {
	pool     pdfium.Pool
	instance pdfium.Pdfium
}

// NewPDFiumRenderer creates a new PDFium-based PDF renderer using WebAssembly
func NewPDFiumRenderer() (*PDFiumRenderer, error) {
	// Single-threaded usage, one worker is enough
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PDFium WebAssembly: %w", err)
	}

	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to get PDFium instance: %w", err)
	}

	return &PDFiumRenderer{
		pool:     pool,
		instance: instance,
	}, nil
}

// RenderPages converts all pages of a PDF file to images using go-pdfium WebAssembly
func (r *PDFiumRenderer) RenderPages(filename string, zoom float64) ([]image.Image, error) {
	doc, numPages, err := r.openDocument(filename)
	if err != nil {
		return nil, err
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc,
	})

	images := make([]image.Image, 0, numPages)

	// PDFium renders in DPI; native page resolution is 72 DPI
	dpi := int(PointsPerInch * zoom)
	for pageIndex := 0; pageIndex < numPages; pageIndex++ {
		pageRender, err := r.instance.RenderPageInDPI(&requests.RenderPageInDPI{
			DPI: dpi,
			Page: requests.Page{
				ByIndex: &requests.PageByIndex{
					Document: doc,
					Index:    pageIndex,
				},
			},
		})
		if err != nil {
			return nil, &PageError{Path: filename, Page: pageIndex, Err: err}
		}

		images = append(images, pageRender.Result.Image)

		// Clean up WebAssembly resources for this page
		pageRender.Cleanup()
	}

	return images, nil
}

// PageSizes returns the native page sizes in points
func (r *PDFiumRenderer) PageSizes(filename string) ([]PageSize, error) {
	doc, numPages, err := r.openDocument(filename)
	if err != nil {
		return nil, err
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc,
	})

	sizes := make([]PageSize, 0, numPages)
	for pageIndex := 0; pageIndex < numPages; pageIndex++ {
		size, err := r.instance.GetPageSize(&requests.GetPageSize{
			Page: requests.Page{
				ByIndex: &requests.PageByIndex{
					Document: doc,
					Index:    pageIndex,
				},
			},
		})
		if err != nil {
			return nil, &PageError{Path: filename, Page: pageIndex, Err: err}
		}
		sizes = append(sizes, PageSize{Width: size.Width, Height: size.Height})
	}

	return sizes, nil
}

func (r *PDFiumRenderer) openDocument(filename string) (references.FPDF_DOCUMENT, int, error) {
	pdfBytes, err := os.ReadFile(filename)
	if err != nil {
		return "", 0, &OpenError{Path: filename, Err: err}
	}

	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return "", 0, &OpenError{Path: filename, Err: err}
	}

	pageCountResp, err := r.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})
		return "", 0, &OpenError{Path: filename, Err: err}
	}

	return doc.Document, pageCountResp.PageCount, nil
}

// Close cleans up resources used by the PDFium renderer
func (r *PDFiumRenderer) Close() error {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
	r.instance = nil
	return nil
}
