package engine

import (
	"bytes"
	"math"

	"github.com/ledongthuc/pdf"

	"github.com/drummonds/goLongPNG/engine/pdfrender"
)

// PageDimensions describes one page at native resolution and at the
// inspection zoom
type PageDimensions struct {
	Index    int
	WidthPt  float64
	HeightPt float64
	WidthPx  int
	HeightPx int
}

// Report summarises a document without converting it
type Report struct {
	Path         string
	PageCount    int
	Zoom         float64
	Pages        []PageDimensions
	CanvasWidth  int
	CanvasHeight int
	HasTextLayer bool
}

// Inspect reports the page geometry of the PDF at path and the canvas size
// a conversion at the given zoom would produce, plus whether the document
// carries an extractable text layer.
func Inspect(renderer pdfrender.Renderer, path string, zoom float64) (*Report, error) {
	if zoom <= 0 {
		zoom = 2.0
	}

	sizes, err := renderer.PageSizes(path)
	if err != nil {
		Logger.Error("Unable to read page sizes", "path", path, "error", err)
		return nil, err
	}
	if len(sizes) == 0 {
		Logger.Error("PDF has no pages", "path", path)
		return nil, ErrEmptyDocument
	}

	report := &Report{
		Path:      path,
		PageCount: len(sizes),
		Zoom:      zoom,
		Pages:     make([]PageDimensions, 0, len(sizes)),
	}

	for i, size := range sizes {
		page := PageDimensions{
			Index:    i,
			WidthPt:  size.Width,
			HeightPt: size.Height,
			WidthPx:  int(math.Round(size.Width * zoom)),
			HeightPx: int(math.Round(size.Height * zoom)),
		}
		report.Pages = append(report.Pages, page)

		report.CanvasHeight += page.HeightPx
		if page.WidthPx > report.CanvasWidth {
			report.CanvasWidth = page.WidthPx
		}
	}

	report.HasTextLayer = hasTextLayer(path)

	return report, nil
}

// hasTextLayer reports whether the PDF contains extractable text. Extraction
// failures count as no text layer rather than failing the inspection.
func hasTextLayer(path string) bool {
	pdfFile, reader, err := pdf.Open(path)
	if err != nil {
		Logger.Warn("Unable to open PDF for text extraction", "path", path, "error", err)
		return false
	}
	defer pdfFile.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		Logger.Warn("Unable to extract text from PDF", "path", path, "error", err)
		return false
	}

	var buf bytes.Buffer
	buf.ReadFrom(textReader)
	return len(bytes.TrimSpace(buf.Bytes())) > 0
}
