package engine

import (
	"errors"
	"testing"

	"github.com/drummonds/goLongPNG/engine/pdfrender"
)

func TestInspectCanvasProjection(t *testing.T) {
	renderer := &fakeRenderer{
		sizes: []pdfrender.PageSize{
			{Width: 600, Height: 800},
			{Width: 600, Height: 900},
			{Width: 600, Height: 850},
		},
	}

	report, err := Inspect(renderer, "doc.pdf", 2.0)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if report.PageCount != 3 {
		t.Errorf("Expected 3 pages, got %d", report.PageCount)
	}
	if report.Pages[0].WidthPx != 1200 || report.Pages[0].HeightPx != 1600 {
		t.Errorf("Expected page 1 rendered at 1200x1600, got %dx%d",
			report.Pages[0].WidthPx, report.Pages[0].HeightPx)
	}
	if report.Pages[1].HeightPx != 1800 || report.Pages[2].HeightPx != 1700 {
		t.Errorf("Unexpected rendered page heights: %d, %d",
			report.Pages[1].HeightPx, report.Pages[2].HeightPx)
	}
	if report.CanvasWidth != 1200 || report.CanvasHeight != 5100 {
		t.Errorf("Expected projected canvas 1200x5100, got %dx%d",
			report.CanvasWidth, report.CanvasHeight)
	}
	if report.HasTextLayer {
		t.Error("Expected no text layer for a nonexistent file")
	}
}

func TestInspectRoundsPixelSizes(t *testing.T) {
	renderer := &fakeRenderer{
		sizes: []pdfrender.PageSize{{Width: 595.3, Height: 841.9}},
	}

	report, err := Inspect(renderer, "a4.pdf", 2.0)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if report.Pages[0].WidthPx != 1191 {
		t.Errorf("Expected rounded width 1191, got %d", report.Pages[0].WidthPx)
	}
	if report.Pages[0].HeightPx != 1684 {
		t.Errorf("Expected rounded height 1684, got %d", report.Pages[0].HeightPx)
	}
}

func TestInspectEmptyDocument(t *testing.T) {
	renderer := &fakeRenderer{}

	_, err := Inspect(renderer, "empty.pdf", 2.0)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument, got: %v", err)
	}
}

func TestInspectOpenError(t *testing.T) {
	renderer := &fakeRenderer{
		err: &pdfrender.OpenError{Path: "broken.pdf", Err: errors.New("bad xref")},
	}

	_, err := Inspect(renderer, "broken.pdf", 2.0)

	var openErr *pdfrender.OpenError
	if !errors.As(err, &openErr) {
		t.Errorf("Expected an open error, got: %v", err)
	}
}
