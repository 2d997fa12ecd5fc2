package pdfrender

import "fmt"

// OpenError reports a document that could not be opened: missing file,
// unreadable file, or not a parseable PDF.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unable to open PDF document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// PageError reports a page that failed to rasterize. Page is the 0-based
// index within the document. A page failure aborts the whole conversion.
type PageError struct {
	Path string
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("unable to render page %d of %s: %v", e.Page, e.Path, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }
