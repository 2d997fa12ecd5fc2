package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned for documents with zero pages (or episodes
// with zero blocks). An empty document never produces an output file.
var ErrEmptyDocument = errors.New("document has no pages")

// WriteError reports an output file that could not be written. No partial
// file is left behind.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write output image %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
