package pdfrender

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestNewRendererUnknownBackend(t *testing.T) {
	_, err := NewRenderer("ghostscript")
	if err == nil {
		t.Fatal("Expected an error for an unknown backend")
	}
	if !strings.Contains(err.Error(), "ghostscript") {
		t.Errorf("Expected backend name in error, got: %v", err)
	}
}

func TestNewRendererDefaultsToFitz(t *testing.T) {
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("Expected default renderer, got error: %v", err)
	}
	defer r.Close()

	if _, ok := r.(*FitzRenderer); !ok {
		t.Errorf("Expected FitzRenderer for empty backend, got %T", r)
	}
}

func TestOpenErrorWraps(t *testing.T) {
	err := &OpenError{Path: "missing.pdf", Err: os.ErrNotExist}

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected OpenError to unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "missing.pdf") {
		t.Errorf("Expected path in error string, got: %v", err)
	}
}

func TestPageErrorIdentifiesPage(t *testing.T) {
	cause := errors.New("corrupt page object")
	err := &PageError{Path: "doc.pdf", Page: 4, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected PageError to unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "page 4") {
		t.Errorf("Expected page index in error string, got: %v", err)
	}
}
