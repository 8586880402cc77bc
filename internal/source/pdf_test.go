package source_test

import (
	"testing"

	"acsim/internal/source"
)

func TestPDFToTextInvalidBytes(t *testing.T) {
	if _, err := source.PDFToText([]byte("claramente não é um pdf")); err == nil {
		t.Error("bytes inválidos deveriam resolver em erro")
	}
}

func TestPDFToTextEmpty(t *testing.T) {
	if _, err := source.PDFToText(nil); err == nil {
		t.Error("entrada vazia deveria resolver em erro")
	}
}
