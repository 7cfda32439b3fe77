package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_MalformedPDF(t *testing.T) {
	svc := NewPDFService()
	garbage := []byte("this is not a pdf document at all")

	_, err := svc.ExtractText(bytes.NewReader(garbage), int64(len(garbage)))
	assert.ErrorIs(t, err, ErrDocumentRead)
}

func TestExtractBytes_Empty(t *testing.T) {
	svc := NewPDFService()
	_, err := svc.ExtractBytes(nil)
	assert.ErrorIs(t, err, ErrDocumentRead)
}

func TestExtractFile_Missing(t *testing.T) {
	svc := NewPDFService()
	_, err := svc.ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrDocumentRead)
}
