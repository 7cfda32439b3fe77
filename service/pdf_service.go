package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrDocumentRead marks a document that could not be parsed (malformed or
// encrypted PDF). Callers surface it to the user, they do not retry.
var ErrDocumentRead = errors.New("could not read document")

// PDFService extracts plain text from policy documents. There is no
// caching, every call re-extracts from scratch.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractText extracts text page by page in document order and joins the
// pages with newlines. Pages that are null, fail extraction, or contain
// only whitespace are skipped. A PDF with no extractable text yields "".
func (s *PDFService) ExtractText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// ExtractBytes extracts text from an in-memory PDF, e.g. a transient upload
// that is never persisted.
func (s *PDFService) ExtractBytes(data []byte) (string, error) {
	return s.ExtractText(bytes.NewReader(data), int64(len(data)))
}

// ExtractFile extracts text from a PDF on disk.
func (s *PDFService) ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	return s.ExtractText(f, info.Size())
}
