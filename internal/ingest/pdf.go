package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText is the plain text of a document, pages joined by "\n".
type PDFText struct {
	Text  string
	Pages int
	Notes []string
}

// TextExtractor lets the HTTP layer swap the PDF reader out in tests.
type TextExtractor interface {
	ExtractText(data []byte) (PDFText, error)
}

type pdfReader struct{}

func (pdfReader) ExtractText(data []byte) (PDFText, error) { return ExtractPDFText(data) }

// DefaultExtractor reads PDFs with github.com/ledongthuc/pdf.
var DefaultExtractor TextExtractor = pdfReader{}

// ExtractPDFText pulls the text of every page in page order. Bytes the reader
// cannot open fail with ErrNotPDF; a page that fails to decode contributes
// empty text and a note.
func ExtractPDFText(data []byte) (out PDFText, err error) {
	defer func() {
		// the reader panics on some malformed object graphs
		if r := recover(); r != nil {
			out, err = PDFText{}, fmt.Errorf("%w: %v", ErrNotPDF, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return PDFText{}, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	n := r.NumPage()
	pages := make([]string, 0, n)
	var notes []string
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			notes = append(notes, fmt.Sprintf("page %d: missing page object", i))
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			notes = append(notes, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		pages = append(pages, txt)
	}
	return PDFText{Text: strings.Join(pages, "\n"), Pages: n, Notes: notes}, nil
}

// ParsePDF extracts the text of a PDF upload and segments it into orders.
func ParsePDF(name string, data []byte, opts Options) (ParsedFile, error) {
	ex := opts.Extractor
	if ex == nil {
		ex = DefaultExtractor
	}
	txt, err := ex.ExtractText(data)
	if err != nil {
		return ParsedFile{Name: name, Kind: KindPDF}, err
	}
	return ParsedFile{
		Name:    name,
		Kind:    KindPDF,
		Orders:  ParseOrders(txt.Text, opts),
		RawText: txt.Text,
		Pages:   txt.Pages,
		Notes:   txt.Notes,
	}, nil
}
