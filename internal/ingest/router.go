package ingest

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

const (
	KindPDF     = "pdf"
	KindExcel   = "excel"
	KindUnknown = "unknown"
)

var (
	ErrNotPDF             = errors.New("not a readable pdf")
	ErrUnreadableWorkbook = errors.New("unreadable workbook")
	ErrEmptyWorkbook      = errors.New("workbook has no sheets")
)

func DetectType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return KindPDF
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return KindExcel
	default:
		return KindUnknown
	}
}

// ParsedFile is the outcome of parsing one upload. Notes carry soft failures
// (pages that could not be decoded and the like) that did not stop the parse.
type ParsedFile struct {
	Name    string
	Kind    string
	Orders  []types.Order
	Records []types.Record
	RawText string
	Pages   int
	Notes   []string
}
