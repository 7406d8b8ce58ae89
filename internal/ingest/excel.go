package ingest

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

// ReadWorkbook turns the first sheet of a workbook into records keyed by the
// header row. Values are what the reader infers: numbers, booleans, or the
// cell's formatted text. Cells a row does not reach are nil.
func ReadWorkbook(data []byte) ([]types.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadableWorkbook, sheet, err)
	}
	records := []types.Record{}
	if len(rows) == 0 {
		return records, nil
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	headers := normalizeHeaders(rows[0], width)

	for r, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec := types.NewRecord(len(headers))
		for c, h := range headers {
			if c >= len(row) || row[c] == "" {
				rec.Set(h, nil)
				continue
			}
			// rows[1:] starts at sheet row 2
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
			}
			rec.Set(h, cellValue(f, sheet, cell, row[c]))
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseExcel reads an Excel upload.
func ParseExcel(name string, data []byte) (ParsedFile, error) {
	recs, err := ReadWorkbook(data)
	if err != nil {
		return ParsedFile{Name: name, Kind: KindExcel}, err
	}
	return ParsedFile{Name: name, Kind: KindExcel, Records: recs}, nil
}

// normalizeHeaders names blank headers "Unnamed: <col>" and suffixes repeats
// with ".1", ".2", ...
func normalizeHeaders(row []string, width int) []string {
	out := make([]string, width)
	seen := make(map[string]int, width)
	for i := range out {
		h := ""
		if i < len(row) {
			h = row[i]
		}
		if strings.TrimSpace(h) == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			h = h + "." + strconv.Itoa(n+1)
		} else {
			seen[h] = 0
		}
		out[i] = h
	}
	return out
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellValue(f *excelize.File, sheet, cell, formatted string) any {
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return formatted
	}
	switch typ {
	case excelize.CellTypeBool:
		raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		if err != nil {
			return formatted
		}
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// formatted text that no longer reads as a number (dates, currency)
		// stays text
		if _, err := strconv.ParseFloat(formatted, 64); err != nil {
			return formatted
		}
		raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		if err != nil {
			return formatted
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return formatted
		}
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v)
		}
		return v
	default:
		return formatted
	}
}
