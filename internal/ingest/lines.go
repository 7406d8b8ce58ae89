package ingest

import (
	"regexp"
	"strings"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

const lineTableHeader = "productnamesizequantitycolorfabrictype"

var reWideGap = regexp.MustCompile(`\s{2,}|\t`)

// parseLineTable reads a table laid out one row per line, the way
// layout-preserving extractors emit it. Rows need five columns.
func parseLineTable(block string) []types.Item {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	header := -1
	for i, l := range lines {
		if strings.Contains(strings.ToLower(strings.Join(strings.Fields(l), "")), lineTableHeader) {
			header = i
			break
		}
	}
	items := []types.Item{}
	if header < 0 {
		return items
	}
	for _, row := range lines[header+1:] {
		if strings.HasPrefix(row, notesMarker) {
			break
		}
		cols := splitColumns(row)
		if len(cols) < 5 {
			continue
		}
		items = append(items, types.Item{
			ProductName: cols[0],
			Size:        cols[1],
			Quantity:    cols[2],
			Color:       cols[3],
			FabricType:  cols[4],
		})
	}
	return items
}

func splitColumns(row string) []string {
	var cols []string
	for _, c := range reWideGap.Split(row, -1) {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	if len(cols) < 5 {
		cols = strings.Fields(row)
	}
	return cols
}
