package ingest

import (
	"regexp"
	"strings"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

const (
	orderMarker = "Order ID:"
	tableHeader = "Product NameSizeQuantityColorFabric Type"
	notesMarker = "Additional Notes:"
)

// Each field runs from its label up to the next label the template can
// place after it, so a missing label only empties its own field.
var (
	reOrderID      = regexp.MustCompile(`(?s)Order ID:\s*(.*?)\s*(?:Client Name:|Delivery Date:|Product Name|Additional Notes:|\z)`)
	reClientName   = regexp.MustCompile(`(?s)Client Name:\s*(.*?)\s*(?:Delivery Date:|Product Name|Additional Notes:|\z)`)
	reDeliveryDate = regexp.MustCompile(`(?s)Delivery Date:\s*(.*?)\s*(?:Product Name|Additional Notes:|\z)`)
	reNotes        = regexp.MustCompile(`(?s)Additional Notes:\s*(.*?)\s*(?:Order ID:|\z)`)
	reTable        = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(tableHeader) + `(.*?)` + regexp.QuoteMeta(notesMarker))
)

// Options tunes order parsing. The zero value parses the concatenated table
// layout only.
type Options struct {
	// Extractor pulls text out of PDF bytes; nil means the built-in reader.
	Extractor TextExtractor
	// LineTables enables the one-row-per-line table fallback for blocks
	// without the concatenated header.
	LineTables bool
}

// ParseOrders segments extracted text into orders, one per "Order ID:" block.
// It never fails: anything it cannot find comes back empty.
func ParseOrders(text string, opts Options) []types.Order {
	blocks := SplitOrderBlocks(text)
	orders := make([]types.Order, 0, len(blocks))
	for _, b := range blocks {
		orders = append(orders, parseOrderBlock(b, opts))
	}
	return orders
}

// SplitOrderBlocks cuts text on the "Order ID:" marker. Text before the first
// marker is not an order; blocks with nothing after the marker are dropped.
func SplitOrderBlocks(text string) []string {
	parts := strings.Split(text, orderMarker)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "" {
			continue
		}
		blocks = append(blocks, strings.TrimSpace(orderMarker+p))
	}
	return blocks
}

func parseOrderBlock(block string, opts Options) types.Order {
	o := types.Order{
		OrderID:      firstGroup(reOrderID, block),
		ClientName:   firstGroup(reClientName, block),
		DeliveryDate: firstGroup(reDeliveryDate, block),
		Notes:        firstGroup(reNotes, block),
		Items:        []types.Item{},
	}
	if m := reTable.FindStringSubmatch(block); m != nil {
		o.Items = ParseItems(m[1])
	} else if opts.LineTables {
		o.Items = parseLineTable(block)
	}
	return o
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
