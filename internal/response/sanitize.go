package response

import (
	"strings"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

// PDF builds the PDF response body. Nil slices become empty arrays and every
// string field is trimmed; rawText is returned verbatim.
func PDF(orders []types.Order, raw string) types.PDFResult {
	out := types.PDFResult{Orders: make([]types.Order, 0, len(orders)), RawText: raw}
	for _, o := range orders {
		out.Orders = append(out.Orders, sanitizeOrder(o))
	}
	return out
}

// Excel builds the Excel response body.
func Excel(records []types.Record) types.ExcelResult {
	out := types.ExcelResult{Orders: make([]types.Record, 0, len(records))}
	for _, r := range records {
		// a zero Record marshals as {} but Set would panic on it
		if r.Values == nil {
			r = types.NewRecord(0)
		}
		out.Orders = append(out.Orders, r)
	}
	return out
}

func sanitizeOrder(o types.Order) types.Order {
	o.OrderID = strings.TrimSpace(o.OrderID)
	o.ClientName = strings.TrimSpace(o.ClientName)
	o.DeliveryDate = strings.TrimSpace(o.DeliveryDate)
	o.Notes = strings.TrimSpace(o.Notes)
	items := make([]types.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, types.Item{
			ProductName: strings.TrimSpace(it.ProductName),
			Size:        strings.TrimSpace(it.Size),
			Quantity:    strings.TrimSpace(it.Quantity),
			Color:       strings.TrimSpace(it.Color),
			FabricType:  strings.TrimSpace(it.FabricType),
		})
	}
	o.Items = items
	return o
}
