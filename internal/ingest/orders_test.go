package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MalithGihan/order-extractor/pkg/types"
)

const twoOrders = `Order ID: PO-1001
Client Name: Acme Apparel
Delivery Date: 2024-08-01
Product NameSizeQuantityColorFabric TypeLeather JacketM0110BlackCowhideDenim JeansL0205BlueDenimAdditional Notes: Rush order, ship by air
Order ID: PO-1002
Client Name: Trendsetters LLC
Delivery Date: 2024-09-15
Product NameSizeQuantityColorFabric TypeJacketABC1210BlueDenimAdditional Notes:`

func TestParseOrders_TwoBlocks(t *testing.T) {
	orders := ParseOrders(twoOrders, Options{})
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "PO-1001", first.OrderID)
	assert.Equal(t, "Acme Apparel", first.ClientName)
	assert.Equal(t, "2024-08-01", first.DeliveryDate)
	assert.Equal(t, "Rush order, ship by air", first.Notes)
	assert.Equal(t, []types.Item{
		{ProductName: "Leather Jacket", Size: "M01", Quantity: "10", Color: "Black", FabricType: "Cowhide"},
		{ProductName: "Denim Jeans", Size: "L02", Quantity: "05", Color: "Blue", FabricType: "Denim"},
	}, first.Items)

	second := orders[1]
	assert.Equal(t, "PO-1002", second.OrderID)
	assert.Equal(t, "Trendsetters LLC", second.ClientName)
	assert.Equal(t, "2024-09-15", second.DeliveryDate)
	assert.Equal(t, "", second.Notes)
	assert.Equal(t, []types.Item{
		{ProductName: "Jacket", Size: "ABC12", Quantity: "10", Color: "Blue", FabricType: "Denim"},
	}, second.Items)
}

func TestParseOrders_CountMatchesBlocks(t *testing.T) {
	var b strings.Builder
	for _, id := range []string{"A1", "B2", "C3", "D4", "E5"} {
		b.WriteString("Order ID: " + id + "\nClient Name: Someone\n")
	}
	orders := ParseOrders(b.String(), Options{})
	require.Len(t, orders, 5)
	for i, id := range []string{"A1", "B2", "C3", "D4", "E5"} {
		assert.Equal(t, id, orders[i].OrderID)
	}
}

func TestParseOrders_MissingClientName(t *testing.T) {
	text := "Order ID: PO-7\nDelivery Date: 2024-10-01\nProduct NameSizeQuantityColorFabric TypeScarfS0103RedSilkAdditional Notes: gift wrap"
	orders := ParseOrders(text, Options{})
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "", o.ClientName)
	assert.Equal(t, "PO-7", o.OrderID)
	assert.Equal(t, "2024-10-01", o.DeliveryDate)
	assert.Equal(t, "gift wrap", o.Notes)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Scarf", o.Items[0].ProductName)
}

func TestParseOrders_NoMarker(t *testing.T) {
	for _, text := range []string{"", "   \n", "Quarterly catalogue, no orders here"} {
		orders := ParseOrders(text, Options{})
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	}
}

func TestParseOrders_MissingTableGivesNoItems(t *testing.T) {
	// header present but no "Additional Notes:" to close the region
	text := "Order ID: PO-9\nClient Name: X\nProduct NameSizeQuantityColorFabric TypeJacketABC1210BlueDenim"
	orders := ParseOrders(text, Options{})
	require.Len(t, orders, 1)
	assert.NotNil(t, orders[0].Items)
	assert.Empty(t, orders[0].Items)
}

func TestSplitOrderBlocks(t *testing.T) {
	text := "ACME Purchase Orders\nOrder ID: 1\nOrder ID:   \nOrder ID: 2  "
	assert.Equal(t, []string{"Order ID: 1", "Order ID: 2"}, SplitOrderBlocks(text))
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		name   string
		region string
		want   []types.Item
	}{
		{
			name:   "concatenated row",
			region: "JacketABC1210BlueDenim",
			want:   []types.Item{{ProductName: "Jacket", Size: "ABC12", Quantity: "10", Color: "Blue", FabricType: "Denim"}},
		},
		{
			name:   "spaced row",
			region: " Wool Sweater XL12 24 Grey Merino ",
			want:   []types.Item{{ProductName: "Wool Sweater", Size: "XL12", Quantity: "24", Color: "Grey", FabricType: "Merino"}},
		},
		{
			name:   "long size code keeps its digits when the short split does not parse",
			region: "Slim Jeans W3232 10 Blue Denim",
			want:   []types.Item{{ProductName: "Slim Jeans", Size: "W3232", Quantity: "10", Color: "Blue", FabricType: "Denim"}},
		},
		{
			name:   "unparseable tail is skipped",
			region: "HatXY99JacketABC1210BlueDenim",
			want:   []types.Item{{ProductName: "Jacket", Size: "ABC12", Quantity: "10", Color: "Blue", FabricType: "Denim"}},
		},
		{
			name:   "all caps spaced row",
			region: "Jacket M01 10 BLACK COWHIDE",
			want:   []types.Item{{ProductName: "Jacket", Size: "M01", Quantity: "10", Color: "BLACK", FabricType: "COWHIDE"}},
		},
		{
			name:   "lower case spaced row",
			region: "Scarf S01 3 red silk",
			want:   []types.Item{{ProductName: "Scarf", Size: "S01", Quantity: "3", Color: "red", FabricType: "silk"}},
		},
		{
			name:   "spaced words with a run-together next name",
			region: "Jacket M01 10 Black CowhideDenim Jeans L02 5 Blue Denim",
			want: []types.Item{
				{ProductName: "Jacket", Size: "M01", Quantity: "10", Color: "Black", FabricType: "Cowhide"},
				{ProductName: "Denim Jeans", Size: "L02", Quantity: "5", Color: "Blue", FabricType: "Denim"},
			},
		},
		{
			name:   "run-together lower case words cannot be split",
			region: "JacketM0110blackcowhide",
			want:   []types.Item{},
		},
		{
			name:   "no size code",
			region: "nothing tabular here",
			want:   []types.Item{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseItems(tt.region))
		})
	}
}

func TestParseOrders_LineTables(t *testing.T) {
	text := `Order ID: PO-55
Client Name: Cozy Comforts
Delivery Date: 2024-12-01
Product Name   Size   Quantity   Color   Fabric Type
Wool Sweater   M01    12         Grey    Merino
Cotton Tee     S02    30         White   Cotton
Additional Notes: none`

	off := ParseOrders(text, Options{})
	require.Len(t, off, 1)
	assert.Empty(t, off[0].Items)

	on := ParseOrders(text, Options{LineTables: true})
	require.Len(t, on, 1)
	assert.Equal(t, []types.Item{
		{ProductName: "Wool Sweater", Size: "M01", Quantity: "12", Color: "Grey", FabricType: "Merino"},
		{ProductName: "Cotton Tee", Size: "S02", Quantity: "30", Color: "White", FabricType: "Cotton"},
	}, on[0].Items)
	assert.Equal(t, "none", on[0].Notes)
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, KindPDF, DetectType("order.PDF"))
	assert.Equal(t, KindExcel, DetectType("orders.xlsx"))
	assert.Equal(t, KindExcel, DetectType("orders.xlsm"))
	assert.Equal(t, KindUnknown, DetectType("orders.csv"))
	assert.Equal(t, KindUnknown, DetectType("noext"))
}
