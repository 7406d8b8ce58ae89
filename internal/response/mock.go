package response

import "github.com/MalithGihan/order-extractor/pkg/types"

// Mock is the canned result served in mock mode by every extraction route,
// whatever was uploaded.
func Mock() types.PDFResult {
	return types.PDFResult{
		Orders: []types.Order{{
			OrderID:      "MOCK123",
			ClientName:   "Test Customer",
			DeliveryDate: "2024-08-01",
			Notes:        "This is a mock order for testing.",
			Items: []types.Item{
				{ProductName: "Leather Jacket", Size: "M01", Quantity: "10", Color: "Black", FabricType: "Cowhide"},
				{ProductName: "Denim Jeans", Size: "L02", Quantity: "5", Color: "Blue", FabricType: "Denim"},
			},
		}},
		RawText: "MOCK ORDER DATA",
	}
}
