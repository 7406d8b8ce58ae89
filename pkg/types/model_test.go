package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_MarshalKeepsColumnOrder(t *testing.T) {
	r := NewRecord(3)
	r.Set("zeta", "last letter")
	r.Set("alpha", int64(3))
	r.Set("mid", nil)
	r.Set("alpha", 4.5)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"last letter","alpha":4.5,"mid":null}`, string(b))

	v, ok := r.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)
}

func TestExcelResult_EmptyOrders(t *testing.T) {
	b, err := json.Marshal(ExcelResult{Orders: []Record{NewRecord(0)}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"orders":[{}]}`, string(b))
}

func TestPDFResult_FieldNames(t *testing.T) {
	res := PDFResult{
		Orders: []Order{{
			OrderID: "PO-1",
			Items:   []Item{{ProductName: "Scarf", Size: "S01", Quantity: "3", Color: "Red", FabricType: "Silk"}},
		}},
		RawText: "Order ID: PO-1",
	}
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"orders": [{
			"orderId": "PO-1", "clientName": "", "deliveryDate": "", "notes": "",
			"items": [{"productName": "Scarf", "size": "S01", "quantity": "3", "color": "Red", "fabricType": "Silk"}]
		}],
		"rawText": "Order ID: PO-1"
	}`, string(b))
}
