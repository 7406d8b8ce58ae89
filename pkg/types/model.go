package types

import (
	"bytes"
	"encoding/json"
)

type Item struct {
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    string `json:"quantity"`
	Color       string `json:"color"`
	FabricType  string `json:"fabricType"`
}

type Order struct {
	OrderID      string `json:"orderId"`
	ClientName   string `json:"clientName"`
	DeliveryDate string `json:"deliveryDate"`
	Notes        string `json:"notes"`
	Items        []Item `json:"items"`
}

// Record is one spreadsheet row. Keys keeps the sheet's column order so the
// JSON object reads the same way as the header row.
type Record struct {
	Keys   []string
	Values map[string]any
}

func NewRecord(n int) Record {
	return Record{Keys: make([]string, 0, n), Values: make(map[string]any, n)}
}

func (r *Record) Set(k string, v any) {
	if _, ok := r.Values[k]; !ok {
		r.Keys = append(r.Keys, k)
	}
	r.Values[k] = v
}

func (r Record) Get(k string) (any, bool) {
	v, ok := r.Values[k]
	return v, ok
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.Values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PDFResult is the body of POST /extract/pdf.
type PDFResult struct {
	Orders  []Order `json:"orders"`
	RawText string  `json:"rawText"`
}

// ExcelResult is the body of POST /extract/excel.
type ExcelResult struct {
	Orders []Record `json:"orders"`
}
