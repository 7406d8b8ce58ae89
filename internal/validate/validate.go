package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "file://schema/orders.schema.json"

//go:embed orders.schema.json
var ordersSchema []byte

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error
)

func load() {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(schemaURL, bytes.NewReader(ordersSchema)); err != nil {
		loadErr = err
		return
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		loadErr = err
		return
	}
	schema = s
}

// Schema returns the raw JSON Schema for the PDF extraction response.
func Schema() []byte {
	return ordersSchema
}

// ValidateDocument checks any JSON-marshalable value against the orders schema.
func ValidateDocument(doc any) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}
