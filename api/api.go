// Package api embeds the OpenAPI contract of the HTTP service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded contract.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSwagger publishes doc as JSON under swag's default name so that
// echo-swagger can serve it. Only the first call registers.
func RegisterSwagger(doc *openapi3.T) error {
	registerOnce.Do(func() {
		raw, err := doc.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("marshal openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return registerErr
}
