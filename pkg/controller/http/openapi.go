package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/m-mizutani/ekshello/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed openapi.yaml
var openapiYAML []byte

// openAPIDocument serves the API description rendered once at startup
type openAPIDocument struct {
	body []byte
}

func loadOpenAPI(ctx context.Context) (*openAPIDocument, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load OpenAPI document")
	}
	doc.Info.Version = types.Version

	if err := doc.Validate(ctx); err != nil {
		return nil, goerr.Wrap(err, "invalid OpenAPI document")
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode OpenAPI document")
	}

	return &openAPIDocument{body: body}, nil
}

// Handle handles OpenAPI document requests
func (d *openAPIDocument) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, json.RawMessage(d.body))
}
