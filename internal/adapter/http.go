package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/config"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/utils"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

type httpServiceAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServiceAdapter constructs an HTTP/JSON implementation of
// [ServiceAdapter] rooted at adapterCfg.BaseURL(). Deadlines come from the
// caller's context; adapterCfg.RequestTimeout only bounds the underlying
// connection as a fallback.
func NewHTTPServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) ServiceAdapter {
	client := utils.NewHTTPClient(adapterCfg.BaseURL(), adapterCfg.RequestTimeout)
	client.SetHeader("Content-Type", "application/json")

	return &httpServiceAdapter{client: client, logger: logger}
}

// ListEntries implements [ServiceAdapter]. It GETs /{category}/ and
// normalises the listing.
func (h *httpServiceAdapter) ListEntries(ctx context.Context, c models.Category) ([]models.Entry, error) {
	path := models.CatalogPath(c)

	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, mapTransportError("list entries request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list entries %s: %w", path, err)
	}

	entries, err := decodeCatalog(resp.Body())
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("category", c.Slug()).
		Int("entries", len(entries)).
		Msg("catalog listing received")

	return entries, nil
}

// Execute implements [ServiceAdapter]. It POSTs the form values as a flat JSON
// object and returns the decoded result. The request id travels in the
// X-Request-ID header.
func (h *httpServiceAdapter) Execute(ctx context.Context, req models.OperationRequest) (models.OperationResult, error) {
	path := req.Path()

	values := req.Values
	if values == nil {
		values = models.FormValues{}
	}

	r := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string(values))
	if req.RequestID != "" {
		r.SetHeader(utils.RequestIDHeader, req.RequestID)
	}

	resp, err := r.Post(path)
	if err != nil {
		return models.OperationResult{}, mapTransportError("execute request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OperationResult{}, fmt.Errorf("execute %s: %w", path, err)
	}

	result, err := models.DecodeResult(resp.Body())
	if err != nil {
		return models.OperationResult{}, fmt.Errorf("decode execute response: %w", err)
	}

	if msg, ok := serviceErrorMessage(result); ok {
		h.logger.Debug().
			Str("request_id", req.RequestID).
			Str("path", path).
			Str("message", msg).
			Msg("service rejected operation input")
		return models.OperationResult{}, &ServiceError{Message: msg}
	}

	h.logger.Debug().
		Str("request_id", req.RequestID).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("operation executed")

	return result, nil
}

// serviceErrorMessage recognises the {"Error": "..."} envelope: an object
// whose only key is "Error".
func serviceErrorMessage(result models.OperationResult) (string, bool) {
	if result.Kind != models.ResultObject || len(result.Fields) != 1 {
		return "", false
	}

	f := result.Fields[0]
	if f.Key != "Error" || !f.Value.IsScalar() {
		return "", false
	}

	return f.Value.String(), true
}
