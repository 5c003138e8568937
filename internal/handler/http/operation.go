package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/utils"
	"github.com/MKhiriev/go-crypto-catalog/internal/validators"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

// maxOperationBody caps a submission body.
const maxOperationBody = 1 << 20

func (h *Handler) executeOperation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category, ok := models.CategoryFromSlug(chi.URLParam(r, "category"))
	if !ok {
		writeError(w, service.ErrUnknownCategory)
		return
	}

	values, err := decodeFormValues(http.MaxBytesReader(w, r.Body, maxOperationBody))
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.executeOperation").Msg("invalid operation body")
		writeError(w, err)
		return
	}

	echo, err := h.services.CatalogService.Execute(r.Context(), category,
		chi.URLParam(r, "entry"), chi.URLParam(r, "operation"), values)

	// the execution service reports invalid input inside a 200 envelope
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		if _, err = utils.WriteServiceError(w, fieldErr.Error()); err != nil {
			log.Err(err).Str("func", "*Handler.executeOperation").Msg("error writing response")
		}
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.executeOperation").Str("path", r.URL.Path).Msg("error executing operation")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, echo, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.executeOperation").Msg("error writing response")
	}
}

// decodeFormValues reads a JSON object of field values. Non-string scalars
// are kept in their JSON text form; an empty body is an empty form.
func decodeFormValues(body io.Reader) (models.FormValues, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return models.FormValues{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	values := make(models.FormValues, len(raw))
	for name, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			values[name] = s
			continue
		}

		var scalar any
		if err := json.Unmarshal(v, &scalar); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidRequestBody, name, err)
		}
		switch scalar.(type) {
		case nil:
			values[name] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: field %q is not a scalar", ErrInvalidRequestBody, name)
		default:
			values[name] = string(v)
		}
	}
	return values, nil
}
