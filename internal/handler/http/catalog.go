// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/utils"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

// entryResponse is one listing item in the shape the client decodes:
// constructs carry "fields", articles carry "content".
type entryResponse struct {
	ID      json.Number                `json:"id"`
	Title   string                     `json:"title"`
	Content string                     `json:"content,omitempty"`
	Fields  map[string][]fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	ID          string `json:"id,omitempty"`
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category, ok := models.CategoryFromSlug(chi.URLParam(r, "category"))
	if !ok {
		writeError(w, service.ErrUnknownCategory)
		return
	}

	entries, err := h.services.CatalogService.ListEntries(r.Context(), category)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Str("category", category.Slug()).Msg("error listing entries")
		writeError(w, err)
		return
	}

	response := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, newEntryResponse(e))
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("error writing response")
	}
}

func newEntryResponse(e models.Entry) entryResponse {
	resp := entryResponse{
		ID:      json.Number(e.ID),
		Title:   e.Title,
		Content: e.Content,
	}
	if len(e.Schemas) == 0 {
		return resp
	}

	resp.Fields = make(map[string][]fieldResponse, len(e.Schemas))
	for op, fields := range e.Schemas {
		out := make([]fieldResponse, 0, len(fields))
		for _, f := range fields {
			out = append(out, fieldResponse{
				Type:        string(f.Type),
				Name:        f.Name,
				Placeholder: f.Placeholder,
				ID:          f.ElementID,
			})
		}
		resp.Fields[string(op)] = out
	}
	return resp
}
