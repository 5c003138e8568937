package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

// rawEntry is one listing item as the service sends it. The same shape covers
// constructs ("fields") and articles ("content").
type rawEntry struct {
	ID      json.RawMessage       `json:"id"`
	MongoID json.RawMessage       `json:"_id"`
	Title   string                `json:"title"`
	Content string                `json:"content"`
	Fields  map[string][]rawField `json:"fields"`
}

type rawField struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Placeholder string          `json:"placeholder"`
	ID          json.RawMessage `json:"id"`
}

func decodeCatalog(body []byte) ([]models.Entry, error) {
	var raw []rawEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	entries := make([]models.Entry, 0, len(raw))
	for i, r := range raw {
		entry, err := r.normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidCatalog, i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r rawEntry) normalize() (models.Entry, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return models.Entry{}, fmt.Errorf("missing title")
	}

	id := normalizeID(r.ID)
	if id == "" {
		id = normalizeID(r.MongoID)
	}

	entry := models.Entry{
		ID:      id,
		Title:   title,
		Content: r.Content,
	}

	if len(r.Fields) > 0 {
		entry.Schemas = make(map[models.Operation][]models.FieldSchema, len(r.Fields))
		for op, fields := range r.Fields {
			schema := make([]models.FieldSchema, 0, len(fields))
			for _, f := range fields {
				if f.Name == "" {
					return models.Entry{}, fmt.Errorf("operation %q: field without name", op)
				}
				schema = append(schema, models.FieldSchema{
					Type:        models.FieldType(f.Type).Normalize(),
					Name:        f.Name,
					Placeholder: f.Placeholder,
					ElementID:   normalizeID(f.ID),
				})
			}
			entry.Schemas[models.Operation(op)] = schema
		}
	}

	return entry, nil
}

// normalizeID accepts a number, a string or a {"$oid": "..."} object and
// returns its string form. Anything else yields "".
func normalizeID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}

	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(raw, &oid); err == nil {
		return oid.OID
	}

	return ""
}
