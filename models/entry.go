// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Entry is one named construct within a category (e.g. "RSA", "ECDSA").
//
// The same type carries both catalog variants: operation entries have
// Schemas and no Content, article entries have Content and no Schemas.
type Entry struct {
	// ID is the service-side identifier, normalised to a string.
	ID string

	// Title is the human-readable name and the source of the entry slug.
	Title string

	// Content is the article body. Empty for operation entries.
	Content string

	// Schemas maps an operation onto its ordered form fields.
	Schemas map[Operation][]FieldSchema
}

// Slug returns the URL path segment of the entry.
func (e Entry) Slug() string {
	return Slugify(e.Title)
}

// Fields returns the ordered schema for op, or an empty slice when the entry
// does not declare it.
func (e Entry) Fields(op Operation) []FieldSchema {
	fields, ok := e.Schemas[op]
	if !ok {
		return []FieldSchema{}
	}
	out := make([]FieldSchema, len(fields))
	copy(out, fields)
	return out
}

// Operations returns the operations the entry declares: the category's
// canonical ones first, then any extra operations in name order.
func (e Entry) Operations(c Category) []Operation {
	ops := make([]Operation, 0, len(e.Schemas))
	seen := make(map[Operation]bool, len(e.Schemas))
	for _, op := range c.Operations() {
		if _, ok := e.Schemas[op]; ok {
			ops = append(ops, op)
			seen[op] = true
		}
	}

	extra := make([]Operation, 0)
	for op := range e.Schemas {
		if !seen[op] {
			extra = append(extra, op)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ops, extra...)
}
