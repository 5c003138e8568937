// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// FieldType is the input kind the service declares for a form field.
type FieldType string

// Known input kinds. Anything else is rendered as [FieldText].
const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldPassword FieldType = "password"
	FieldTextarea FieldType = "textarea"
)

// Normalize maps unknown or differently-cased kinds onto the supported set.
func (t FieldType) Normalize() FieldType {
	switch FieldType(strings.ToLower(strings.TrimSpace(string(t)))) {
	case FieldNumber:
		return FieldNumber
	case FieldPassword:
		return FieldPassword
	case FieldTextarea:
		return FieldTextarea
	default:
		return FieldText
	}
}

// FieldSchema describes one input control of an operation form. The order
// of schemas in a slice is the display order.
type FieldSchema struct {
	// Type is the declared input kind.
	Type FieldType `json:"type"`

	// Name is the key the value is submitted under. Unique within a form.
	Name string `json:"name"`

	// Placeholder is the hint shown in an empty input.
	Placeholder string `json:"placeholder"`

	// ElementID is the optional element id the service attaches to the field.
	ElementID string `json:"id,omitempty"`
}

// Label returns the text shown next to the input.
func (f FieldSchema) Label() string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	return f.Name
}
