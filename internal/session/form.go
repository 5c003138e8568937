package session

import "github.com/MKhiriev/go-crypto-catalog/models"

// FieldsFor returns the ordered field schema of op on entry. An undeclared
// operation yields an empty slice, which renders as an empty form.
func FieldsFor(entry models.Entry, op models.Operation) []models.FieldSchema {
	if op == "" {
		return []models.FieldSchema{}
	}
	return entry.Fields(op)
}
