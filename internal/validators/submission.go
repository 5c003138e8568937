package validators

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

// SubmissionValidator requires every declared field to be non-blank and
// number fields to hold an integer of any size.
type SubmissionValidator struct {
}

func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *models.Submission:
		if value == nil {
			return fmt.Errorf("%w: nil submission", ErrUnsupportedType)
		}
		return v.validateSubmission(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateSubmission walks the schema in display order so the reported field
// is the first one the user sees.
func (v *SubmissionValidator) validateSubmission(_ context.Context, s models.Submission, fields ...string) error {
	schema, err := scopeFields(s.Fields, fields)
	if err != nil {
		return err
	}

	for _, f := range schema {
		value := strings.TrimSpace(s.Values.Get(f.Name))
		if value == "" {
			return &FieldError{Field: f.Name, Placeholder: f.Placeholder, Err: ErrNullValue}
		}

		if f.Type.Normalize() == models.FieldNumber {
			if _, ok := new(big.Int).SetString(value, 10); !ok {
				return &FieldError{Field: f.Name, Placeholder: f.Placeholder, Err: ErrNotInteger}
			}
		}
	}

	return nil
}

func scopeFields(schema []models.FieldSchema, names []string) ([]models.FieldSchema, error) {
	if len(names) == 0 {
		return schema, nil
	}

	byName := make(map[string]models.FieldSchema, len(schema))
	for _, f := range schema {
		byName[f.Name] = f
	}

	scoped := make([]models.FieldSchema, 0, len(names))
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		scoped = append(scoped, f)
	}
	return scoped, nil
}
