package models

// FormValues maps a field name onto the value typed by the user.
// Treat it as immutable: use With to derive an updated copy.
type FormValues map[string]string

// Get returns the value for name, or "" when unset.
func (v FormValues) Get(name string) string {
	return v[name]
}

// With returns a copy of v with name set to value.
func (v FormValues) With(name, value string) FormValues {
	out := make(FormValues, len(v)+1)
	for k, val := range v {
		out[k] = val
	}
	out[name] = value
	return out
}

// ForFields returns a mapping holding every declared field, missing values
// defaulting to "". Values for undeclared names are dropped.
func (v FormValues) ForFields(fields []FieldSchema) FormValues {
	out := make(FormValues, len(fields))
	for _, f := range fields {
		out[f.Name] = v.Get(f.Name)
	}
	return out
}
