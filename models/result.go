// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxResultDepth is the deepest nesting DecodeResult accepts.
const MaxResultDepth = 64

// ResultKind is the JSON shape of an [OperationResult] node.
type ResultKind int

const (
	ResultNull ResultKind = iota
	ResultString
	ResultNumber
	ResultBool
	ResultObject
	ResultArray
)

var (
	// ErrResultTooDeep is returned when a result nests deeper than MaxResultDepth.
	ErrResultTooDeep = errors.New("operation result nests too deep")

	// ErrInvalidResult is returned for bodies that are not a single JSON value.
	ErrInvalidResult = errors.New("operation result is not valid JSON")
)

// ResultField is one key of an object result, in document order.
type ResultField struct {
	Key   string
	Value OperationResult
}

// OperationResult is an arbitrary JSON value returned by the execution
// service. Unlike map[string]any it keeps object keys in the order the
// service wrote them.
type OperationResult struct {
	Kind ResultKind

	// Scalar holds the literal text of strings, numbers and booleans.
	// Numbers keep the representation the service sent.
	Scalar string

	Fields []ResultField
	Items  []OperationResult
}

// IsZero reports whether r is an empty (null) result.
func (r OperationResult) IsZero() bool {
	return r.Kind == ResultNull && r.Scalar == "" && len(r.Fields) == 0 && len(r.Items) == 0
}

// IsScalar reports whether r is a leaf.
func (r OperationResult) IsScalar() bool {
	return r.Kind != ResultObject && r.Kind != ResultArray
}

// Field returns the value stored under key for object results.
func (r OperationResult) Field(key string) (OperationResult, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return OperationResult{}, false
}

// String returns the leaf text of a scalar. Containers render as their
// compact JSON form.
func (r OperationResult) String() string {
	switch r.Kind {
	case ResultNull:
		return "null"
	case ResultString, ResultNumber, ResultBool:
		return r.Scalar
	default:
		b, err := json.Marshal(r)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// MarshalJSON writes r back out keeping field order.
func (r OperationResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r OperationResult) encode(buf *bytes.Buffer) error {
	switch r.Kind {
	case ResultNull:
		buf.WriteString("null")
	case ResultNumber, ResultBool:
		buf.WriteString(r.Scalar)
	case ResultString:
		b, err := json.Marshal(r.Scalar)
		if err != nil {
			return err
		}
		buf.Write(b)
	case ResultObject:
		buf.WriteByte('{')
		for i, f := range r.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err = f.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ResultArray:
		buf.WriteByte('[')
		for i, item := range r.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler via DecodeResult.
func (r *OperationResult) UnmarshalJSON(data []byte) error {
	res, err := DecodeResult(data)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// DecodeResult parses a service response body into an ordered tree.
func DecodeResult(data []byte) (OperationResult, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	res, err := decodeValue(dec, 0)
	if err != nil {
		return OperationResult{}, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return OperationResult{}, fmt.Errorf("%w: trailing data after value", ErrInvalidResult)
	}
	return res, nil
}

func decodeValue(dec *json.Decoder, depth int) (OperationResult, error) {
	if depth > MaxResultDepth {
		return OperationResult{}, ErrResultTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return OperationResult{}, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}

	switch v := tok.(type) {
	case nil:
		return OperationResult{Kind: ResultNull}, nil
	case string:
		return OperationResult{Kind: ResultString, Scalar: v}, nil
	case json.Number:
		return OperationResult{Kind: ResultNumber, Scalar: v.String()}, nil
	case bool:
		return OperationResult{Kind: ResultBool, Scalar: fmt.Sprint(v)}, nil
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec, depth)
		case '[':
			return decodeArray(dec, depth)
		}
	}
	return OperationResult{}, fmt.Errorf("%w: unexpected token %v", ErrInvalidResult, tok)
}

func decodeObject(dec *json.Decoder, depth int) (OperationResult, error) {
	res := OperationResult{Kind: ResultObject, Fields: []ResultField{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return OperationResult{}, fmt.Errorf("%w: %w", ErrInvalidResult, err)
		}
		key, ok := tok.(string)
		if !ok {
			return OperationResult{}, fmt.Errorf("%w: object key %v", ErrInvalidResult, tok)
		}

		val, err := decodeValue(dec, depth+1)
		if err != nil {
			return OperationResult{}, err
		}
		res.Fields = append(res.Fields, ResultField{Key: key, Value: val})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return OperationResult{}, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}
	return res, nil
}

func decodeArray(dec *json.Decoder, depth int) (OperationResult, error) {
	res := OperationResult{Kind: ResultArray, Items: []OperationResult{}}
	for dec.More() {
		val, err := decodeValue(dec, depth+1)
		if err != nil {
			return OperationResult{}, err
		}
		res.Items = append(res.Items, val)
	}

	if _, err := dec.Token(); err != nil {
		return OperationResult{}, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}
	return res, nil
}
