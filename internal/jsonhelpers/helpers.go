// Package jsonhelpers provides helper functions for the hand-written JSON
// codecs of oaskit values.
//
// Decoding splits an object into its raw members ([Object]) so that field
// presence can be checked before any value is decoded; encoding builds a
// plain map of the present fields and marshals it with [MarshalObject].
package jsonhelpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrNotObject is returned by DecodeObject when the input is valid JSON but
// not an object.
var ErrNotObject = errors.New("not a JSON object")

// Object is a JSON object split into its undecoded members.
type Object map[string]json.RawMessage

// DecodeObject splits data into its top-level members.
// A JSON null, array, string, number or boolean yields ErrNotObject.
// Syntax errors are returned unchanged from encoding/json.
func DecodeObject(data []byte) (Object, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			var v any
			return nil, json.Unmarshal(trimmed, &v)
		}
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, Kind(trimmed))
	}
	var obj Object
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// ObjectFromValue converts an already-decoded value (for example the result
// of decoding YAML into any) into an Object by round-tripping it through JSON.
func ObjectFromValue(v any) (Object, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return DecodeObject(data)
}

// Has reports whether key is present, including when its value is null.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Present reports whether key is present with a non-null value.
func (o Object) Present(key string) bool {
	raw, ok := o[key]
	return ok && !IsNull(raw)
}

// Keys returns the member names in lexicographic order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// String decodes the member at key as a string.
// present is false when the key is absent or null; err is non-nil when the
// member exists but is not a JSON string.
func (o Object) String(key string) (s string, present bool, err error) {
	raw, ok := o[key]
	if !ok || IsNull(raw) {
		return "", false, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, fmt.Errorf("expected string, got %s", Kind(raw))
	}
	return s, true, nil
}

// Decode decodes the member at key into v.
// It returns false without touching v when the key is absent or null.
func (o Object) Decode(key string, v any) (bool, error) {
	raw, ok := o[key]
	if !ok || IsNull(raw) {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// StringMap decodes the member at key as an object of string values.
// Every member must be a JSON string; null members are rejected.
// A present empty object yields a non-nil empty map.
func (o Object) StringMap(key string) (map[string]string, bool, error) {
	raw, ok := o[key]
	if !ok || IsNull(raw) {
		return nil, false, nil
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, true, fmt.Errorf("expected object of strings, got %s", Kind(raw))
	}
	m := make(map[string]string, len(members))
	for name, member := range members {
		if kind := Kind(member); kind != "string" {
			return nil, true, fmt.Errorf("value of %q: expected string, got %s", name, kind)
		}
		var s string
		if err := json.Unmarshal(member, &s); err != nil {
			return nil, true, fmt.Errorf("value of %q: %w", name, err)
		}
		m[name] = s
	}
	return m, true, nil
}

// IsNull reports whether raw is the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Kind names the JSON type of raw for error messages.
func Kind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty input"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// MarshalObject marshals m as a JSON object. Keys are emitted in
// lexicographic order and HTML characters are not escaped, so URLs with
// query strings are written as-is.
func MarshalObject(m map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalString marshals s as a JSON string without HTML escaping.
func MarshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SetIfNotNil sets a field in the map only if the pointer is not nil.
// Optional fields are modeled as pointers, so a nil pointer is an absent
// field and is never emitted as an explicit null.
func SetIfNotNil[T any](m map[string]any, key string, value *T) {
	if value != nil {
		m[key] = *value
	}
}
