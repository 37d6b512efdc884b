// Package pointer provides helpers for the optional fields of oaskit values.
//
// Optional fields are modeled as pointers: nil means the field is absent,
// while a non-nil pointer to a zero value is a present, empty field.
package pointer

// From returns a pointer to a copy of v.
func From[T any](v T) *T {
	return &v
}

// ValueOrZero returns the pointed-to value, or the zero value when p is nil.
func ValueOrZero[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
