package discriminator

import (
	"errors"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"github.com/erraggy/oaskit/oaserrors"
)

// Fields gives a variant decoder typed access to the object being decoded.
// Every failure is reported as a *oaserrors.FieldError naming the variant
// and the field.
type Fields struct {
	variant string
	obj     jsonhelpers.Object
}

// Variant returns the matched discriminator value.
func (f *Fields) Variant() string {
	return f.variant
}

// Has reports whether the field is present with a non-null value.
func (f *Fields) Has(name string) bool {
	return f.obj.Present(name)
}

// String decodes a required string field.
func (f *Fields) String(name string) (string, error) {
	s, present, err := f.obj.String(name)
	if err != nil {
		return "", f.Invalid(name, err.Error())
	}
	if !present {
		return "", f.Missing(name)
	}
	return s, nil
}

// OptionalString decodes an optional string field. It returns nil when the
// field is absent or null.
func (f *Fields) OptionalString(name string) (*string, error) {
	s, present, err := f.obj.String(name)
	if err != nil {
		return nil, f.Invalid(name, err.Error())
	}
	if !present {
		return nil, nil
	}
	return &s, nil
}

// Description decodes the common optional description field.
func (f *Fields) Description() (*string, error) {
	return f.OptionalString(DescriptionField)
}

// Decode decodes a required field into v, typically a type with its own
// UnmarshalJSON. Errors returned by that decoder are kept as the cause.
func (f *Fields) Decode(name string, v any) error {
	ok, err := f.obj.Decode(name, v)
	if err != nil {
		return f.wrap(name, err)
	}
	if !ok {
		return f.Missing(name)
	}
	return nil
}

// DecodeOptional decodes an optional field into v and reports whether it was
// present.
func (f *Fields) DecodeOptional(name string, v any) (bool, error) {
	ok, err := f.obj.Decode(name, v)
	if err != nil {
		return true, f.wrap(name, err)
	}
	return ok, nil
}

// Missing returns the error for an absent required field.
func (f *Fields) Missing(name string) error {
	return &oaserrors.FieldError{Variant: f.variant, Field: name, Missing: true}
}

// Invalid returns the error for a field with a value of the wrong shape.
func (f *Fields) Invalid(name, message string) error {
	return &oaserrors.FieldError{Variant: f.variant, Field: name, Message: message}
}

func (f *Fields) wrap(name string, err error) error {
	var fieldErr *oaserrors.FieldError
	if errors.As(err, &fieldErr) && fieldErr.Variant == f.variant && fieldErr.Field == name {
		return err
	}
	return &oaserrors.FieldError{Variant: f.variant, Field: name, Cause: err}
}
