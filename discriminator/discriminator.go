// Package discriminator decodes and encodes JSON objects whose shape is
// selected by a string discriminator field living alongside the data fields:
//
//	{"type": "apiKey", "name": "X-API-Key", "in": "header"}
//
// A [Codec] is built once from a static table of [Variant] entries. Decoding
// reads the discriminator, picks the matching variant, checks that every
// required field is present and hands the object to the variant's decoder
// through [Fields]. Decoding either returns a fully built value or one of the
// structured errors from package oaserrors, never a partial value.
//
// Encoding is the mirror image: the caller provides the variant name and the
// fields that are present, and [Codec.Encode] emits a flat object with the
// discriminator added. Keys are emitted in lexicographic order.
package discriminator

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"github.com/erraggy/oaskit/oaserrors"
)

// DefaultKey is the discriminator key used unless WithKey is given.
const DefaultKey = "type"

// DescriptionField is the common optional field registered by default on
// every variant.
const DescriptionField = "description"

// Variant describes one case of a closed variant set.
type Variant[T any] struct {
	// Name is the discriminator value selecting this variant.
	Name string
	// Required lists fields that must be present (checked in order).
	Required []string
	// Optional lists variant-specific optional fields.
	Optional []string
	// Decode builds the value from the object's fields.
	Decode func(f *Fields) (T, error)
}

// VariantInfo is the read-only field table of a registered variant.
type VariantInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Required []string `json:"required" yaml:"required"`
	Optional []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Option configures a Codec.
type Option func(*config)

type config struct {
	key    string
	common []string
}

// WithKey sets the discriminator key (default "type").
func WithKey(key string) Option {
	return func(c *config) {
		c.key = key
	}
}

// WithCommonFields replaces the optional fields shared by every variant
// (default: "description").
func WithCommonFields(fields ...string) Option {
	return func(c *config) {
		c.common = fields
	}
}

// Codec decodes and encodes one closed variant set. It is immutable after
// construction and safe for concurrent use.
type Codec[T any] struct {
	key      string
	common   []string
	order    []string
	variants map[string]Variant[T]
}

// New builds a Codec from a static variant table.
// It panics when a variant has no name or decoder, or when a name is
// registered twice, since those are programming errors in the table itself.
func New[T any](variants []Variant[T], opts ...Option) *Codec[T] {
	cfg := config{key: DefaultKey, common: []string{DescriptionField}}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Codec[T]{
		key:      cfg.key,
		common:   slices.Clone(cfg.common),
		order:    make([]string, 0, len(variants)),
		variants: make(map[string]Variant[T], len(variants)),
	}
	for _, v := range variants {
		if v.Name == "" {
			panic("discriminator: variant with empty name")
		}
		if v.Decode == nil {
			panic(fmt.Sprintf("discriminator: variant %q has no decoder", v.Name))
		}
		if _, dup := c.variants[v.Name]; dup {
			panic(fmt.Sprintf("discriminator: duplicate variant %q", v.Name))
		}
		c.variants[v.Name] = v
		c.order = append(c.order, v.Name)
	}
	return c
}

// Key returns the discriminator key.
func (c *Codec[T]) Key() string {
	return c.key
}

// Names returns the registered discriminator values in registration order.
func (c *Codec[T]) Names() []string {
	return slices.Clone(c.order)
}

// Variants returns the field tables of all variants in registration order.
// Common fields are listed after each variant's own optional fields.
func (c *Codec[T]) Variants() []VariantInfo {
	infos := make([]VariantInfo, 0, len(c.order))
	for _, name := range c.order {
		v := c.variants[name]
		optional := slices.Clone(v.Optional)
		for _, f := range c.common {
			if !slices.Contains(optional, f) {
				optional = append(optional, f)
			}
		}
		infos = append(infos, VariantInfo{
			Name:     v.Name,
			Required: slices.Clone(v.Required),
			Optional: optional,
		})
	}
	return infos
}

// Decode decodes a JSON object into exactly one variant.
func (c *Codec[T]) Decode(data []byte) (T, error) {
	obj, err := jsonhelpers.DecodeObject(data)
	if err != nil {
		var zero T
		if errors.Is(err, jsonhelpers.ErrNotObject) {
			return zero, &oaserrors.ParseError{Message: "expected object with " + c.key + " field", Cause: err}
		}
		return zero, &oaserrors.ParseError{Cause: err}
	}
	return c.DecodeObject(obj)
}

// DecodeObject decodes an already-split JSON object into exactly one variant.
// Unknown keys are ignored.
func (c *Codec[T]) DecodeObject(obj jsonhelpers.Object) (T, error) {
	var zero T

	if !obj.Has(c.key) {
		return zero, &oaserrors.MissingDiscriminatorError{Key: c.key}
	}
	name, present, err := obj.String(c.key)
	if err != nil || !present {
		return zero, &oaserrors.MissingDiscriminatorError{Key: c.key, Present: true}
	}

	v, ok := c.variants[name]
	if !ok {
		return zero, &oaserrors.UnknownVariantError{Key: c.key, Value: name, Known: c.Names()}
	}

	for _, field := range v.Required {
		if !obj.Present(field) {
			return zero, &oaserrors.FieldError{Variant: name, Field: field, Missing: true}
		}
	}

	value, err := v.Decode(&Fields{variant: name, obj: obj})
	if err != nil {
		return zero, err
	}
	return value, nil
}

// Flatten returns a flat object holding the discriminator and the given
// fields. The fields map is not modified.
func (c *Codec[T]) Flatten(variant string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	maps.Copy(out, fields)
	out[c.key] = variant
	return out
}

// Encode marshals the flattened object for variant. Only the fields passed
// in are emitted; callers leave absent optional fields out of the map.
func (c *Codec[T]) Encode(variant string, fields map[string]any) ([]byte, error) {
	return jsonhelpers.MarshalObject(c.Flatten(variant, fields))
}
