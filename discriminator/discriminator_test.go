package discriminator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"github.com/erraggy/oaskit/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape is a small closed variant set used to exercise the codec.
type shape interface{ isShape() }

type circle struct {
	Radius      float64
	Description *string
}

type rect struct {
	Width, Height float64
	Label         *string
	Description   *string
}

func (circle) isShape() {}
func (rect) isShape()   {}

func decodeNumber(f *Fields, name string) (float64, error) {
	var n float64
	if err := f.Decode(name, &n); err != nil {
		return 0, err
	}
	return n, nil
}

var shapeCodec = New([]Variant[shape]{
	{
		Name:     "circle",
		Required: []string{"radius"},
		Decode: func(f *Fields) (shape, error) {
			r, err := decodeNumber(f, "radius")
			if err != nil {
				return nil, err
			}
			if r < 0 {
				return nil, f.Invalid("radius", "must not be negative")
			}
			desc, err := f.Description()
			if err != nil {
				return nil, err
			}
			return circle{Radius: r, Description: desc}, nil
		},
	},
	{
		Name:     "rect",
		Required: []string{"width", "height"},
		Optional: []string{"label"},
		Decode: func(f *Fields) (shape, error) {
			w, err := decodeNumber(f, "width")
			if err != nil {
				return nil, err
			}
			h, err := decodeNumber(f, "height")
			if err != nil {
				return nil, err
			}
			label, err := f.OptionalString("label")
			if err != nil {
				return nil, err
			}
			desc, err := f.Description()
			if err != nil {
				return nil, err
			}
			return rect{Width: w, Height: h, Label: label, Description: desc}, nil
		},
	},
})

func encodeShape(s shape) ([]byte, error) {
	switch v := s.(type) {
	case circle:
		fields := map[string]any{"radius": v.Radius}
		jsonhelpers.SetIfNotNil(fields, DescriptionField, v.Description)
		return shapeCodec.Encode("circle", fields)
	case rect:
		fields := map[string]any{"width": v.Width, "height": v.Height}
		jsonhelpers.SetIfNotNil(fields, "label", v.Label)
		jsonhelpers.SetIfNotNil(fields, DescriptionField, v.Description)
		return shapeCodec.Encode("rect", fields)
	default:
		panic("unreachable")
	}
}

func strPtr(s string) *string { return &s }

func TestCodecDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected shape
	}{
		{
			name:     "circle",
			input:    `{"type":"circle","radius":2}`,
			expected: circle{Radius: 2},
		},
		{
			name:     "circle with description",
			input:    `{"description":"round","radius":2,"type":"circle"}`,
			expected: circle{Radius: 2, Description: strPtr("round")},
		},
		{
			name:     "rect with optional label",
			input:    `{"type":"rect","width":3,"height":4,"label":"box"}`,
			expected: rect{Width: 3, Height: 4, Label: strPtr("box")},
		},
		{
			name:     "unknown keys are ignored",
			input:    `{"type":"circle","radius":1,"x-color":"red","color":"blue"}`,
			expected: circle{Radius: 1},
		},
		{
			name:     "null optional is absent",
			input:    `{"type":"rect","width":1,"height":1,"label":null}`,
			expected: rect{Width: 1, Height: 1},
		},
		{
			name:     "empty description is present",
			input:    `{"type":"circle","radius":1,"description":""}`,
			expected: circle{Radius: 1, Description: strPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shapeCodec.Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCodecDecodeErrors(t *testing.T) {
	t.Run("missing discriminator", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"radius":1}`))
		var mdErr *oaserrors.MissingDiscriminatorError
		require.True(t, errors.As(err, &mdErr), "expected MissingDiscriminatorError, got %v", err)
		assert.Equal(t, "type", mdErr.Key)
		assert.False(t, mdErr.Present)
	})

	for _, input := range []string{`{"type":1}`, `{"type":null}`, `{"type":{"name":"circle"}}`} {
		t.Run("non-string discriminator "+input, func(t *testing.T) {
			_, err := shapeCodec.Decode([]byte(input))
			var mdErr *oaserrors.MissingDiscriminatorError
			require.True(t, errors.As(err, &mdErr), "expected MissingDiscriminatorError, got %v", err)
			assert.True(t, mdErr.Present)
		})
	}

	t.Run("unknown variant", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"triangle","radius":1}`))
		var uvErr *oaserrors.UnknownVariantError
		require.True(t, errors.As(err, &uvErr), "expected UnknownVariantError, got %v", err)
		assert.Equal(t, "triangle", uvErr.Value)
		assert.Equal(t, []string{"circle", "rect"}, uvErr.Known)
	})

	t.Run("discriminator is case sensitive", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"Circle","radius":1}`))
		assert.ErrorIs(t, err, oaserrors.ErrUnknownVariant)
	})

	t.Run("first missing required field is reported", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"rect"}`))
		var fieldErr *oaserrors.FieldError
		require.True(t, errors.As(err, &fieldErr), "expected FieldError, got %v", err)
		assert.Equal(t, "rect", fieldErr.Variant)
		assert.Equal(t, "width", fieldErr.Field)
		assert.True(t, fieldErr.Missing)
	})

	t.Run("null required field is missing", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"circle","radius":null}`))
		var fieldErr *oaserrors.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "radius", fieldErr.Field)
		assert.True(t, fieldErr.Missing)
	})

	t.Run("malformed required field", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"circle","radius":"big"}`))
		var fieldErr *oaserrors.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "radius", fieldErr.Field)
		assert.False(t, fieldErr.Missing)
		assert.Error(t, fieldErr.Cause)
	})

	t.Run("malformed optional field", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"rect","width":1,"height":1,"label":7}`))
		var fieldErr *oaserrors.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "label", fieldErr.Field)
	})

	t.Run("malformed description", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"circle","radius":1,"description":false}`))
		var fieldErr *oaserrors.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "circle", fieldErr.Variant)
		assert.Equal(t, DescriptionField, fieldErr.Field)
	})

	t.Run("decoder validation error", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":"circle","radius":-1}`))
		var fieldErr *oaserrors.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "must not be negative", fieldErr.Message)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`["circle"]`))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.ErrorIs(t, err, jsonhelpers.ErrNotObject)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := shapeCodec.Decode([]byte(`{"type":`))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("no partial value on failure", func(t *testing.T) {
		got, err := shapeCodec.Decode([]byte(`{"type":"rect","width":1}`))
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCodecEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    shape
		expected string
	}{
		{
			name:     "circle",
			value:    circle{Radius: 2},
			expected: `{"radius":2,"type":"circle"}`,
		},
		{
			name:     "rect with all fields",
			value:    rect{Width: 1, Height: 2, Label: strPtr("box"), Description: strPtr("d")},
			expected: `{"description":"d","height":2,"label":"box","type":"rect","width":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encodeShape(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
			assert.NotContains(t, string(data), "null", "absent optionals must not be emitted as null")

			back, err := shapeCodec.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestCodecFlattenDoesNotModifyInput(t *testing.T) {
	fields := map[string]any{"radius": 1}
	out := shapeCodec.Flatten("circle", fields)
	assert.Equal(t, "circle", out["type"])
	assert.NotContains(t, fields, "type")
}

func TestCodecOptions(t *testing.T) {
	codec := New([]Variant[string]{
		{
			Name:     "ping",
			Required: []string{"seq"},
			Decode: func(f *Fields) (string, error) {
				var seq json.Number
				if err := f.Decode("seq", &seq); err != nil {
					return "", err
				}
				return f.Variant() + ":" + seq.String(), nil
			},
		},
	}, WithKey("kind"), WithCommonFields("note", "x-trace"))

	assert.Equal(t, "kind", codec.Key())

	got, err := codec.Decode([]byte(`{"kind":"ping","seq":3}`))
	require.NoError(t, err)
	assert.Equal(t, "ping:3", got)

	_, err = codec.Decode([]byte(`{"type":"ping","seq":3}`))
	assert.ErrorIs(t, err, oaserrors.ErrMissingDiscriminator)

	infos := codec.Variants()
	require.Len(t, infos, 1)
	assert.Equal(t, []string{"note", "x-trace"}, infos[0].Optional)

	data, err := codec.Encode("ping", map[string]any{"seq": 3})
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"ping","seq":3}`, string(data))
}

func TestCodecVariants(t *testing.T) {
	assert.Equal(t, []string{"circle", "rect"}, shapeCodec.Names())

	infos := shapeCodec.Variants()
	require.Len(t, infos, 2)
	assert.Equal(t, VariantInfo{Name: "circle", Required: []string{"radius"}, Optional: []string{"description"}}, infos[0])
	assert.Equal(t, VariantInfo{Name: "rect", Required: []string{"width", "height"}, Optional: []string{"label", "description"}}, infos[1])

	// Returned slices are copies.
	infos[0].Required[0] = "changed"
	assert.Equal(t, "radius", shapeCodec.Variants()[0].Required[0])
}

func TestNewPanics(t *testing.T) {
	noop := func(*Fields) (int, error) { return 0, nil }

	assert.Panics(t, func() {
		New([]Variant[int]{{Name: "a", Decode: noop}, {Name: "a", Decode: noop}})
	}, "duplicate names should panic")
	assert.Panics(t, func() {
		New([]Variant[int]{{Name: "", Decode: noop}})
	}, "empty name should panic")
	assert.Panics(t, func() {
		New([]Variant[int]{{Name: "a"}})
	}, "missing decoder should panic")
}
