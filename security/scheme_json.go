package security

import (
	"errors"
	"fmt"

	"github.com/erraggy/oaskit/discriminator"
	"github.com/erraggy/oaskit/internal/jsonhelpers"
)

const (
	fieldName             = "name"
	fieldIn               = "in"
	fieldScheme           = "scheme"
	fieldBearerFormat     = "bearerFormat"
	fieldFlows            = "flows"
	fieldOpenIDConnectURL = "openIdConnectUrl"
)

// schemeCodec is the variant table of SecurityScheme.
var schemeCodec = discriminator.New([]discriminator.Variant[SecurityScheme]{
	{
		Name:     string(TypeAPIKey),
		Required: []string{fieldName, fieldIn},
		Decode:   decodeAPIKey,
	},
	{
		Name:     string(TypeHTTP),
		Required: []string{fieldScheme},
		Optional: []string{fieldBearerFormat},
		Decode:   decodeHTTP,
	},
	{
		Name:     string(TypeOAuth2),
		Required: []string{fieldFlows},
		Decode:   decodeOAuth2,
	},
	{
		Name:     string(TypeOpenIDConnect),
		Required: []string{fieldOpenIDConnectURL},
		Decode:   decodeOpenIDConnect,
	},
})

// Variants returns the field table of every security scheme kind.
func Variants() []discriminator.VariantInfo {
	return schemeCodec.Variants()
}

func withDescription(f *discriminator.Fields, kind Kind) (SecurityScheme, error) {
	desc, err := f.Description()
	if err != nil {
		return SecurityScheme{}, err
	}
	return SecurityScheme{kind: kind, description: desc}, nil
}

func decodeAPIKey(f *discriminator.Fields) (SecurityScheme, error) {
	name, err := f.String(fieldName)
	if err != nil {
		return SecurityScheme{}, err
	}
	in, err := f.String(fieldIn)
	if err != nil {
		return SecurityScheme{}, err
	}
	loc, err := ParseLocation(in)
	if err != nil {
		return SecurityScheme{}, f.Invalid(fieldIn, err.Error())
	}
	return withDescription(f, APIKey{Name: name, In: loc})
}

func decodeHTTP(f *discriminator.Fields) (SecurityScheme, error) {
	scheme, err := f.String(fieldScheme)
	if err != nil {
		return SecurityScheme{}, err
	}
	bearerFormat, err := f.OptionalString(fieldBearerFormat)
	if err != nil {
		return SecurityScheme{}, err
	}
	return withDescription(f, HTTP{Scheme: scheme, BearerFormat: bearerFormat})
}

func decodeOAuth2(f *discriminator.Fields) (SecurityScheme, error) {
	var flows OAuthFlows
	if err := f.Decode(fieldFlows, &flows); err != nil {
		return SecurityScheme{}, err
	}
	return withDescription(f, OAuth2{Flows: flows})
}

func decodeOpenIDConnect(f *discriminator.Fields) (SecurityScheme, error) {
	raw, err := f.String(fieldOpenIDConnectURL)
	if err != nil {
		return SecurityScheme{}, err
	}
	u, err := parseURL(raw)
	if err != nil {
		return SecurityScheme{}, f.Invalid(fieldOpenIDConnectURL, err.Error())
	}
	return withDescription(f, OpenIDConnect{URL: *u})
}

// errEmptyScheme is returned when encoding the zero SecurityScheme.
var errEmptyScheme = errors.New("security: cannot encode empty SecurityScheme")

// fields returns the discriminator value and the present fields of s.
func (s SecurityScheme) fields() (string, map[string]any, error) {
	m := make(map[string]any, 4)
	switch k := s.kind.(type) {
	case nil:
		return "", nil, errEmptyScheme
	case APIKey:
		m[fieldName] = k.Name
		m[fieldIn] = string(k.In)
	case HTTP:
		m[fieldScheme] = k.Scheme
		jsonhelpers.SetIfNotNil(m, fieldBearerFormat, k.BearerFormat)
	case OAuth2:
		m[fieldFlows] = k.Flows.object()
	case OpenIDConnect:
		m[fieldOpenIDConnectURL] = k.URL.String()
	default:
		panic(fmt.Sprintf("security: unhandled kind %T", k))
	}
	jsonhelpers.SetIfNotNil(m, discriminator.DescriptionField, s.description)
	return string(s.kind.Type()), m, nil
}

// MarshalJSON emits the flat wire object with keys in lexicographic order.
// Absent optional fields are omitted, never written as null.
func (s SecurityScheme) MarshalJSON() ([]byte, error) {
	variant, fields, err := s.fields()
	if err != nil {
		return nil, err
	}
	return schemeCodec.Encode(variant, fields)
}

// UnmarshalJSON decodes a security scheme. On failure s is left unchanged.
func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	decoded, err := schemeCodec.Decode(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// Parse decodes a single security scheme from JSON.
func Parse(data []byte) (SecurityScheme, error) {
	return schemeCodec.Decode(data)
}
