package security

import (
	"fmt"
	"net/url"
	"slices"
)

// Type is the discriminator value of a security scheme.
type Type string

var _ fmt.Stringer = (*Type)(nil)

func (t Type) String() string {
	return string(t)
}

const (
	TypeAPIKey        Type = "apiKey"
	TypeHTTP          Type = "http"
	TypeOAuth2        Type = "oauth2"
	TypeOpenIDConnect Type = "openIdConnect"
)

// Types returns the supported security scheme types.
func Types() []Type {
	return []Type{TypeAPIKey, TypeHTTP, TypeOAuth2, TypeOpenIDConnect}
}

// Location is where an API key is carried.
type Location string

var _ fmt.Stringer = (*Location)(nil)

func (l Location) String() string {
	return string(l)
}

const (
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
)

// Locations returns the valid API key locations.
func Locations() []Location {
	return []Location{LocationQuery, LocationHeader, LocationCookie}
}

// ParseLocation validates an API key location. Matching is case sensitive.
func ParseLocation(s string) (Location, error) {
	l := Location(s)
	if !slices.Contains(Locations(), l) {
		return "", fmt.Errorf("must be one of query, header, cookie, got %q", s)
	}
	return l, nil
}

// Kind is the variant payload of a SecurityScheme. The set of kinds is
// closed: APIKey, HTTP, OAuth2 and OpenIDConnect.
type Kind interface {
	// Type returns the discriminator value of the kind.
	Type() Type
	isKind()
}

// APIKey authenticates with a key carried in a query parameter, header or cookie.
type APIKey struct {
	// Name is the name of the header, query or cookie parameter.
	Name string
	// In is the location of the API key.
	In Location
}

// HTTP authenticates with an HTTP Authorization scheme.
type HTTP struct {
	// Scheme is the name of the HTTP Authorization scheme (e.g., "basic", "bearer").
	Scheme string
	// BearerFormat hints how a bearer token is formatted (e.g., "JWT").
	BearerFormat *string
}

// OAuth2 authenticates with one or more OAuth 2.0 flows.
type OAuth2 struct {
	Flows OAuthFlows
}

// OpenIDConnect authenticates through OpenID Connect discovery.
type OpenIDConnect struct {
	// URL locates the OpenID Connect discovery document.
	URL url.URL
}

func (APIKey) Type() Type        { return TypeAPIKey }
func (HTTP) Type() Type          { return TypeHTTP }
func (OAuth2) Type() Type        { return TypeOAuth2 }
func (OpenIDConnect) Type() Type { return TypeOpenIDConnect }

func (APIKey) isKind()        {}
func (HTTP) isKind()          {}
func (OAuth2) isKind()        {}
func (OpenIDConnect) isKind() {}

// SecurityScheme defines a security scheme that can be used by operations.
// The zero value holds no kind and is only useful as a decode target.
type SecurityScheme struct {
	kind        Kind
	description *string
}

// Option configures the fields shared by every kind.
type Option func(*SecurityScheme)

// WithDescription sets the scheme description.
func WithDescription(description string) Option {
	return func(s *SecurityScheme) {
		s.description = &description
	}
}

// New builds a security scheme of the given kind.
// It panics when kind is nil.
func New(kind Kind, opts ...Option) SecurityScheme {
	if kind == nil {
		panic("security: New called with nil kind")
	}
	s := SecurityScheme{kind: normalize(kind)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewAPIKey builds an apiKey scheme.
func NewAPIKey(name string, in Location, opts ...Option) SecurityScheme {
	return New(APIKey{Name: name, In: in}, opts...)
}

// NewHTTP builds an http scheme. bearerFormat may be nil.
func NewHTTP(scheme string, bearerFormat *string, opts ...Option) SecurityScheme {
	return New(HTTP{Scheme: scheme, BearerFormat: bearerFormat}, opts...)
}

// NewOAuth2 builds an oauth2 scheme.
func NewOAuth2(flows OAuthFlows, opts ...Option) SecurityScheme {
	return New(OAuth2{Flows: flows}, opts...)
}

// NewOpenIDConnect builds an openIdConnect scheme.
func NewOpenIDConnect(u url.URL, opts ...Option) SecurityScheme {
	return New(OpenIDConnect{URL: u}, opts...)
}

// normalize copies the optional parts of a kind so the scheme does not share
// them with the caller.
func normalize(kind Kind) Kind {
	switch k := kind.(type) {
	case APIKey:
		return k
	case HTTP:
		if k.BearerFormat != nil {
			f := *k.BearerFormat
			k.BearerFormat = &f
		}
		return k
	case OAuth2:
		k.Flows = k.Flows.clone()
		return k
	case OpenIDConnect:
		return k
	default:
		panic(fmt.Sprintf("security: unhandled kind %T", kind))
	}
}

// Kind returns the variant payload. Type-switch on it to reach the fields.
func (s SecurityScheme) Kind() Kind {
	if s.kind == nil {
		return nil
	}
	return normalize(s.kind)
}

// Type returns the discriminator value, or "" for the zero value.
func (s SecurityScheme) Type() Type {
	if s.kind == nil {
		return ""
	}
	return s.kind.Type()
}

// IsZero reports whether s holds no kind.
func (s SecurityScheme) IsZero() bool {
	return s.kind == nil
}

// Description returns the description and whether it is set.
func (s SecurityScheme) Description() (string, bool) {
	if s.description == nil {
		return "", false
	}
	return *s.description, true
}

// APIKey returns the apiKey payload when s is an apiKey scheme.
func (s SecurityScheme) APIKey() (APIKey, bool) {
	k, ok := s.kind.(APIKey)
	return k, ok
}

// HTTP returns the http payload when s is an http scheme.
func (s SecurityScheme) HTTP() (HTTP, bool) {
	k, ok := s.kind.(HTTP)
	if ok {
		k = normalize(k).(HTTP)
	}
	return k, ok
}

// OAuth2 returns the oauth2 payload when s is an oauth2 scheme.
func (s SecurityScheme) OAuth2() (OAuth2, bool) {
	k, ok := s.kind.(OAuth2)
	if ok {
		k = normalize(k).(OAuth2)
	}
	return k, ok
}

// OpenIDConnect returns the openIdConnect payload when s is an openIdConnect scheme.
func (s SecurityScheme) OpenIDConnect() (OpenIDConnect, bool) {
	k, ok := s.kind.(OpenIDConnect)
	return k, ok
}

// String returns a short human-readable form, e.g. "apiKey(header X-API-Key)".
func (s SecurityScheme) String() string {
	switch k := s.kind.(type) {
	case nil:
		return "<empty>"
	case APIKey:
		return fmt.Sprintf("apiKey(%s %s)", k.In, k.Name)
	case HTTP:
		if k.BearerFormat != nil {
			return fmt.Sprintf("http(%s, %s)", k.Scheme, *k.BearerFormat)
		}
		return fmt.Sprintf("http(%s)", k.Scheme)
	case OAuth2:
		return fmt.Sprintf("oauth2(%v)", k.Flows.Names())
	case OpenIDConnect:
		return fmt.Sprintf("openIdConnect(%s)", k.URL.String())
	default:
		panic(fmt.Sprintf("security: unhandled kind %T", k))
	}
}
