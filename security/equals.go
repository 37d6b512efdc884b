package security

// This file contains equality comparison for security scheme values.
//
// Comparison is structural: same kind, same fields, same description.
// Scopes compare as sets of name/description pairs, so a nil and an empty
// Scopes map are equal. URLs compare by their string form.

import (
	"fmt"

	"github.com/erraggy/oaskit/internal/equalutil"
)

// Equal reports whether s and other have the same kind and fields.
func (s SecurityScheme) Equal(other SecurityScheme) bool {
	if !equalutil.EqualPtr(s.description, other.description) {
		return false
	}
	return equalKind(s.kind, other.kind)
}

func equalKind(a, b Kind) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch ka := a.(type) {
	case APIKey:
		kb, ok := b.(APIKey)
		return ok && ka == kb
	case HTTP:
		kb, ok := b.(HTTP)
		return ok && ka.Scheme == kb.Scheme && equalutil.EqualPtr(ka.BearerFormat, kb.BearerFormat)
	case OAuth2:
		kb, ok := b.(OAuth2)
		return ok && ka.Flows.Equal(kb.Flows)
	case OpenIDConnect:
		kb, ok := b.(OpenIDConnect)
		return ok && equalutil.EqualURL(ka.URL, kb.URL)
	default:
		panic(fmt.Sprintf("security: unhandled kind %T", a))
	}
}

// Equal reports whether both flow sets offer the same flows with the same fields.
func (f OAuthFlows) Equal(other OAuthFlows) bool {
	return equalImplicit(f.Implicit, other.Implicit) &&
		equalPassword(f.Password, other.Password) &&
		equalClientCredentials(f.ClientCredentials, other.ClientCredentials) &&
		equalAuthorizationCode(f.AuthorizationCode, other.AuthorizationCode)
}

func equalImplicit(a, b *ImplicitFlow) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalutil.EqualURL(a.AuthorizationURL, b.AuthorizationURL) &&
		equalutil.EqualURLPtr(a.RefreshURL, b.RefreshURL) &&
		equalutil.EqualStringMap(a.Scopes, b.Scopes)
}

func equalPassword(a, b *PasswordFlow) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalutil.EqualURL(a.TokenURL, b.TokenURL) &&
		equalutil.EqualURLPtr(a.RefreshURL, b.RefreshURL) &&
		equalutil.EqualStringMap(a.Scopes, b.Scopes)
}

func equalClientCredentials(a, b *ClientCredentialsFlow) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalutil.EqualURL(a.TokenURL, b.TokenURL) &&
		equalutil.EqualURLPtr(a.RefreshURL, b.RefreshURL) &&
		equalutil.EqualStringMap(a.Scopes, b.Scopes)
}

func equalAuthorizationCode(a, b *AuthorizationCodeFlow) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalutil.EqualURL(a.AuthorizationURL, b.AuthorizationURL) &&
		equalutil.EqualURL(a.TokenURL, b.TokenURL) &&
		equalutil.EqualURLPtr(a.RefreshURL, b.RefreshURL) &&
		equalutil.EqualStringMap(a.Scopes, b.Scopes)
}
