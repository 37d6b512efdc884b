package security

import (
	"maps"
	"net/url"
	"slices"
)

// FlowKind names one OAuth 2.0 grant type within an OAuthFlows set.
type FlowKind string

func (k FlowKind) String() string {
	return string(k)
}

const (
	FlowImplicit          FlowKind = "implicit"
	FlowPassword          FlowKind = "password"
	FlowClientCredentials FlowKind = "clientCredentials"
	FlowAuthorizationCode FlowKind = "authorizationCode"
)

// FlowKinds returns the four flow kinds in canonical order.
func FlowKinds() []FlowKind {
	return []FlowKind{FlowImplicit, FlowPassword, FlowClientCredentials, FlowAuthorizationCode}
}

// Scopes maps scope names to short descriptions. An empty, non-nil map is a
// valid value: the flow offers no scopes.
type Scopes map[string]string

// Names returns the scope names in lexicographic order.
func (s Scopes) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// ImplicitFlow configures the OAuth implicit grant.
type ImplicitFlow struct {
	AuthorizationURL url.URL
	RefreshURL       *url.URL
	Scopes           Scopes
}

// PasswordFlow configures the OAuth resource owner password grant.
type PasswordFlow struct {
	TokenURL   url.URL
	RefreshURL *url.URL
	Scopes     Scopes
}

// ClientCredentialsFlow configures the OAuth client credentials grant.
type ClientCredentialsFlow struct {
	TokenURL   url.URL
	RefreshURL *url.URL
	Scopes     Scopes
}

// AuthorizationCodeFlow configures the OAuth authorization code grant.
type AuthorizationCodeFlow struct {
	AuthorizationURL url.URL
	TokenURL         url.URL
	RefreshURL       *url.URL
	Scopes           Scopes
}

// OAuthFlows is the set of flows an oauth2 scheme offers. Every flow is
// optional and any subset, including none, is valid.
type OAuthFlows struct {
	Implicit          *ImplicitFlow
	Password          *PasswordFlow
	ClientCredentials *ClientCredentialsFlow
	AuthorizationCode *AuthorizationCodeFlow
}

// Names returns the kinds of the present flows in canonical order.
func (f OAuthFlows) Names() []FlowKind {
	var names []FlowKind
	if f.Implicit != nil {
		names = append(names, FlowImplicit)
	}
	if f.Password != nil {
		names = append(names, FlowPassword)
	}
	if f.ClientCredentials != nil {
		names = append(names, FlowClientCredentials)
	}
	if f.AuthorizationCode != nil {
		names = append(names, FlowAuthorizationCode)
	}
	return names
}

// IsEmpty reports whether no flow is present.
func (f OAuthFlows) IsEmpty() bool {
	return len(f.Names()) == 0
}

// AllScopes returns the union of scope names across every present flow, in
// lexicographic order.
func (f OAuthFlows) AllScopes() []string {
	seen := make(map[string]struct{})
	for _, scopes := range []Scopes{f.scopesOf(FlowImplicit), f.scopesOf(FlowPassword), f.scopesOf(FlowClientCredentials), f.scopesOf(FlowAuthorizationCode)} {
		for name := range scopes {
			seen[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (f OAuthFlows) scopesOf(kind FlowKind) Scopes {
	switch kind {
	case FlowImplicit:
		if f.Implicit != nil {
			return f.Implicit.Scopes
		}
	case FlowPassword:
		if f.Password != nil {
			return f.Password.Scopes
		}
	case FlowClientCredentials:
		if f.ClientCredentials != nil {
			return f.ClientCredentials.Scopes
		}
	case FlowAuthorizationCode:
		if f.AuthorizationCode != nil {
			return f.AuthorizationCode.Scopes
		}
	}
	return nil
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// clone deep-copies the flow set so a scheme never shares flows with its caller.
func (f OAuthFlows) clone() OAuthFlows {
	var out OAuthFlows
	if f.Implicit != nil {
		out.Implicit = &ImplicitFlow{
			AuthorizationURL: f.Implicit.AuthorizationURL,
			RefreshURL:       cloneURL(f.Implicit.RefreshURL),
			Scopes:           maps.Clone(f.Implicit.Scopes),
		}
	}
	if f.Password != nil {
		out.Password = &PasswordFlow{
			TokenURL:   f.Password.TokenURL,
			RefreshURL: cloneURL(f.Password.RefreshURL),
			Scopes:     maps.Clone(f.Password.Scopes),
		}
	}
	if f.ClientCredentials != nil {
		out.ClientCredentials = &ClientCredentialsFlow{
			TokenURL:   f.ClientCredentials.TokenURL,
			RefreshURL: cloneURL(f.ClientCredentials.RefreshURL),
			Scopes:     maps.Clone(f.ClientCredentials.Scopes),
		}
	}
	if f.AuthorizationCode != nil {
		out.AuthorizationCode = &AuthorizationCodeFlow{
			AuthorizationURL: f.AuthorizationCode.AuthorizationURL,
			TokenURL:         f.AuthorizationCode.TokenURL,
			RefreshURL:       cloneURL(f.AuthorizationCode.RefreshURL),
			Scopes:           maps.Clone(f.AuthorizationCode.Scopes),
		}
	}
	return out
}
