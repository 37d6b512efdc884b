package security

import (
	"fmt"
	"net/url"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"github.com/erraggy/oaskit/oaserrors"
)

const (
	fieldAuthorizationURL = "authorizationUrl"
	fieldTokenURL         = "tokenUrl"
	fieldRefreshURL       = "refreshUrl"
	fieldScopes           = "scopes"
)

// flowRule is the field table of one flow kind.
type flowRule struct {
	authorizationURL bool
	tokenURL         bool
}

var flowRules = map[FlowKind]flowRule{
	FlowImplicit:          {authorizationURL: true},
	FlowPassword:          {tokenURL: true},
	FlowClientCredentials: {tokenURL: true},
	FlowAuthorizationCode: {authorizationURL: true, tokenURL: true},
}

// flowFields holds the decoded fields of any flow kind before they are
// copied into the kind's own type.
type flowFields struct {
	authorizationURL url.URL
	tokenURL         url.URL
	refreshURL       *url.URL
	scopes           Scopes
}

func decodeFlow(kind FlowKind, obj jsonhelpers.Object) (flowFields, error) {
	rule := flowRules[kind]
	var out flowFields

	required := make([]string, 0, 3)
	if rule.authorizationURL {
		required = append(required, fieldAuthorizationURL)
	}
	if rule.tokenURL {
		required = append(required, fieldTokenURL)
	}
	required = append(required, fieldScopes)
	for _, field := range required {
		if !obj.Present(field) {
			return flowFields{}, &oaserrors.FlowError{Flow: string(kind), Field: field, Missing: true}
		}
	}

	if rule.authorizationURL {
		u, err := flowURL(kind, obj, fieldAuthorizationURL)
		if err != nil {
			return flowFields{}, err
		}
		out.authorizationURL = *u
	}
	if rule.tokenURL {
		u, err := flowURL(kind, obj, fieldTokenURL)
		if err != nil {
			return flowFields{}, err
		}
		out.tokenURL = *u
	}
	if obj.Present(fieldRefreshURL) {
		u, err := flowURL(kind, obj, fieldRefreshURL)
		if err != nil {
			return flowFields{}, err
		}
		out.refreshURL = u
	}

	scopes, _, err := obj.StringMap(fieldScopes)
	if err != nil {
		return flowFields{}, &oaserrors.FlowError{Flow: string(kind), Field: fieldScopes, Message: err.Error()}
	}
	out.scopes = scopes
	return out, nil
}

func flowURL(kind FlowKind, obj jsonhelpers.Object, field string) (*url.URL, error) {
	s, _, err := obj.String(field)
	if err != nil {
		return nil, &oaserrors.FlowError{Flow: string(kind), Field: field, Message: err.Error()}
	}
	u, err := parseURL(s)
	if err != nil {
		return nil, &oaserrors.FlowError{Flow: string(kind), Field: field, Cause: err}
	}
	return u, nil
}

// parseURL parses a URL field value. Empty strings are rejected.
func parseURL(s string) (*url.URL, error) {
	if s == "" {
		return nil, fmt.Errorf("URL must not be empty")
	}
	return url.Parse(s)
}

func flowObject(authorizationURL, tokenURL, refreshURL *url.URL, scopes Scopes) map[string]any {
	m := make(map[string]any, 4)
	if authorizationURL != nil {
		m[fieldAuthorizationURL] = authorizationURL.String()
	}
	if tokenURL != nil {
		m[fieldTokenURL] = tokenURL.String()
	}
	if refreshURL != nil {
		m[fieldRefreshURL] = refreshURL.String()
	}
	if scopes == nil {
		scopes = Scopes{}
	}
	m[fieldScopes] = map[string]string(scopes)
	return m
}

func (f *ImplicitFlow) object() map[string]any {
	return flowObject(&f.AuthorizationURL, nil, f.RefreshURL, f.Scopes)
}

func (f *PasswordFlow) object() map[string]any {
	return flowObject(nil, &f.TokenURL, f.RefreshURL, f.Scopes)
}

func (f *ClientCredentialsFlow) object() map[string]any {
	return flowObject(nil, &f.TokenURL, f.RefreshURL, f.Scopes)
}

func (f *AuthorizationCodeFlow) object() map[string]any {
	return flowObject(&f.AuthorizationURL, &f.TokenURL, f.RefreshURL, f.Scopes)
}

// object returns the wire form of the flow set: one member per present flow.
func (f OAuthFlows) object() map[string]any {
	m := make(map[string]any, 4)
	if f.Implicit != nil {
		m[string(FlowImplicit)] = f.Implicit.object()
	}
	if f.Password != nil {
		m[string(FlowPassword)] = f.Password.object()
	}
	if f.ClientCredentials != nil {
		m[string(FlowClientCredentials)] = f.ClientCredentials.object()
	}
	if f.AuthorizationCode != nil {
		m[string(FlowAuthorizationCode)] = f.AuthorizationCode.object()
	}
	return m
}

// MarshalJSON emits only the present flows. Every flow carries its scopes,
// as an empty object when there are none.
func (f OAuthFlows) MarshalJSON() ([]byte, error) {
	return jsonhelpers.MarshalObject(f.object())
}

// UnmarshalJSON decodes a flow set. Absent and null flow keys mean the flow
// is not offered; unknown keys are ignored.
func (f *OAuthFlows) UnmarshalJSON(data []byte) error {
	obj, err := jsonhelpers.DecodeObject(data)
	if err != nil {
		return err
	}
	flows, err := decodeFlows(obj)
	if err != nil {
		return err
	}
	*f = flows
	return nil
}

func decodeFlows(obj jsonhelpers.Object) (OAuthFlows, error) {
	var out OAuthFlows
	for _, kind := range FlowKinds() {
		if !obj.Present(string(kind)) {
			continue
		}
		flowObj, err := jsonhelpers.DecodeObject(obj[string(kind)])
		if err != nil {
			return OAuthFlows{}, &oaserrors.FlowError{Flow: string(kind), Message: "expected object, got " + jsonhelpers.Kind(obj[string(kind)])}
		}
		fields, err := decodeFlow(kind, flowObj)
		if err != nil {
			return OAuthFlows{}, err
		}
		switch kind {
		case FlowImplicit:
			out.Implicit = &ImplicitFlow{
				AuthorizationURL: fields.authorizationURL,
				RefreshURL:       fields.refreshURL,
				Scopes:           fields.scopes,
			}
		case FlowPassword:
			out.Password = &PasswordFlow{
				TokenURL:   fields.tokenURL,
				RefreshURL: fields.refreshURL,
				Scopes:     fields.scopes,
			}
		case FlowClientCredentials:
			out.ClientCredentials = &ClientCredentialsFlow{
				TokenURL:   fields.tokenURL,
				RefreshURL: fields.refreshURL,
				Scopes:     fields.scopes,
			}
		case FlowAuthorizationCode:
			out.AuthorizationCode = &AuthorizationCodeFlow{
				AuthorizationURL: fields.authorizationURL,
				TokenURL:         fields.tokenURL,
				RefreshURL:       fields.refreshURL,
				Scopes:           fields.scopes,
			}
		}
	}
	return out, nil
}
