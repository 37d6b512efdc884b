// Package report builds the summary views of security schemes and URL
// templates shared by the oaskit command and the MCP server.
package report

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/erraggy/oaskit/security"
	"github.com/erraggy/oaskit/urltemplate"
	"github.com/yosida95/uritemplate/v3"
)

// SchemeView is the flattened summary of one security scheme.
type SchemeView struct {
	Name             string          `json:"name,omitempty" yaml:"name,omitempty"`
	Type             string          `json:"type" yaml:"type"`
	Label            string          `json:"label" yaml:"label"`
	Summary          string          `json:"summary" yaml:"summary"`
	Description      string          `json:"description,omitempty" yaml:"description,omitempty"`
	In               string          `json:"in,omitempty" yaml:"in,omitempty"`
	KeyName          string          `json:"key_name,omitempty" yaml:"key_name,omitempty"`
	Scheme           string          `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat     string          `json:"bearer_format,omitempty" yaml:"bearer_format,omitempty"`
	OpenIDConnectURL string          `json:"openid_connect_url,omitempty" yaml:"openid_connect_url,omitempty"`
	Flows            []FlowView      `json:"flows,omitempty" yaml:"flows,omitempty"`
	Scopes           []string        `json:"scopes,omitempty" yaml:"scopes,omitempty"`
	Canonical        json.RawMessage `json:"canonical" yaml:"-"`
}

// FlowView summarizes one OAuth flow.
type FlowView struct {
	Kind             string   `json:"kind" yaml:"kind"`
	AuthorizationURL string   `json:"authorization_url,omitempty" yaml:"authorization_url,omitempty"`
	TokenURL         string   `json:"token_url,omitempty" yaml:"token_url,omitempty"`
	RefreshURL       string   `json:"refresh_url,omitempty" yaml:"refresh_url,omitempty"`
	Scopes           []string `json:"scopes" yaml:"scopes"`
}

// Scheme builds the view of s. name may be empty for a standalone scheme.
func Scheme(name string, s security.SecurityScheme) (SchemeView, error) {
	canonical, err := s.MarshalJSON()
	if err != nil {
		return SchemeView{}, err
	}
	v := SchemeView{
		Name:      name,
		Type:      string(s.Type()),
		Label:     Label(string(s.Type())),
		Summary:   s.String(),
		Canonical: canonical,
	}
	if desc, ok := s.Description(); ok {
		v.Description = desc
	}

	switch k := s.Kind().(type) {
	case security.APIKey:
		v.In = k.In.String()
		v.KeyName = k.Name
	case security.HTTP:
		v.Scheme = k.Scheme
		if k.BearerFormat != nil {
			v.BearerFormat = *k.BearerFormat
		}
	case security.OAuth2:
		v.Flows = flowViews(k.Flows)
		v.Scopes = k.Flows.AllScopes()
	case security.OpenIDConnect:
		v.OpenIDConnectURL = k.URL.String()
	default:
		panic(fmt.Sprintf("report: unhandled kind %T", k))
	}
	return v, nil
}

// Schemes builds the views of a named collection in name order.
func Schemes(schemes security.Schemes) ([]SchemeView, error) {
	views := make([]SchemeView, 0, len(schemes))
	for _, name := range schemes.Names() {
		v, err := Scheme(name, schemes[name])
		if err != nil {
			return nil, fmt.Errorf("security scheme %q: %w", name, err)
		}
		views = append(views, v)
	}
	return views, nil
}

func flowViews(flows security.OAuthFlows) []FlowView {
	var views []FlowView
	if f := flows.Implicit; f != nil {
		views = append(views, FlowView{
			Kind:             string(security.FlowImplicit),
			AuthorizationURL: f.AuthorizationURL.String(),
			RefreshURL:       urlString(f.RefreshURL),
			Scopes:           f.Scopes.Names(),
		})
	}
	if f := flows.Password; f != nil {
		views = append(views, FlowView{
			Kind:       string(security.FlowPassword),
			TokenURL:   f.TokenURL.String(),
			RefreshURL: urlString(f.RefreshURL),
			Scopes:     f.Scopes.Names(),
		})
	}
	if f := flows.ClientCredentials; f != nil {
		views = append(views, FlowView{
			Kind:       string(security.FlowClientCredentials),
			TokenURL:   f.TokenURL.String(),
			RefreshURL: urlString(f.RefreshURL),
			Scopes:     f.Scopes.Names(),
		})
	}
	if f := flows.AuthorizationCode; f != nil {
		views = append(views, FlowView{
			Kind:             string(security.FlowAuthorizationCode),
			AuthorizationURL: f.AuthorizationURL.String(),
			TokenURL:         f.TokenURL.String(),
			RefreshURL:       urlString(f.RefreshURL),
			Scopes:           f.Scopes.Names(),
		})
	}
	return views
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// TemplateView is the analysis of one URL template.
type TemplateView struct {
	Raw            string   `json:"raw" yaml:"raw"`
	HasVariables   bool     `json:"has_variables" yaml:"has_variables"`
	Variables      []string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Resolved       bool     `json:"resolved" yaml:"resolved"`
	URL            string   `json:"url,omitempty" yaml:"url,omitempty"`
	AbsoluteString string   `json:"absolute_string" yaml:"absolute_string"`
	Scheme         string   `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Host           string   `json:"host,omitempty" yaml:"host,omitempty"`
	RFC6570        bool     `json:"rfc6570" yaml:"rfc6570"`
	RFC6570Error   string   `json:"rfc6570_error,omitempty" yaml:"rfc6570_error,omitempty"`
}

// Template analyzes raw as a URL template. The RFC 6570 check is
// informational: a Template is valid whatever its outcome.
func Template(raw string) TemplateView {
	t := urltemplate.New(raw)
	v := TemplateView{
		Raw:            t.Raw(),
		HasVariables:   t.HasVariables(),
		Variables:      t.Variables(),
		AbsoluteString: t.AbsoluteString(),
	}
	if u := t.URL(); u != nil {
		v.Resolved = true
		v.URL = u.String()
		v.Scheme = u.Scheme
		v.Host = u.Host
	}
	if _, err := uritemplate.New(raw); err != nil {
		v.RFC6570Error = err.Error()
	} else {
		v.RFC6570 = true
	}
	return v
}

// KindView is the field table of one security scheme kind.
type KindView struct {
	Type     string   `json:"type" yaml:"type"`
	Label    string   `json:"label" yaml:"label"`
	Required []string `json:"required" yaml:"required"`
	Optional []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Kinds returns the field tables of all security scheme kinds.
func Kinds() []KindView {
	infos := security.Variants()
	views := make([]KindView, 0, len(infos))
	for _, info := range infos {
		views = append(views, KindView{
			Type:     info.Name,
			Label:    Label(info.Name),
			Required: info.Required,
			Optional: info.Optional,
		})
	}
	return views
}

// FieldLabels returns the display labels of fields, joined with ", ".
func FieldLabels(fields []string) string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = Label(f)
	}
	return strings.Join(labels, ", ")
}
