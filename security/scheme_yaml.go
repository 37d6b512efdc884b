package security

import (
	"errors"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"github.com/erraggy/oaskit/oaserrors"
	"go.yaml.in/yaml/v4"
)

// yamlObject converts a YAML mapping node into a JSON object so YAML input
// goes through the same field tables as JSON input.
func yamlObject(node *yaml.Node) (jsonhelpers.Object, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, &oaserrors.ParseError{Line: node.Line, Column: node.Column, Cause: err}
	}
	obj, err := jsonhelpers.ObjectFromValue(v)
	if err != nil {
		msg := "expected mapping"
		if !errors.Is(err, jsonhelpers.ErrNotObject) {
			msg = "mapping cannot be represented as JSON"
		}
		return nil, &oaserrors.ParseError{Line: node.Line, Column: node.Column, Message: msg, Cause: err}
	}
	return obj, nil
}

// MarshalYAML returns the same flat object MarshalJSON emits.
func (s SecurityScheme) MarshalYAML() (any, error) {
	variant, fields, err := s.fields()
	if err != nil {
		return nil, err
	}
	return schemeCodec.Flatten(variant, fields), nil
}

// UnmarshalYAML decodes a security scheme from a YAML mapping.
func (s *SecurityScheme) UnmarshalYAML(node *yaml.Node) error {
	obj, err := yamlObject(node)
	if err != nil {
		return err
	}
	decoded, err := schemeCodec.DecodeObject(obj)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalYAML returns the same object MarshalJSON emits.
func (f OAuthFlows) MarshalYAML() (any, error) {
	return f.object(), nil
}

// UnmarshalYAML decodes a flow set from a YAML mapping.
func (f *OAuthFlows) UnmarshalYAML(node *yaml.Node) error {
	obj, err := yamlObject(node)
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
