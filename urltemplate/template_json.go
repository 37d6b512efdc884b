package urltemplate

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"github.com/erraggy/oaskit/oaserrors"
	"go.yaml.in/yaml/v4"
)

const targetName = "urltemplate.Template"

// MarshalJSON emits the raw text as a JSON string. The encoding is the
// raw text exactly, except that invalid UTF-8 bytes become U+FFFD.
func (t Template) MarshalJSON() ([]byte, error) {
	return jsonhelpers.MarshalString(t.raw)
}

// UnmarshalJSON decodes a JSON string. Any other JSON value, null included,
// fails with *oaserrors.NotStringError and leaves t unchanged.
func (t *Template) UnmarshalJSON(data []byte) error {
	if kind := jsonhelpers.Kind(data); kind != "string" {
		return &oaserrors.NotStringError{Target: targetName, Cause: fmt.Errorf("expected string, got %s", kind)}
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &oaserrors.NotStringError{Target: targetName, Cause: err}
	}
	*t = New(raw)
	return nil
}

// MarshalText returns the raw text.
func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.raw), nil
}

// UnmarshalText builds the Template from text. It never fails.
func (t *Template) UnmarshalText(text []byte) error {
	*t = New(string(text))
	return nil
}

// MarshalYAML emits the raw text as a YAML string.
func (t Template) MarshalYAML() (any, error) {
	return t.raw, nil
}

// UnmarshalYAML decodes a YAML string scalar. Other nodes, including
// unquoted numbers and booleans, fail with *oaserrors.NotStringError.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return &oaserrors.NotStringError{
			Target: targetName,
			Cause:  &oaserrors.ParseError{Line: node.Line, Column: node.Column, Message: "expected string, got " + node.ShortTag()},
		}
	}
	*t = New(node.Value)
	return nil
}
