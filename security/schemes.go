package security

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/oaskit/internal/jsonhelpers"
	"go.yaml.in/yaml/v4"
)

// Schemes is a named collection of security schemes, as found under
// components.securitySchemes.
type Schemes map[string]SecurityScheme

// Names returns the scheme names in lexicographic order.
func (s Schemes) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalJSON emits the collection with names in lexicographic order.
func (s Schemes) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s))
	for name, scheme := range s {
		m[name] = scheme
	}
	return jsonhelpers.MarshalObject(m)
}

// UnmarshalJSON decodes every entry. The first failing entry, in name order,
// aborts the decode and is named in the error.
func (s *Schemes) UnmarshalJSON(data []byte) error {
	obj, err := jsonhelpers.DecodeObject(data)
	if err != nil {
		return err
	}
	out := make(Schemes, len(obj))
	for _, name := range obj.Keys() {
		scheme, err := schemeCodec.Decode(obj[name])
		if err != nil {
			return fmt.Errorf("security scheme %q: %w", name, err)
		}
		out[name] = scheme
	}
	*s = out
	return nil
}

// UnmarshalYAML decodes every entry of a YAML mapping.
func (s *Schemes) UnmarshalYAML(node *yaml.Node) error {
	obj, err := yamlObject(node)
	if err != nil {
		return err
	}
	out := make(Schemes, len(obj))
	for _, name := range obj.Keys() {
		scheme, err := schemeCodec.Decode(obj[name])
		if err != nil {
			return fmt.Errorf("security scheme %q: %w", name, err)
		}
		out[name] = scheme
	}
	*s = out
	return nil
}
