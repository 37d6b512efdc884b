package urltemplate

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Template is an immutable URL that may contain {name} placeholders.
// The zero value is the empty template.
type Template struct {
	raw       string
	variables []string
	url       *url.URL
}

// New builds a Template from its raw text. It never fails: text that is not
// a URI is still a valid Template, just without a resolved URL.
// raw should be valid UTF-8; invalid bytes are replaced with U+FFFD when
// the Template is encoded as JSON.
func New(raw string) Template {
	t := Template{raw: raw, variables: scanVariables(raw)}
	if len(t.variables) == 0 {
		if u, err := parseStrict(raw); err == nil {
			t.url = u
		}
	}
	return t
}

// FromURL builds a Template from a concrete URL. The result never has
// variables, even when the URL's query or fragment contains braces.
// That classification is not kept on the wire: decoding the encoded form
// goes through New, which scans the raw text, so a URL such as
// https://a/?q={b} comes back with HasVariables reporting true.
// A nil URL yields the zero Template.
func FromURL(u *url.URL) Template {
	if u == nil {
		return Template{}
	}
	clone := *u
	return Template{raw: u.String(), url: &clone}
}

// Raw returns the text the Template was built from.
func (t Template) Raw() string {
	return t.raw
}

// String returns the raw text.
func (t Template) String() string {
	return t.raw
}

// IsZero reports whether t is the empty template.
func (t Template) IsZero() bool {
	return t.raw == "" && t.url == nil
}

// HasVariables reports whether the raw text contains at least one balanced
// {...} pair.
func (t Template) HasVariables() bool {
	return len(t.variables) > 0
}

// Variables returns the placeholder names in order of appearance.
// Repeated names are listed once.
func (t Template) Variables() []string {
	return slices.Clone(t.variables)
}

// URL returns a copy of the resolved URL, or nil when t has variables or its
// text is not a strict URI reference.
func (t Template) URL() *url.URL {
	if t.url == nil {
		return nil
	}
	u := *t.url
	return &u
}

// AbsoluteString returns the normalized form of the resolved URL, or the raw
// text unchanged when there is no resolved URL.
func (t Template) AbsoluteString() string {
	if t.url == nil {
		return t.raw
	}
	return t.url.String()
}

// Equal reports whether both templates have the same raw text.
func (t Template) Equal(other Template) bool {
	return t.raw == other.raw
}

// scanVariables returns the distinct names of all balanced {...} pairs.
// An empty pair "{}" counts as a variable with an empty name.
func scanVariables(raw string) []string {
	var names []string
	open := -1
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			open = i
		case '}':
			if open < 0 {
				continue
			}
			name := raw[open+1 : i]
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
			open = -1
		}
	}
	return names
}

// disallowed lists the printable ASCII characters that may not appear
// anywhere in an RFC 3986 URI reference.
const disallowed = "\"<>\\^`{|}"

// parseStrict parses raw as an RFC 3986 URI reference. url.Parse alone is
// lenient about spaces and other characters that must be percent-encoded.
func parseStrict(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty URI")
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c <= ' ' || c >= 0x7f:
			return nil, fmt.Errorf("invalid character %q at offset %d", c, i)
		case strings.IndexByte(disallowed, c) >= 0:
			return nil, fmt.Errorf("invalid character %q at offset %d", c, i)
		case c == '%':
			if i+2 >= len(raw) || !isHex(raw[i+1]) || !isHex(raw[i+2]) {
				return nil, fmt.Errorf("malformed percent escape at offset %d", i)
			}
			i += 2
		}
	}
	return url.Parse(raw)
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
