// Package docload reads security scheme documents in JSON or YAML for the
// command line and the MCP server.
package docload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/security"
	"go.yaml.in/yaml/v4"
)

// Format is the source format of a document.
type Format int

const (
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = iota
	// FormatJSON is a JSON document.
	FormatJSON
	// FormatYAML is a YAML document.
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses "json", "yaml" or "yml". An empty string yields
// FormatUnknown, which asks the decoders to detect the format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "":
		return FormatUnknown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown input format %q (expected json or yaml)", s)
	}
}

// DetectFormat picks the format from the file extension, then from the
// content: JSON documents start with '{' or '['; anything else is YAML.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// ErrTooLarge is returned by Read when the input exceeds the size limit.
var ErrTooLarge = errors.New("input too large")

// Read reads all of r, failing with ErrTooLarge when more than maxBytes are
// available. A non-positive maxBytes disables the limit.
func Read(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxBytes)
	}
	return data, nil
}

// DecodeScheme decodes a single security scheme. When format is
// FormatUnknown it is detected from the content.
func DecodeScheme(data []byte, format Format) (security.SecurityScheme, error) {
	var s security.SecurityScheme
	if err := decode(data, format, &s); err != nil {
		return security.SecurityScheme{}, err
	}
	return s, nil
}

// DecodeSchemes decodes a map of named security schemes, as found under
// components.securitySchemes.
func DecodeSchemes(data []byte, format Format) (security.Schemes, error) {
	var s security.Schemes
	if err := decode(data, format, &s); err != nil {
		return nil, err
	}
	return s, nil
}

func decode(data []byte, format Format, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &oaserrors.ParseError{Message: "empty document"}
	}
	if format == FormatUnknown {
		format = DetectFormat("", data)
	}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	default:
		return &oaserrors.ParseError{Message: "unsupported format " + format.String()}
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, oaserrors.ErrDecode) || errors.Is(err, oaserrors.ErrParse) {
		return err
	}
	return &oaserrors.ParseError{Message: "invalid " + strings.ToUpper(format.String()), Cause: err}
}
