package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingDiscriminatorError(t *testing.T) {
	t.Run("Error message for absent key", func(t *testing.T) {
		err := &MissingDiscriminatorError{Key: "type"}
		if err.Error() != `missing discriminator: "type" is required` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for non-string key", func(t *testing.T) {
		err := &MissingDiscriminatorError{Key: "type", Present: true}
		if err.Error() != `missing discriminator: "type" must be a string` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrMissingDiscriminator and ErrDecode", func(t *testing.T) {
		err := &MissingDiscriminatorError{Key: "type"}
		if !errors.Is(err, ErrMissingDiscriminator) {
			t.Error("MissingDiscriminatorError should match ErrMissingDiscriminator")
		}
		if !errors.Is(err, ErrDecode) {
			t.Error("MissingDiscriminatorError should match ErrDecode")
		}
		if errors.Is(err, ErrUnknownVariant) {
			t.Error("MissingDiscriminatorError should not match ErrUnknownVariant")
		}
	})
}

func TestUnknownVariantError(t *testing.T) {
	t.Run("Error message with known values", func(t *testing.T) {
		err := &UnknownVariantError{Key: "type", Value: "mutualTLS", Known: []string{"apiKey", "http"}}
		expected := `unknown variant: type "mutualTLS" (expected one of: apiKey, http)`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without known values", func(t *testing.T) {
		err := &UnknownVariantError{Key: "type", Value: "x"}
		if err.Error() != `unknown variant: type "x"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("As extracts UnknownVariantError", func(t *testing.T) {
		err := fmt.Errorf("decoding scheme: %w", &UnknownVariantError{Key: "type", Value: "basic"})
		var uvErr *UnknownVariantError
		if !errors.As(err, &uvErr) {
			t.Fatal("errors.As should succeed")
		}
		if uvErr.Value != "basic" {
			t.Errorf("unexpected value: %s", uvErr.Value)
		}
		if !errors.Is(err, ErrUnknownVariant) || !errors.Is(err, ErrDecode) {
			t.Error("wrapped UnknownVariantError should match its sentinels")
		}
	})
}

func TestFieldError(t *testing.T) {
	t.Run("Error message for missing field", func(t *testing.T) {
		err := &FieldError{Variant: "apiKey", Field: "name", Missing: true}
		if err.Error() != "missing field apiKey.name" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for invalid field with cause", func(t *testing.T) {
		err := &FieldError{
			Variant: "apiKey",
			Field:   "in",
			Message: "must be one of query, header, cookie",
			Cause:   errors.New("got body"),
		}
		expected := "invalid field apiKey.in: must be one of query, header, cookie: got body"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without variant", func(t *testing.T) {
		err := &FieldError{Field: "scopes"}
		if err.Error() != "invalid field scopes" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := &FlowError{Flow: "implicit", Field: "authorizationUrl", Missing: true}
		err := &FieldError{Variant: "oauth2", Field: "flows", Cause: cause}
		var flowErr *FlowError
		if !errors.As(err, &flowErr) {
			t.Fatal("errors.As should find the wrapped FlowError")
		}
		if flowErr.Flow != "implicit" {
			t.Errorf("unexpected flow: %s", flowErr.Flow)
		}
		if !errors.Is(err, ErrMalformedFlow) {
			t.Error("FieldError wrapping a FlowError should match ErrMalformedFlow")
		}
	})

	t.Run("Is matches ErrInvalidField", func(t *testing.T) {
		err := &FieldError{Variant: "http", Field: "scheme"}
		if !errors.Is(err, ErrInvalidField) {
			t.Error("FieldError should match ErrInvalidField")
		}
		if errors.Is(err, ErrNotString) {
			t.Error("FieldError should not match ErrNotString")
		}
	})
}

func TestFlowError(t *testing.T) {
	t.Run("Error message for missing field", func(t *testing.T) {
		err := &FlowError{Flow: "password", Field: "tokenUrl", Missing: true}
		if err.Error() != "malformed flow password: missing field tokenUrl" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for malformed flow object", func(t *testing.T) {
		err := &FlowError{Flow: "implicit", Message: "must be an object"}
		if err.Error() != "malformed flow implicit: must be an object" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrMalformedFlow and ErrDecode", func(t *testing.T) {
		err := &FlowError{Flow: "implicit"}
		if !errors.Is(err, ErrMalformedFlow) || !errors.Is(err, ErrDecode) {
			t.Error("FlowError should match ErrMalformedFlow and ErrDecode")
		}
		if errors.Is(err, ErrInvalidField) {
			t.Error("FlowError should not match ErrInvalidField")
		}
	})
}

func TestNotStringError(t *testing.T) {
	t.Run("Error message with target and cause", func(t *testing.T) {
		err := &NotStringError{Target: "urltemplate.Template", Cause: errors.New("got number")}
		expected := "not a JSON string: cannot decode urltemplate.Template: got number"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrNotString", func(t *testing.T) {
		err := &NotStringError{}
		if !errors.Is(err, ErrNotString) || !errors.Is(err, ErrDecode) {
			t.Error("NotStringError should match ErrNotString and ErrDecode")
		}
		if errors.Is(err, ErrParse) {
			t.Error("NotStringError should not match ErrParse")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "api.yaml"}
		if err.Error() != "parse error in api.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "parse error at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrDecode) {
			t.Error("ParseError should not match ErrDecode")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "test.yaml", Line: 5})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Path != "test.yaml" {
			t.Errorf("unexpected path: %s", parseErr.Path)
		}
		if parseErr.Line != 5 {
			t.Errorf("unexpected line: %d", parseErr.Line)
		}
	})
}


func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid value")
		err := &ConfigError{
			Option:  "timeout",
			Value:   -5,
			Message: "must be positive",
			Cause:   cause,
		}
		expected := "configuration error for timeout (value: -5): must be positive: invalid value"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with option only", func(t *testing.T) {
		err := &ConfigError{Option: "filePath"}
		expected := "configuration error for filePath"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with nil value excluded", func(t *testing.T) {
		err := &ConfigError{
			Option:  "input",
			Value:   nil,
			Message: "required",
		}
		expected := "configuration error for input: required"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("missing value")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ConfigError{}
		if errors.Is(err, ErrParse) {
			t.Error("ConfigError should not match ErrParse")
		}
	})

	t.Run("As extracts ConfigError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ConfigError{
			Option: "maxSize",
			Value:  1000,
		})
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatal("errors.As should succeed")
		}
		if cfgErr.Option != "maxSize" {
			t.Errorf("unexpected option: %s", cfgErr.Option)
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	sentinels := []error{
		ErrDecode,
		ErrMissingDiscriminator,
		ErrUnknownVariant,
		ErrInvalidField,
		ErrMalformedFlow,
		ErrNotString,
		ErrParse,
		ErrConfig,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}

func TestErrorChaining(t *testing.T) {
	t.Run("deeply wrapped ParseError", func(t *testing.T) {
		parseErr := &ParseError{Path: "scheme.yaml", Message: "invalid"}
		wrapped1 := fmt.Errorf("layer 1: %w", parseErr)
		wrapped2 := fmt.Errorf("layer 2: %w", wrapped1)

		if !errors.Is(wrapped2, ErrParse) {
			t.Error("deeply wrapped ParseError should match ErrParse")
		}

		var extracted *ParseError
		if !errors.As(wrapped2, &extracted) {
			t.Fatal("errors.As should work through wrapping")
		}
		if extracted.Path != "scheme.yaml" {
			t.Errorf("unexpected path: %s", extracted.Path)
		}
	})

	t.Run("error wrapping with Cause", func(t *testing.T) {
		rootCause := errors.New("invalid port")
		fieldErr := &FieldError{
			Variant: "openIdConnect",
			Field:   "openIdConnectUrl",
			Cause:   rootCause,
		}
		wrapped := fmt.Errorf("decoding scheme: %w", fieldErr)

		// Should be able to check for root cause
		if !errors.Is(wrapped, rootCause) {
			t.Error("should be able to find root cause through Unwrap chain")
		}
	})
}
