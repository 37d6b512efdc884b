// Package oaserrors provides structured error types for the oaskit library.
//
// Import path: github.com/erraggy/oaskit/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to find out exactly which variant, field or OAuth flow made a
// decode fail. Decoding never returns a partially built value together with
// one of these errors.
//
// # Error Types
//
//   - [MissingDiscriminatorError]: the "type" key is absent or not a string
//   - [UnknownVariantError]: the "type" value selects no registered variant
//   - [FieldError]: a required field is missing or a field has the wrong shape
//   - [FlowError]: same as FieldError, scoped to a nested OAuth flow object
//   - [NotStringError]: a templated URL value was not a JSON string
//   - [ParseError]: JSON/YAML syntax failures of the enclosing input
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrMissingDiscriminator]: Matches any [MissingDiscriminatorError]
//   - [ErrUnknownVariant]: Matches any [UnknownVariantError]
//   - [ErrInvalidField]: Matches any [FieldError]
//   - [ErrMalformedFlow]: Matches any [FlowError]
//   - [ErrNotString]: Matches any [NotStringError]
//   - [ErrDecode]: Matches all five decode errors above
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	var scheme security.SecurityScheme
//	err := json.Unmarshal(data, &scheme)
//	if errors.Is(err, oaserrors.ErrUnknownVariant) {
//	    // Skip schemes this version does not understand
//	}
//
// Extract error details with errors.As():
//
//	var flowErr *oaserrors.FlowError
//	if errors.As(err, &flowErr) {
//	    fmt.Printf("flow %s is missing %s\n", flowErr.Flow, flowErr.Field)
//	}
//
// # Error Chaining
//
// A flow error found while decoding the flows of an oauth2 scheme is wrapped
// in a [FieldError] for the "flows" field, so both are reachable:
//
//	var fieldErr *oaserrors.FieldError
//	var flowErr *oaserrors.FlowError
//	errors.As(err, &fieldErr) // fieldErr.Field == "flows"
//	errors.As(err, &flowErr)  // flowErr.Flow == "implicit"
package oaserrors
