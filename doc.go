// Package oaskit provides value codecs for two OpenAPI building blocks that a
// derived JSON codec cannot express: security schemes, whose shape is chosen
// by a "type" field living alongside the data, and templated server URLs,
// which may or may not resolve to a concrete URI.
//
// # Packages
//
//   - security: the SecurityScheme sum type (apiKey, http, oauth2,
//     openIdConnect), its OAuth flow set and named scheme collections
//   - urltemplate: the Template value type for URLs with {name} placeholders
//   - discriminator: the generic codec for flat objects selected by a
//     string discriminator, used by security
//   - oaserrors: structured decode errors usable with errors.Is and errors.As
//   - pointer: helpers for optional fields modeled as pointers
//
// # Quick Start
//
// Decode a security scheme:
//
//	import "github.com/erraggy/oaskit/security"
//
//	s, err := security.Parse([]byte(`{"type":"apiKey","name":"X-API-Key","in":"header"}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if k, ok := s.APIKey(); ok {
//		fmt.Println(k.Name, k.In) // X-API-Key header
//	}
//
// Encoding is canonical: keys are sorted and absent optional fields are
// omitted, never written as null.
//
//	data, _ := json.Marshal(security.NewHTTP("bearer", pointer.From("JWT")))
//	// {"bearerFormat":"JWT","scheme":"bearer","type":"http"}
//
// Inspect a server URL:
//
//	import "github.com/erraggy/oaskit/urltemplate"
//
//	t := urltemplate.New("{scheme}://api.example.com")
//	t.HasVariables()   // true
//	t.URL()            // nil
//	t.AbsoluteString() // "{scheme}://api.example.com"
//
// # Errors
//
// Every decode failure is one of the types in package oaserrors and matches
// oaserrors.ErrDecode:
//
//	var fieldErr *oaserrors.FieldError
//	if errors.As(err, &fieldErr) {
//		fmt.Printf("%s: field %s\n", fieldErr.Variant, fieldErr.Field)
//	}
//
// # Command Line
//
// The oaskit command decodes and summarizes security schemes, inspects URL
// templates and runs an MCP server exposing the same operations:
//
//	oaskit scheme scheme.yaml
//	oaskit url "{scheme}://{host}.example.com"
//	oaskit kinds
//	oaskit mcp
package oaskit
