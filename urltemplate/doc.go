// Package urltemplate provides Template, a URL string that is either a
// concrete URI or a URI carrying {name} placeholders, such as an OpenAPI
// server URL:
//
//	{scheme}://{host}.example.com/v1
//
// A Template always keeps the exact text it was built from. Encoding writes
// that text back unchanged, so decode followed by encode is the identity.
//
// Placeholders are found by a single left-to-right scan: a '{' opens a
// candidate, the next '}' closes it, and a second '{' before the close
// restarts the candidate. Braces that never pair up are ordinary text.
// Variable substitution is out of scope; only detection is provided.
//
// When a Template has no placeholders and its text is a strict RFC 3986
// URI reference, [Template.URL] returns the parsed URL. Otherwise URL returns
// nil and [Template.AbsoluteString] falls back to the raw text.
//
// # Encoding
//
// Template implements json.Marshaler, json.Unmarshaler, encoding.TextMarshaler,
// encoding.TextUnmarshaler and the YAML v4 marshaler interfaces. JSON and YAML
// decoding require a string value and fail with *oaserrors.NotStringError
// otherwise.
package urltemplate
