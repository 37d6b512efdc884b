// Package security provides the security scheme and OAuth flow values of an
// OpenAPI document, with JSON and YAML codecs.
//
// A [SecurityScheme] is exactly one of four kinds: [APIKey], [HTTP],
// [OAuth2] or [OpenIDConnect], plus an optional description shared by all of
// them. The kind is selected by the "type" field of the wire object:
//
//	{"in":"header","name":"X-API-Key","type":"apiKey"}
//	{"bearerFormat":"JWT","scheme":"bearer","type":"http"}
//	{"flows":{"implicit":{...}},"type":"oauth2"}
//	{"openIdConnectUrl":"https://example.com/.well-known/openid-configuration","type":"openIdConnect"}
//
// Values are immutable once constructed, either through [New] and the
// NewXxx constructors or by decoding. Both construction paths produce values
// that compare equal with [SecurityScheme.Equal] when they carry the same
// fields.
//
// # Decoding
//
//	var scheme security.SecurityScheme
//	if err := json.Unmarshal(data, &scheme); err != nil {
//	    // *oaserrors.MissingDiscriminatorError, *oaserrors.UnknownVariantError,
//	    // *oaserrors.FieldError or (wrapped) *oaserrors.FlowError
//	}
//	switch k := scheme.Kind().(type) {
//	case security.APIKey:
//	    fmt.Println(k.Name, k.In)
//	case security.OAuth2:
//	    fmt.Println(k.Flows.Names())
//	}
//
// # OAuth flows
//
// [OAuthFlows] holds up to four independent flows. Each flow kind is its own
// type carrying only the fields that are legal for it, so an implicit flow
// has no token URL and a password flow has no authorization URL.
package security
