// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaskit's security scheme and URL template tooling over stdio.
package mcpserver

import (
	"context"
	"os"
	"regexp"
	"sort"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/internal/logging"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oaskit MCP server: decodes and canonicalizes OpenAPI 3.x security schemes and inspects templated server URLs.

Configuration: All defaults are configurable via OASKIT_* environment variables set in your MCP client config.

Key settings:
- OASKIT_MAX_INPUT_BYTES (default: 1048576): maximum document size for file or inline input
- OASKIT_MAX_TEMPLATES (default: 100): maximum URL templates per inspect_url_template call
- OASKIT_LOG_LEVEL (default: warn): stderr log level (debug, info, warn, error)
- OASKIT_CACHE_ENABLED (default: true): disable decode caching entirely
- OASKIT_CACHE_MAX_SIZE (default: 32): maximum cached documents
- OASKIT_CACHE_TTL (default: 15m): cache TTL for decoded documents

Caching: Decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline content is keyed by its SHA-256 hash.`

// logger receives server diagnostics. Run replaces it with a stderr logger.
var logger logging.Logger = logging.NopLogger{}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	logger = logging.NewText(os.Stderr, cfg.LogLevel).With("component", "mcpserver")
	if cfg.CacheEnabled {
		decodeCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := newServer()
	logger.Info("starting MCP server", "version", oaskit.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaskit", Version: oaskit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "decode_security_scheme",
		Description: "Decode an OpenAPI 3.x Security Scheme Object (apiKey, http, oauth2, openIdConnect) from JSON or YAML. Returns the typed fields, OAuth2 flows and scopes, and the canonical JSON encoding. Set collection=true to decode a components.securitySchemes map. Decode failures name the missing or malformed field.",
	}, handleDecodeScheme)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_url_template",
		Description: "Inspect one or more templated URLs such as OpenAPI server URLs. Returns the {variable} names, whether the URL resolves as a strict URI, and its absolute form when it does.",
	}, handleInspectURLTemplate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_security_scheme_kinds",
		Description: "List the supported security scheme types with their required and optional fields.",
	}, handleListKinds)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in a type breakdown.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
