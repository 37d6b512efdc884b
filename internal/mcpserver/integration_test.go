package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := newServer()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"decode_security_scheme", "inspect_url_template", "list_security_scheme_kinds"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_DecodeCollection(t *testing.T) {
	decodeCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "decode_security_scheme",
		Arguments: map[string]any{
			"document": map[string]any{
				"content":    schemesYAML,
				"collection": true,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "decode should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(3), structured["total"])
	assert.Equal(t, float64(3), structured["matched"])

	schemes, ok := structured["schemes"].([]any)
	require.True(t, ok, "schemes should be an array")
	require.Len(t, schemes, 3)
	first, ok := schemes[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ApiKeyAuth", first["name"])
	assert.Equal(t, map[string]any{
		"description": "API key authentication",
		"in":          "header",
		"name":        "X-API-Key",
		"type":        "apiKey",
	}, first["canonical"])
}

func TestIntegration_CallTool_InspectURLTemplate(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "inspect_url_template",
		Arguments: map[string]any{
			"templates": []string{"https://{env}.example.com"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	templates, ok := structured["templates"].([]any)
	require.True(t, ok)
	require.Len(t, templates, 1)
	view, ok := templates[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, view["has_variables"])
	assert.Equal(t, []any{"env"}, view["variables"])
}

func TestIntegration_CallTool_ListKinds(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_security_scheme_kinds",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	kinds, ok := structured["kinds"].([]any)
	require.True(t, ok)
	assert.Len(t, kinds, 4)
}

func TestIntegration_CallTool_Error_InvalidScheme(t *testing.T) {
	decodeCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "decode_security_scheme",
		Arguments: map[string]any{
			"document": map[string]any{
				"content": `{"type":"http"}`,
			},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.Contains(t, text.Text, "missing field http.scheme")
}

func TestIntegration_CallTool_Error_MissingDocument(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "decode_security_scheme",
		Arguments: map[string]any{
			"document": map[string]any{},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
