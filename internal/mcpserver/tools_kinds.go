package mcpserver

import (
	"context"

	"github.com/erraggy/oaskit/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listKindsInput struct{}

type listKindsOutput struct {
	Kinds []report.KindView `json:"kinds"`
}

func handleListKinds(_ context.Context, _ *mcp.CallToolRequest, _ listKindsInput) (*mcp.CallToolResult, any, error) {
	return nil, listKindsOutput{Kinds: report.Kinds()}, nil
}
