package mcpserver

import (
	"context"
	"fmt"
	"slices"

	"github.com/erraggy/oaskit/internal/report"
	"github.com/erraggy/oaskit/security"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type decodeSchemeInput struct {
	Document documentInput `json:"document"       jsonschema:"The security scheme document to decode"`
	Type     string        `json:"type,omitempty" jsonschema:"Only return schemes of this type (apiKey or http or oauth2 or openIdConnect)"`
}

type decodeSchemeOutput struct {
	Total   int                 `json:"total"`
	Matched int                 `json:"matched"`
	ByType  []groupCount        `json:"by_type,omitempty"`
	Schemes []report.SchemeView `json:"schemes"`
}

func handleDecodeScheme(_ context.Context, _ *mcp.CallToolRequest, input decodeSchemeInput) (*mcp.CallToolResult, any, error) {
	if input.Type != "" && !slices.Contains(security.Types(), security.Type(input.Type)) {
		return errResult(fmt.Errorf("invalid type %q; valid values: %v", input.Type, security.Types())), nil, nil
	}

	views, err := input.Document.resolve()
	if err != nil {
		logger.Debug("decode failed", "error", err)
		return errResult(err), nil, nil
	}

	matched := make([]report.SchemeView, 0, len(views))
	for _, v := range views {
		if input.Type == "" || v.Type == input.Type {
			matched = append(matched, v)
		}
	}

	output := decodeSchemeOutput{
		Total:   len(views),
		Matched: len(matched),
		Schemes: matched,
	}
	if input.Document.Collection {
		output.ByType = groupAndSort(matched, func(v report.SchemeView) string { return v.Type })
	}
	return nil, output, nil
}
