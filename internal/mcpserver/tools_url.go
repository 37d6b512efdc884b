package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oaskit/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectURLTemplateInput struct {
	Templates []string `json:"templates" jsonschema:"Templated URLs to inspect such as https://{region}.example.com/v1"`
}

type inspectURLTemplateOutput struct {
	Count     int                   `json:"count"`
	Resolved  int                   `json:"resolved"`
	Templates []report.TemplateView `json:"templates"`
}

func handleInspectURLTemplate(_ context.Context, _ *mcp.CallToolRequest, input inspectURLTemplateInput) (*mcp.CallToolResult, any, error) {
	if len(input.Templates) == 0 {
		return errResult(fmt.Errorf("at least one template must be provided")), nil, nil
	}
	if len(input.Templates) > cfg.MaxTemplates {
		return errResult(fmt.Errorf("%d templates exceeds maximum %d; set OASKIT_MAX_TEMPLATES to increase",
			len(input.Templates), cfg.MaxTemplates)), nil, nil
	}

	output := inspectURLTemplateOutput{
		Count:     len(input.Templates),
		Templates: make([]report.TemplateView, 0, len(input.Templates)),
	}
	for _, raw := range input.Templates {
		v := report.Template(raw)
		if v.Resolved {
			output.Resolved++
		}
		output.Templates = append(output.Templates, v)
	}
	return nil, output, nil
}
