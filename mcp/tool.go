package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/schema"
	"github.com/spetersoncode/toolschema/tool"
)

// ToMCPTool converts a Tool to an MCP Tool.
// The strict Parameters schema is used as the MCP Tool's RawInputSchema.
func ToMCPTool(t toolschema.Tool) mcp.Tool {
	params := t.Parameters
	if len(params) == 0 {
		params = json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return mcp.NewToolWithRawSchema(t.Name, t.Description, params)
}

// ToMCPTools converts a slice of Tools to MCP Tools.
func ToMCPTools(tools []toolschema.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}

// FromMCPTool converts an MCP Tool to a strict Tool descriptor.
// The input schema is taken from RawInputSchema when set and from
// InputSchema otherwise, then normalized. Descriptions are kept.
func FromMCPTool(t mcp.Tool) (toolschema.Tool, error) {
	raw := t.RawInputSchema
	if len(raw) == 0 {
		data, err := json.Marshal(t.InputSchema)
		if err != nil {
			return toolschema.Tool{}, fmt.Errorf("mcp: encode input schema of %s: %w", t.Name, err)
		}
		raw = data
	}

	out, err := tool.Assemble(t.Name, t.Description, raw, schema.KeepDescriptions())
	if err != nil {
		return toolschema.Tool{}, fmt.Errorf("mcp: import %s: %w", t.Name, err)
	}
	return out, nil
}

// FromMCPTools converts a slice of MCP Tools, stopping at the first failure.
func FromMCPTools(tools []mcp.Tool) ([]toolschema.Tool, error) {
	result := make([]toolschema.Tool, len(tools))
	for i, t := range tools {
		converted, err := FromMCPTool(t)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

// ToMCPCallToolRequest converts a ToolCall to an MCP CallToolRequest.
func ToMCPCallToolRequest(call toolschema.ToolCall) mcp.CallToolRequest {
	var args any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			args = call.Arguments
		}
	}

	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      call.Name,
			Arguments: args,
		},
	}
}

// FromMCPCallToolResult converts an MCP CallToolResult to a ToolResult.
// Text content is joined with newlines; other content is encoded as JSON.
func FromMCPCallToolResult(callID string, result *mcp.CallToolResult) toolschema.ToolResult {
	if result == nil {
		return toolschema.ToolResult{ToolCallID: callID, IsError: true}
	}

	var parts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			parts = append(parts, content.Text)
		case *mcp.TextContent:
			parts = append(parts, content.Text)
		default:
			if data, err := json.Marshal(content); err == nil {
				parts = append(parts, string(data))
			}
		}
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			parts = append(parts, string(data))
		}
	}

	return toolschema.ToolResult{
		ToolCallID: callID,
		Content:    strings.Join(parts, "\n"),
		IsError:    result.IsError,
	}
}

// ToMCPCallToolResult converts a ToolResult to an MCP CallToolResult.
func ToMCPCallToolResult(result toolschema.ToolResult) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Content)
	}
	return mcp.NewToolResultText(result.Content)
}
