// Package anthropic converts tool descriptors to Anthropic Messages API
// tool definitions.
package anthropic

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/spetersoncode/toolschema"
)

// ConvertTools converts tool descriptors to Anthropic tool definitions.
//
// The input schema keeps the strict descriptor's properties and required
// list; a closed object keeps "additionalProperties": false.
func ConvertTools(tools []toolschema.Tool) ([]anthropic.ToolUnionParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		schema, err := t.Schema()
		if err != nil {
			return nil, err
		}
		if schema == nil {
			schema = map[string]any{}
		}

		inputSchema := anthropic.ToolInputSchemaParam{
			Properties: schema["properties"],
			Required:   stringList(schema["required"]),
		}
		if ap, ok := schema["additionalProperties"]; ok {
			inputSchema.ExtraFields = map[string]any{"additionalProperties": ap}
		}

		result[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        t.Name,
				Description: anthropic.String(t.Description),
				InputSchema: inputSchema,
			},
		}
	}
	return result, nil
}

// ExtractToolCalls returns the tool_use blocks of a response.
func ExtractToolCalls(content []anthropic.ContentBlockUnion) []toolschema.ToolCall {
	var calls []toolschema.ToolCall
	for _, block := range content {
		if block.Type == "tool_use" {
			calls = append(calls, toolschema.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	return calls
}

// MarshalTools encodes converted tools as the "tools" array of a request.
func MarshalTools(tools []toolschema.Tool) (json.RawMessage, error) {
	converted, err := ConvertTools(tools)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(converted)
	if err != nil {
		return nil, fmt.Errorf("anthropic: encode tools: %w", err)
	}
	return data, nil
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
