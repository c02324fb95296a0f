package google

import (
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/spetersoncode/toolschema"
)

// ConvertTools converts tool descriptors to a single genai Tool holding
// one function declaration per descriptor.
func ConvertTools(tools []toolschema.Tool) ([]*genai.Tool, error) {
	if len(tools) == 0 {
		return nil, nil
	}

	funcs := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		params, err := ConvertJSONSchemaToGenaiSchema(t.Parameters)
		if err != nil {
			return nil, fmt.Errorf("google: tool %s: %w", t.Name, err)
		}
		funcs[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		}
	}

	return []*genai.Tool{{FunctionDeclarations: funcs}}, nil
}

// ExtractToolCalls extracts tool calls from Google genai Parts.
// Calls without an ID get one derived from their position and name.
func ExtractToolCalls(parts []*genai.Part) []toolschema.ToolCall {
	var calls []toolschema.ToolCall
	for i, part := range parts {
		if part == nil || part.FunctionCall == nil {
			continue
		}
		args, _ := json.Marshal(part.FunctionCall.Args)
		id := part.FunctionCall.ID
		if id == "" {
			id = fmt.Sprintf("call_%d_%s", i, part.FunctionCall.Name)
		}
		calls = append(calls, toolschema.ToolCall{
			ID:        id,
			Name:      part.FunctionCall.Name,
			Arguments: string(args),
		})
	}
	return calls
}
