package openai

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/spetersoncode/toolschema"
)

// ConvertTools converts tool descriptors to OpenAI function tools.
// The strict flag of each descriptor is carried over.
func ConvertTools(tools []toolschema.Tool) ([]openai.ChatCompletionToolParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	result := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		var params shared.FunctionParameters
		if len(t.Parameters) > 0 {
			if err := json.Unmarshal(t.Parameters, &params); err != nil {
				return nil, fmt.Errorf("openai: decode parameters of %s: %w", t.Name, err)
			}
		}
		fn := shared.FunctionDefinitionParam{
			Name:        t.Name,
			Description: openai.String(t.Description),
			Parameters:  params,
		}
		if t.Strict {
			fn.Strict = openai.Bool(true)
		}
		result[i] = openai.ChatCompletionToolParam{Function: fn}
	}
	return result, nil
}

func extractToolCalls(msg openai.ChatCompletionMessage) []toolschema.ToolCall {
	if len(msg.ToolCalls) == 0 {
		return nil
	}
	result := make([]toolschema.ToolCall, len(msg.ToolCalls))
	for i, tc := range msg.ToolCalls {
		result[i] = toolschema.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}
	}
	return result
}
