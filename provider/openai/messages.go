package openai

import (
	"github.com/openai/openai-go"

	"github.com/spetersoncode/toolschema"
)

// convertMessages maps conversation turns onto chat completion messages.
// Turns with nothing to send are skipped; a tool turn expands to one
// message per result.
func convertMessages(messages []toolschema.Message) []openai.ChatCompletionMessageParamUnion {
	var out []openai.ChatCompletionMessageParamUnion
	for _, m := range messages {
		switch m.Role {
		case toolschema.RoleTool:
			for _, res := range m.ToolResults {
				out = append(out, openai.ToolMessage(res.Content, res.ToolCallID))
			}
		case toolschema.RoleAssistant:
			if p, ok := assistantParam(m); ok {
				out = append(out, p)
			}
		case toolschema.RoleSystem:
			if m.Content != "" {
				out = append(out, openai.SystemMessage(m.Content))
			}
		default:
			if m.Content != "" {
				out = append(out, openai.UserMessage(m.Content))
			}
		}
	}
	return out
}

func assistantParam(m toolschema.Message) (openai.ChatCompletionMessageParamUnion, bool) {
	if len(m.ToolCalls) == 0 {
		if m.Content == "" {
			return openai.ChatCompletionMessageParamUnion{}, false
		}
		return openai.AssistantMessage(m.Content), true
	}

	param := openai.ChatCompletionAssistantMessageParam{
		ToolCalls: make([]openai.ChatCompletionMessageToolCallParam, 0, len(m.ToolCalls)),
	}
	for _, call := range m.ToolCalls {
		param.ToolCalls = append(param.ToolCalls, openai.ChatCompletionMessageToolCallParam{
			ID: call.ID,
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      call.Name,
				Arguments: call.Arguments,
			},
		})
	}
	if m.Content != "" {
		param.Content.OfString = openai.String(m.Content)
	}
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &param}, true
}
