package toolschema

import "encoding/json"

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// Message is one conversation turn sent to a ChatProvider.
//
// Assistant turns may carry the calls the model asked for; tool turns carry
// the results of those calls, matched by ToolCallID.
type Message struct {
	Role        Role         `json:"role"`
	Content     string       `json:"content,omitempty"`
	ToolCalls   []ToolCall   `json:"toolCalls,omitempty"`
	ToolResults []ToolResult `json:"toolResults,omitempty"`
}

// Response is the decoded reply of a chat request that offered tools.
type Response struct {
	Content      string     `json:"content,omitempty"`
	FinishReason string     `json:"finishReason,omitempty"`
	Usage        Usage      `json:"usage"`
	ToolCalls    []ToolCall `json:"toolCalls,omitempty"`
	// Raw is the body as the endpoint sent it.
	Raw json.RawMessage `json:"-"`
}

// Usage counts the tokens a request consumed.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}
