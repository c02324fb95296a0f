package toolschema

import (
	"encoding/json"
	"fmt"
)

// ToolType is the envelope type of every tool descriptor.
const ToolType = "function"

// Tool is the descriptor of a function the model can call.
// A Tool is built once and never modified afterwards; it is safe to share
// between goroutines.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	// Descriptors built by the tool package never carry an empty description.
	Description string
	// Parameters is the strict JSON Schema object describing the function parameters.
	Parameters json.RawMessage
	// Strict reports whether Parameters satisfies the strict-mode contract.
	Strict bool
}

// toolEnvelope is the wire form of a Tool.
type toolEnvelope struct {
	Type     string       `json:"type"`
	Function functionWire `json:"function"`
}

type functionWire struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Strict      bool            `json:"strict"`
}

// MarshalJSON encodes the tool as a function-calling envelope:
//
//	{"type":"function","function":{"name":...,"description":...,"parameters":...,"strict":true}}
func (t Tool) MarshalJSON() ([]byte, error) {
	return json.Marshal(toolEnvelope{
		Type: ToolType,
		Function: functionWire{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
			Strict:      t.Strict,
		},
	})
}

// UnmarshalJSON decodes a function-calling envelope.
func (t *Tool) UnmarshalJSON(data []byte) error {
	var env toolEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.Type != "" && env.Type != ToolType {
		return fmt.Errorf("toolschema: unsupported tool type %q", env.Type)
	}
	*t = Tool{
		Name:        env.Function.Name,
		Description: env.Function.Description,
		Parameters:  env.Function.Parameters,
		Strict:      env.Function.Strict,
	}
	return nil
}

// Schema decodes Parameters into a generic JSON tree.
func (t Tool) Schema() (map[string]any, error) {
	if len(t.Parameters) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(t.Parameters, &m); err != nil {
		return nil, fmt.Errorf("toolschema: decode parameters of %s: %w", t.Name, err)
	}
	return m, nil
}

// ToolCall represents a request from the model to invoke a tool.
type ToolCall struct {
	// ID is a unique identifier for this tool call (used to match results).
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON string containing the arguments to pass.
	Arguments string `json:"arguments"`
}

// ToolResult represents the result of executing a tool call.
type ToolResult struct {
	// ToolCallID matches the ID from the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Content is the result content to return to the model.
	Content string `json:"content"`
	// IsError indicates if the result represents an error.
	IsError bool `json:"isError,omitempty"`
}

// NewToolResultMessage creates a message containing tool results.
// This is a convenience function for returning tool results to the model.
func NewToolResultMessage(results ...ToolResult) Message {
	return Message{
		Role:        RoleTool,
		ToolResults: results,
	}
}
