package tool

import (
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/docstring"
	"github.com/spetersoncode/toolschema/schema"
)

// Assemble normalizes a parameter schema and wraps it in a strict tool
// descriptor.
//
// params may be a *schema.Node, a schema.Builder, a decoded tree
// (map[string]any) or serialized JSON (json.RawMessage or []byte). The
// options are passed to schema.Normalize; without KeepDescriptions the
// property descriptions are pruned. An empty description is replaced by
// "<name> (no description)". Properties keep their declaration order,
// except for decoded trees, whose maps have none.
func Assemble(name, description string, params any, opts ...schema.NormalizeOption) (toolschema.Tool, error) {
	if name == "" {
		return toolschema.Tool{}, ErrEmptyName
	}

	tree, source, err := rawTree(params)
	if err != nil {
		return toolschema.Tool{}, fmt.Errorf("tool: %s: %w", name, err)
	}
	if tree == nil {
		tree = map[string]any{"type": schema.TypeObject, "properties": map[string]any{}}
	}
	if !schema.Of(typeTokens(tree["type"])...).Has(schema.TypeObject) {
		return toolschema.Tool{}, fmt.Errorf("tool: %s: %w", name, schema.ErrNotObject)
	}

	data, err := schema.MarshalOrdered(schema.NormalizeMap(tree, opts...), source)
	if err != nil {
		return toolschema.Tool{}, fmt.Errorf("tool: %s: encode parameters: %w", name, err)
	}

	if description == "" {
		description = docstring.Placeholder(name)
	}
	return toolschema.Tool{
		Name:        name,
		Description: description,
		Parameters:  data,
		Strict:      true,
	}, nil
}

// rawTree decodes params into the generic tree shape. The returned source
// is the serialized form that carries property order, when there is one.
func rawTree(params any) (map[string]any, json.RawMessage, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil, nil
	case *schema.Node:
		if p == nil {
			return nil, nil, nil
		}
		return encodeNode(p)
	case schema.Builder:
		return encodeNode(p.Node())
	case map[string]any:
		return p, nil, nil
	case json.RawMessage:
		return decodeTree(p)
	case []byte:
		return decodeTree(p)
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedSchema, params)
	}
}

func encodeNode(n *schema.Node) (map[string]any, json.RawMessage, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, nil, fmt.Errorf("encode parameters: %w", err)
	}
	return decodeTree(data)
}

func decodeTree(data []byte) (map[string]any, json.RawMessage, error) {
	if len(data) == 0 {
		return nil, nil, nil
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, nil, fmt.Errorf("decode parameters: %w", err)
	}
	return tree, data, nil
}

func typeTokens(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
