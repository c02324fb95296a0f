package schema

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DisallowedKeys are the metadata keywords strict mode does not accept.
// Normalize removes them from every schema node.
var DisallowedKeys = []string{"default", "title", "examples", "format", "$schema", "$id"}

// schemaMapKeys hold a mapping from names to schemas. Their keys are
// property names, never keywords, so they are not pruned.
var schemaMapKeys = map[string]bool{
	"properties":        true,
	"patternProperties": true,
	"$defs":             true,
	"definitions":       true,
	"dependentSchemas":  true,
}

// literalKeys hold data rather than schemas and are copied verbatim.
var literalKeys = map[string]bool{
	"enum":     true,
	"const":    true,
	"required": true,
}

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	drop map[string]bool
}

// KeepDescriptions keeps "description" keywords. Without it Normalize
// removes descriptions along with the other metadata keys.
func KeepDescriptions() NormalizeOption {
	return func(c *normalizeConfig) {
		delete(c.drop, "description")
	}
}

// DropKeys removes additional keywords from every node.
func DropKeys(keys ...string) NormalizeOption {
	return func(c *normalizeConfig) {
		for _, k := range keys {
			c.drop[k] = true
		}
	}
}

func newNormalizeConfig(opts []NormalizeOption) *normalizeConfig {
	c := &normalizeConfig{drop: make(map[string]bool, len(DisallowedKeys)+1)}
	for _, k := range DisallowedKeys {
		c.drop[k] = true
	}
	c.drop["description"] = true
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize rewrites a raw schema tree to satisfy strict mode.
//
// The tree is the generic JSON shape: map[string]any nodes, []any lists and
// scalar leaves. Normalize returns a new tree and never modifies its input.
// In the result:
//   - no node carries a key from DisallowedKeys (or "description", unless
//     KeepDescriptions is given), and kept descriptions are never empty;
//   - every node whose type is or includes "object" has
//     "additionalProperties": false and a "required" list containing every
//     key of "properties". Keys already required keep their position;
//     missing keys are appended in lexical order.
//
// Every map value and list element is visited, so anyOf branches, array
// items and nested objects are all normalized. Values that are neither maps
// nor lists are copied as opaque leaves. Normalize is idempotent.
func Normalize(tree any, opts ...NormalizeOption) any {
	return normalizeValue(tree, newNormalizeConfig(opts))
}

// NormalizeMap is Normalize for a root object node.
func NormalizeMap(tree map[string]any, opts ...NormalizeOption) map[string]any {
	if tree == nil {
		return nil
	}
	return normalizeSchema(tree, newNormalizeConfig(opts))
}

// NormalizeNode converts a typed node to the generic shape and normalizes it.
func NormalizeNode(n *Node, opts ...NormalizeOption) (map[string]any, error) {
	m, err := n.Map()
	if err != nil {
		return nil, err
	}
	return NormalizeMap(m, opts...), nil
}

// NormalizeJSON decodes a serialized schema, normalizes it and encodes it
// again. Object keys keep their order from data.
func NormalizeJSON(data json.RawMessage, opts ...NormalizeOption) (json.RawMessage, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	return MarshalOrdered(Normalize(tree, opts...), data)
}

func normalizeValue(v any, c *normalizeConfig) any {
	switch node := v.(type) {
	case map[string]any:
		return normalizeSchema(node, c)
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = normalizeValue(item, c)
		}
		return out
	default:
		return copyLiteral(v)
	}
}

func normalizeSchema(node map[string]any, c *normalizeConfig) map[string]any {
	out := make(map[string]any, len(node)+2)
	for key, val := range node {
		if c.drop[key] || key == "description" && val == "" {
			continue
		}
		switch {
		case literalKeys[key]:
			out[key] = copyLiteral(val)
		case schemaMapKeys[key]:
			out[key] = normalizeSchemaMap(val, c)
		default:
			out[key] = normalizeValue(val, c)
		}
	}
	if isObjectType(out["type"]) {
		closeObject(out)
	}
	return out
}

// normalizeSchemaMap normalizes each schema of a name-to-schema mapping.
func normalizeSchemaMap(v any, c *normalizeConfig) any {
	m, ok := v.(map[string]any)
	if !ok {
		return normalizeValue(v, c)
	}
	out := make(map[string]any, len(m))
	for name, sub := range m {
		out[name] = normalizeValue(sub, c)
	}
	return out
}

// closeObject forbids extra fields and requires every declared property.
func closeObject(node map[string]any) {
	node["additionalProperties"] = false

	required := stringList(node["required"])
	seen := make(map[string]bool, len(required))
	out := make([]any, 0, len(required))
	for _, name := range required {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}

	props, _ := node["properties"].(map[string]any)
	missing := make([]string, 0, len(props))
	for name := range props {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		out = append(out, name)
	}
	node["required"] = out
}

func isObjectType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == TypeObject
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == TypeObject {
				return true
			}
		}
	case []string:
		return Types(v).Has(TypeObject)
	case Types:
		return v.Has(TypeObject)
	}
	return false
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// copyLiteral deep-copies JSON data without treating it as schema.
func copyLiteral(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyLiteral(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyLiteral(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	case Types:
		return append(Types(nil), val...)
	default:
		return v
	}
}
