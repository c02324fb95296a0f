package schema

import (
	"fmt"
	"sort"
	"strings"
)

// StrictError reports a node that violates the strict-mode contract.
type StrictError struct {
	Path    string // JSON pointer of the offending node
	Message string
}

func (e *StrictError) Error() string {
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Message)
}

// Check verifies that a normalized tree satisfies strict mode: every object
// node has "additionalProperties": false and requires exactly its declared
// properties, no node carries a key from DisallowedKeys and no description
// is empty. It returns the
// first violation found, visiting keys in lexical order.
func Check(tree any) error {
	return check(tree, "")
}

func check(v any, path string) error {
	switch node := v.(type) {
	case map[string]any:
		return checkSchema(node, path)
	case []any:
		for i, item := range node {
			if err := check(item, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkSchema(node map[string]any, path string) error {
	for _, key := range DisallowedKeys {
		if _, ok := node[key]; ok {
			return &StrictError{Path: pointer(path), Message: fmt.Sprintf("disallowed key %q", key)}
		}
	}

	if desc, ok := node["description"].(string); ok && desc == "" {
		return &StrictError{Path: pointer(path), Message: "description must not be empty"}
	}

	if isObjectType(node["type"]) {
		if ap, ok := node["additionalProperties"].(bool); !ok || ap {
			return &StrictError{Path: pointer(path), Message: "additionalProperties must be false"}
		}
		props, _ := node["properties"].(map[string]any)
		required := stringList(node["required"])
		if err := sameNames(props, required); err != nil {
			return &StrictError{Path: pointer(path), Message: err.Error()}
		}
	}

	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if literalKeys[key] {
			continue
		}
		child := path + "/" + escapePointer(key)
		if schemaMapKeys[key] {
			m, ok := node[key].(map[string]any)
			if !ok {
				continue
			}
			names := make([]string, 0, len(m))
			for name := range m {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if err := check(m[name], child+"/"+escapePointer(name)); err != nil {
					return err
				}
			}
			continue
		}
		if err := check(node[key], child); err != nil {
			return err
		}
	}
	return nil
}

func sameNames(props map[string]any, required []string) error {
	seen := make(map[string]bool, len(required))
	for _, name := range required {
		if seen[name] {
			return fmt.Errorf("required lists %q twice", name)
		}
		seen[name] = true
		if _, ok := props[name]; !ok {
			return fmt.Errorf("required lists undeclared property %q", name)
		}
	}
	for name := range props {
		if !seen[name] {
			return fmt.Errorf("property %q is not required", name)
		}
	}
	return nil
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
