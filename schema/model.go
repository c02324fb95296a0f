package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// ErrNotObject is returned when a parameter model does not describe an object.
var ErrNotObject = errors.New("schema: parameter model must be a struct")

// reflectionKeys are reflector bookkeeping keys that have no place in a
// self-contained parameter schema.
var reflectionKeys = []string{"$schema", "$id", "$defs", "definitions"}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// FromModel extracts the raw schema tree of the struct type T.
//
// Nested structs and slices of structs are inlined, so the tree contains no
// references and can be normalized without a resolution step. Field names
// come from json tags; descriptions, enums and nullability from jsonschema
// tags. Pointer fields and fields tagged nullable come out as a type union
// with "null":
//
//	type Message struct {
//	    Role    string `json:"role" jsonschema:"enum=user,enum=assistant,description=Message author"`
//	    Content string `json:"content" jsonschema:"description=Message content"`
//	}
//
//	tree, err := schema.FromModel[struct {
//	    Messages []Message `json:"messages"`
//	}]()
//
// The returned tree is raw: it may still carry titles, defaults and
// optional properties. Pass it through Normalize before use in strict mode.
func FromModel[T any]() (map[string]any, error) {
	var zero T
	return FromValue(&zero)
}

// FromValue is FromModel for the dynamic type of v.
func FromValue(v any) (map[string]any, error) {
	tree, _, err := reflectValue(v)
	return tree, err
}

// ModelJSON is FromModel in serialized form. Properties keep the
// declaration order of the struct fields.
func ModelJSON[T any]() (json.RawMessage, error) {
	var zero T
	tree, source, err := reflectValue(&zero)
	if err != nil {
		return nil, err
	}
	return MarshalOrdered(tree, source)
}

// reflectValue returns the raw tree of v along with the reflector's
// encoding, which keeps field order.
func reflectValue(v any) (map[string]any, json.RawMessage, error) {
	s := newReflector().Reflect(v)

	data, err := json.Marshal(s)
	if err != nil {
		return nil, nil, fmt.Errorf("schema: encode reflected schema: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, nil, fmt.Errorf("schema: decode reflected schema: %w", err)
	}
	for _, key := range reflectionKeys {
		delete(tree, key)
	}
	if !isObjectType(tree["type"]) {
		return nil, nil, fmt.Errorf("%w, got %T", ErrNotObject, v)
	}
	collapseNullBranches(tree)
	markPointerFields(tree, reflect.TypeOf(v))
	return tree, data, nil
}

// collapseNullBranches rewrites {"oneOf"|"anyOf": [{"type": T, ...}, {"type": "null"}]}
// into {"type": [T, "null"], ...} throughout the tree. The reflector emits
// the oneOf form for nullable tags, which strict endpoints reject.
func collapseNullBranches(v any) {
	switch node := v.(type) {
	case map[string]any:
		for _, val := range node {
			collapseNullBranches(val)
		}
		for _, key := range []string{"oneOf", "anyOf"} {
			if collapseNullPair(node, key) {
				break
			}
		}
	case []any:
		for _, item := range node {
			collapseNullBranches(item)
		}
	}
}

func collapseNullPair(node map[string]any, key string) bool {
	branches, ok := node[key].([]any)
	if !ok || len(branches) != 2 {
		return false
	}
	if _, typed := node["type"]; typed {
		return false
	}
	var other map[string]any
	nulls := 0
	for _, b := range branches {
		m, ok := b.(map[string]any)
		if !ok {
			return false
		}
		if len(m) == 1 && m["type"] == TypeNull {
			nulls++
			continue
		}
		other = m
	}
	if nulls != 1 || other == nil {
		return false
	}
	if _, ok := other["type"].(string); !ok {
		return false
	}
	delete(node, key)
	for k, val := range other {
		if _, exists := node[k]; !exists {
			node[k] = val
		}
	}
	makeNullable(node)
	return true
}

// markPointerFields makes the schema of every pointer field of the struct
// type t nullable, descending into nested structs and slices of structs.
func markPointerFields(node map[string]any, t reflect.Type) {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return
	}
	props, _ := node["properties"].(map[string]any)
	if props == nil {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := jsonName(f)
		if !ok {
			continue
		}
		if name == "" {
			// Embedded struct without a name; its fields are flattened.
			markPointerFields(node, f.Type)
			continue
		}
		sub, ok := props[name].(map[string]any)
		if !ok {
			continue
		}
		if f.Type.Kind() == reflect.Pointer {
			makeNullable(sub)
		}
		descend(sub, f.Type)
	}
}

func descend(node map[string]any, t reflect.Type) {
	t = deref(t)
	switch t.Kind() {
	case reflect.Struct:
		markPointerFields(node, t)
	case reflect.Slice, reflect.Array:
		if items, ok := node["items"].(map[string]any); ok {
			if deref(t.Elem()) != t.Elem() {
				makeNullable(items)
			}
			descend(items, t.Elem())
		}
	}
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// jsonName reports the property name of f. An empty name with ok set marks
// an embedded struct whose fields are promoted.
func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if f.Anonymous && name == "" && deref(f.Type).Kind() == reflect.Struct {
		return "", true
	}
	if !f.IsExported() {
		return "", false
	}
	if name == "" {
		name = f.Name
	}
	return name, true
}

// makeNullable adds "null" to the node's type, or a null branch to its
// anyOf when it has no type. Untyped schemas already accept null.
func makeNullable(node map[string]any) {
	switch t := node["type"].(type) {
	case string:
		if t != TypeNull {
			node["type"] = []any{t, TypeNull}
		}
	case []any:
		for _, item := range t {
			if item == TypeNull {
				return
			}
		}
		node["type"] = append(t, TypeNull)
	case nil:
		if branches, ok := node["anyOf"].([]any); ok {
			for _, b := range branches {
				if m, ok := b.(map[string]any); ok && m["type"] == TypeNull {
					return
				}
			}
			node["anyOf"] = append(branches, map[string]any{"type": TypeNull})
		}
		return
	}
	if enum, ok := node["enum"].([]any); ok {
		for _, e := range enum {
			if e == nil {
				return
			}
		}
		node["enum"] = append(enum, nil)
	}
}
