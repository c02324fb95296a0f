// Package google converts tool descriptors to Google Gen AI function
// declarations.
package google

import (
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// ConvertJSONSchemaToGenaiSchema converts JSON Schema to Google genai Schema.
//
// A type list containing "null" becomes the remaining type with Nullable
// set; any other multi-type list becomes AnyOf. Keys genai has no field
// for (such as additionalProperties) are dropped.
func ConvertJSONSchemaToGenaiSchema(schemaJSON json.RawMessage) (*genai.Schema, error) {
	if len(schemaJSON) == 0 {
		return nil, nil
	}

	var schema map[string]any
	if err := json.Unmarshal(schemaJSON, &schema); err != nil {
		return nil, fmt.Errorf("google: decode schema: %w", err)
	}

	return convertSchemaObject(schema), nil
}

var genaiTypes = map[string]genai.Type{
	"string":  genai.TypeString,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
	"array":   genai.TypeArray,
	"object":  genai.TypeObject,
	"null":    genai.TypeNULL,
}

func convertSchemaObject(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	result := &genai.Schema{}

	switch typeVal := schema["type"].(type) {
	case string:
		result.Type = genaiTypes[typeVal]
	case []any:
		applyTypeList(result, typeVal)
	}

	if desc, ok := schema["description"].(string); ok {
		result.Description = desc
	}

	if enumVal, ok := schema["enum"].([]any); ok {
		for _, e := range enumVal {
			if s, ok := e.(string); ok {
				result.Enum = append(result.Enum, s)
			}
		}
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		result.Properties = make(map[string]*genai.Schema, len(props))
		for name, propSchema := range props {
			if propMap, ok := propSchema.(map[string]any); ok {
				result.Properties[name] = convertSchemaObject(propMap)
			}
		}
	}

	if required, ok := schema["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				result.Required = append(result.Required, s)
			}
		}
		// Required follows declaration order in the descriptor.
		result.PropertyOrdering = append([]string(nil), result.Required...)
	}

	if items, ok := schema["items"].(map[string]any); ok {
		result.Items = convertSchemaObject(items)
	}

	// genai has no oneOf; both unions map onto AnyOf.
	for _, key := range []string{"anyOf", "oneOf"} {
		branches, _ := schema[key].([]any)
		for _, branch := range branches {
			if m, ok := branch.(map[string]any); ok {
				result.AnyOf = append(result.AnyOf, convertSchemaObject(m))
			}
		}
	}

	return result
}

// applyTypeList maps a JSON Schema type list onto s.
func applyTypeList(s *genai.Schema, list []any) {
	var types []genai.Type
	for _, v := range list {
		name, _ := v.(string)
		if name == "null" {
			s.Nullable = genai.Ptr(true)
			continue
		}
		if t, ok := genaiTypes[name]; ok {
			types = append(types, t)
		}
	}

	switch len(types) {
	case 0:
		if s.Nullable != nil {
			s.Type = genai.TypeNULL
			s.Nullable = nil
		}
	case 1:
		s.Type = types[0]
	default:
		for _, t := range types {
			s.AnyOf = append(s.AnyOf, &genai.Schema{Type: t})
		}
	}
}
