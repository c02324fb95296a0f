package google

import (
	"encoding/json"
	"testing"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/schema"
	"github.com/spetersoncode/toolschema/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestConvertJSONSchemaToGenaiSchema(t *testing.T) {
	s, err := ConvertJSONSchemaToGenaiSchema(json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "description": "Who"},
			"repetitions": {"type": ["integer", "null"]},
			"unit": {"type": ["string", "null"], "enum": ["celsius", "fahrenheit", null]},
			"tags": {"type": "array", "items": {"type": "string"}},
			"either": {"type": ["string", "number"]},
			"nothing": {"type": ["null"]}
		},
		"required": ["name", "repetitions", "unit", "tags", "either", "nothing"],
		"additionalProperties": false
	}`))
	require.NoError(t, err)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"name", "repetitions", "unit", "tags", "either", "nothing"}, s.Required)
	assert.Equal(t, s.Required, s.PropertyOrdering)

	name := s.Properties["name"]
	assert.Equal(t, genai.TypeString, name.Type)
	assert.Equal(t, "Who", name.Description)
	assert.Nil(t, name.Nullable)

	reps := s.Properties["repetitions"]
	assert.Equal(t, genai.TypeInteger, reps.Type)
	require.NotNil(t, reps.Nullable)
	assert.True(t, *reps.Nullable)

	unit := s.Properties["unit"]
	assert.Equal(t, genai.TypeString, unit.Type)
	assert.Equal(t, []string{"celsius", "fahrenheit"}, unit.Enum)

	assert.Equal(t, genai.TypeString, s.Properties["tags"].Items.Type)

	either := s.Properties["either"]
	assert.Equal(t, genai.Type(""), either.Type)
	require.Len(t, either.AnyOf, 2)
	assert.Equal(t, genai.TypeString, either.AnyOf[0].Type)
	assert.Equal(t, genai.TypeNumber, either.AnyOf[1].Type)

	assert.Equal(t, genai.TypeNULL, s.Properties["nothing"].Type)
}

func TestConvertJSONSchemaToGenaiSchema_OneOf(t *testing.T) {
	s, err := ConvertJSONSchemaToGenaiSchema(json.RawMessage(`{
		"oneOf": [{"type": "string"}, {"type": "integer"}]
	}`))
	require.NoError(t, err)
	require.Len(t, s.AnyOf, 2)
	assert.Equal(t, genai.TypeString, s.AnyOf[0].Type)
	assert.Equal(t, genai.TypeInteger, s.AnyOf[1].Type)
}

func TestConvertJSONSchemaToGenaiSchema_Edges(t *testing.T) {
	s, err := ConvertJSONSchemaToGenaiSchema(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = ConvertJSONSchemaToGenaiSchema(json.RawMessage(`{`))
	assert.Error(t, err)
}

func TestConvertTools(t *testing.T) {
	greet, err := tool.FromSignature("greet", "Greet someone.",
		tool.NewParam("name", schema.StringType),
		tool.NewParam("repetitions", schema.OptionalOf(schema.IntegerType)).WithDefault(),
	)
	require.NoError(t, err)

	tools, err := ConvertTools([]toolschema.Tool{greet})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.Len(t, tools[0].FunctionDeclarations, 1)

	fn := tools[0].FunctionDeclarations[0]
	assert.Equal(t, "greet", fn.Name)
	assert.Equal(t, "Greet someone.", fn.Description)
	reps := fn.Parameters.Properties["repetitions"]
	assert.Equal(t, genai.TypeInteger, reps.Type)
	assert.True(t, *reps.Nullable)

	_, err = ConvertTools([]toolschema.Tool{{Name: "bad", Parameters: json.RawMessage(`nope`)}})
	assert.Error(t, err)
}

func TestExtractToolCalls(t *testing.T) {
	calls := ExtractToolCalls([]*genai.Part{
		{Text: "thinking"},
		{FunctionCall: &genai.FunctionCall{Name: "greet", Args: map[string]any{"name": "Ada"}}},
		{FunctionCall: &genai.FunctionCall{ID: "fc_9", Name: "greet", Args: map[string]any{}}},
		nil,
	})

	require.Len(t, calls, 2)
	assert.Equal(t, "call_1_greet", calls[0].ID)
	assert.JSONEq(t, `{"name":"Ada"}`, calls[0].Arguments)
	assert.Equal(t, "fc_9", calls[1].ID)
}
