package tool

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	Role    string `json:"role" jsonschema:"enum=user,enum=assistant,description=Author of the message"`
	Content string `json:"content" jsonschema:"description=Message text"`
}

type responseArgs struct {
	Messages []message `json:"messages" jsonschema:"description=Conversation so far"`
	Model    *string   `json:"model,omitempty" jsonschema:"description=Model override"`
}

const responseDoc = `Get a response from the model.

    Sends the conversation to the chat endpoint
    and returns the reply.

    :param messages: ignored by the structured parser
`

func TestFromModel(t *testing.T) {
	tool, err := FromModel[responseArgs]("get_response", responseDoc)
	require.NoError(t, err)

	assert.Equal(t, "get_response", tool.Name)
	assert.Equal(t,
		"Get a response from the model.\n\nSends the conversation to the chat endpoint\nand returns the reply.",
		tool.Description)
	assert.True(t, tool.Strict)

	params := decodeParams(t, tool)
	require.NoError(t, schema.Check(params))
	assert.ElementsMatch(t, []any{"messages", "model"}, params["required"])
	assert.NotContains(t, string(tool.Parameters), "description", "descriptions are pruned by default")
	assert.NotContains(t, string(tool.Parameters), "$ref")

	item := params["properties"].(map[string]any)["messages"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, false, item["additionalProperties"])
	assert.ElementsMatch(t, []any{"role", "content"}, item["required"])
	assert.Equal(t, []any{"user", "assistant"}, item["properties"].(map[string]any)["role"].(map[string]any)["enum"])
}

func TestFromModel_WithDescriptions(t *testing.T) {
	tool, err := FromModel[responseArgs]("get_response", responseDoc, WithDescriptions(true))
	require.NoError(t, err)

	params := decodeParams(t, tool)
	require.NoError(t, schema.Check(params))
	messages := params["properties"].(map[string]any)["messages"].(map[string]any)
	assert.Equal(t, "Conversation so far", messages["description"])
}

func TestFromModel_FieldOrder(t *testing.T) {
	type args struct {
		Zeta  string   `json:"zeta"`
		Alpha *int     `json:"alpha"`
		Mid   []string `json:"mid"`
	}
	tool, err := FromModel[args]("ordered", "Ordered.")
	require.NoError(t, err)

	params := decodeParams(t, tool)
	alpha := params["properties"].(map[string]any)["alpha"].(map[string]any)
	assert.Equal(t, []any{"integer", "null"}, alpha["type"])

	got := string(tool.Parameters)
	assert.Less(t, strings.Index(got, `"zeta"`), strings.Index(got, `"alpha"`), got)
	assert.Less(t, strings.Index(got, `"alpha"`), strings.Index(got, `"mid"`), got)
}

func TestFromModel_Placeholder(t *testing.T) {
	tool, err := FromModel[responseArgs]("get_response", "")
	require.NoError(t, err)
	assert.Equal(t, "get_response (no description)", tool.Description)
}

func TestFromModel_NotStruct(t *testing.T) {
	_, err := FromModel[[]string]("bad", "")
	assert.ErrorIs(t, err, schema.ErrNotObject)

	assert.Panics(t, func() { MustFromModel[int]("bad", "") })
}

func TestSchemaFor(t *testing.T) {
	data, err := SchemaFor[testArgs]()
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(data, &tree))
	require.NoError(t, schema.Check(tree))
	assert.Equal(t, "Search query", tree["properties"].(map[string]any)["query"].(map[string]any)["description"])

	assert.Equal(t, data, MustSchemaFor[testArgs]())
}

func TestBind(t *testing.T) {
	tool, h, err := Bind("get_response", responseDoc, func(ctx context.Context, args responseArgs) (string, error) {
		return args.Messages[len(args.Messages)-1].Content, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "get_response", tool.Name)

	out, err := h(context.Background(), toolschema.ToolCall{
		Name:      "get_response",
		Arguments: `{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}],"model":null}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestBindTo(t *testing.T) {
	r := NewRegistry()
	MustBindTo(r, "search", "Search the web", func(ctx context.Context, args testArgs) (string, error) {
		return args.Query, nil
	})

	err := BindTo(r, "search", "Again", func(ctx context.Context, args testArgs) (string, error) {
		return "", nil
	})
	var dup *ErrToolAlreadyRegistered
	assert.ErrorAs(t, err, &dup)

	res, err := r.Execute(context.Background(), toolschema.ToolCall{ID: "c", Name: "search", Arguments: `{"query":"go"}`})
	require.NoError(t, err)
	assert.Equal(t, "go", res.Content)
}
