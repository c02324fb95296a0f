package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/provider/google"
	"github.com/spetersoncode/toolschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// setEnv isolates the command from the caller's environment.
func setEnv(t *testing.T, kv ...string) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY",
		"TOOLSCHEMA_API_KEY",
		"TOOLSCHEMA_MODEL",
		"TOOLSCHEMA_BASE_URL",
		"TOOLSCHEMA_LOG_LEVEL",
		"TOOLSCHEMA_TIMEOUT",
		"TOOLSCHEMA_MAX_ATTEMPTS",
	} {
		t.Setenv(key, "")
	}
	for i := 0; i+1 < len(kv); i += 2 {
		t.Setenv(kv[i], kv[i+1])
	}
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestPrint_OpenAI(t *testing.T) {
	setEnv(t)

	code, out, errOut := execute(t, "print", "--check")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "descriptors satisfy strict mode")

	var tools []toolschema.Tool
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	require.Len(t, tools, 3)

	names := []string{tools[0].Name, tools[1].Name, tools[2].Name}
	assert.Equal(t, []string{"get_response", "get_weather", "greet"}, names)

	for _, tl := range tools {
		assert.True(t, tl.Strict, tl.Name)
		assert.NotEmpty(t, tl.Description, tl.Name)
		m, err := tl.Schema()
		require.NoError(t, err)
		assert.NoError(t, schema.Check(m), tl.Name)
	}

	weather := tools[1]
	assert.Equal(t, "Fetch the weather for a given location.\n\nExtended docstring...", weather.Description)
	wm, err := weather.Schema()
	require.NoError(t, err)
	assert.Equal(t, []any{"location", "unit"}, wm["required"])
	assert.Equal(t, false, wm["additionalProperties"])
	wprops := wm["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, wprops["location"])
	assert.Equal(t, map[string]any{"type": []any{"string", "null"}}, wprops["unit"])

	greet := tools[2]
	assert.Equal(t, "Greet someone.", greet.Description)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "description": "Who to greet"},
			"repetitions": {"type": ["integer", "null"], "description": "How many times to repeat the greeting"}
		},
		"required": ["name", "repetitions"],
		"additionalProperties": false
	}`, string(greet.Parameters))
}

func TestPrint_NestedModel(t *testing.T) {
	setEnv(t)

	code, out, errOut := execute(t, "print")
	require.Equal(t, 0, code, errOut)

	var tools []toolschema.Tool
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	m, err := tools[0].Schema()
	require.NoError(t, err)

	props := m["properties"].(map[string]any)
	item := props["messages"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, false, item["additionalProperties"])
	assert.ElementsMatch(t, []any{"role", "content"}, item["required"])

	role := item["properties"].(map[string]any)["role"].(map[string]any)
	assert.Equal(t, []any{"user", "assistant"}, role["enum"])
	assert.ElementsMatch(t, []any{"messages", "tools"}, m["required"])
	assert.False(t, strings.Contains(out, "$ref"))
}

func TestPrint_Formats(t *testing.T) {
	setEnv(t)

	t.Run("anthropic", func(t *testing.T) {
		code, out, errOut := execute(t, "print", "--format", "anthropic")
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, `"input_schema"`)
		assert.Contains(t, out, `"get_weather"`)
	})

	t.Run("google", func(t *testing.T) {
		code, out, errOut := execute(t, "print", "--format", "google")
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, `"functionDeclarations"`)
		assert.Contains(t, out, `"nullable": true`)
	})

	t.Run("google keeps the nullable unit type", func(t *testing.T) {
		tools := exampleRegistry(nil).Tools()
		s, err := google.ConvertJSONSchemaToGenaiSchema(tools[1].Parameters)
		require.NoError(t, err)
		unit := s.Properties["unit"]
		require.NotNil(t, unit)
		assert.Equal(t, genai.TypeString, unit.Type)
		require.NotNil(t, unit.Nullable)
		assert.True(t, *unit.Nullable)
	})

	t.Run("unknown", func(t *testing.T) {
		code, _, errOut := execute(t, "print", "--format", "cohere")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "unknown format")
	})
}

func TestChat_MissingKey(t *testing.T) {
	setEnv(t)

	code, out, errOut := execute(t, "chat")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no API key")
}

func TestChat_InvalidConfig(t *testing.T) {
	setEnv(t, "TOOLSCHEMA_LOG_LEVEL", "loud")

	code, _, errOut := execute(t, "print")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid config")
}

func TestChat_Success(t *testing.T) {
	var request map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &request))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"logprobs": null,
				"message": {"role": "assistant", "content": "Done.", "refusal": null}
			}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`)
	}))
	defer srv.Close()

	setEnv(t, "OPENAI_API_KEY", "sk-test", "TOOLSCHEMA_BASE_URL", srv.URL, "TOOLSCHEMA_MAX_ATTEMPTS", "1")

	code, out, errOut := execute(t, "chat")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, `"content": "Done."`)
	assert.Equal(t, "gpt-4o", request["model"])

	messages := request["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, examplePrompt, messages[0].(map[string]any)["content"])

	tools := request["tools"].([]any)
	require.Len(t, tools, 3)
	for _, tl := range tools {
		fn := tl.(map[string]any)["function"].(map[string]any)
		assert.Equal(t, true, fn["strict"])
	}
}

func TestChat_RemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	setEnv(t, "TOOLSCHEMA_API_KEY", "sk-bad", "TOOLSCHEMA_BASE_URL", srv.URL)

	code, out, errOut := execute(t, "chat")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "status=401")
	assert.Contains(t, errOut, "invalid_api_key")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 2, exitCode(toolschema.NewConfigError("missing")))
	assert.Equal(t, 1, exitCode(toolschema.NewRemoteError("rejected", 401, "", 0, nil)))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}

func TestExampleHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("get_weather", func(t *testing.T) {
		registry := exampleRegistry(nil)
		res, err := registry.Execute(ctx, toolschema.ToolCall{ID: "1", Name: "get_weather", Arguments: `{"location":"Paris","unit":null}`})
		require.NoError(t, err)
		assert.JSONEq(t, `{"location":"Paris","unit":null,"temp":"65F"}`, res.Content)
	})

	t.Run("greet", func(t *testing.T) {
		registry := exampleRegistry(nil)
		res, err := registry.Execute(ctx, toolschema.ToolCall{ID: "2", Name: "greet", Arguments: `{"name":"Ada","repetitions":2}`})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Ada! Hello, Ada!", res.Content)

		res, err = registry.Execute(ctx, toolschema.ToolCall{ID: "3", Name: "greet", Arguments: `{"name":"Ada","repetitions":null}`})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Ada!", res.Content)
	})

	t.Run("get_response", func(t *testing.T) {
		fake := &fakeProvider{resp: &toolschema.Response{Content: "4"}}
		registry := exampleRegistry(func() (toolschema.ChatProvider, error) { return fake, nil })

		res, err := registry.Execute(ctx, toolschema.ToolCall{
			ID:        "4",
			Name:      "get_response",
			Arguments: `{"messages":[{"role":"user","content":"2+2?"}],"tools":[{"type":"function","function":{"name":"calc","description":"Calc","strict":true}}]}`,
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, res.Content, `"content":"4"`)

		require.Len(t, fake.messages, 1)
		assert.Equal(t, toolschema.RoleUser, fake.messages[0].Role)
		require.Len(t, fake.tools, 1)
		assert.Equal(t, "calc", fake.tools[0].Name)
	})

	t.Run("get_response without provider", func(t *testing.T) {
		registry := exampleRegistry(func() (toolschema.ChatProvider, error) {
			return nil, toolschema.NewConfigError("no API key")
		})
		res, err := registry.Execute(ctx, toolschema.ToolCall{ID: "5", Name: "get_response", Arguments: `{"messages":[]}`})
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

type fakeProvider struct {
	resp     *toolschema.Response
	messages []toolschema.Message
	tools    []toolschema.Tool
}

func (f *fakeProvider) Chat(ctx context.Context, messages []toolschema.Message, tools []toolschema.Tool) (*toolschema.Response, error) {
	f.messages = messages
	f.tools = tools
	return f.resp, nil
}
