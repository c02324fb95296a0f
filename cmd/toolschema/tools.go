package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/schema"
	"github.com/spetersoncode/toolschema/tool"
)

// WeatherArgs are the arguments of get_weather.
type WeatherArgs struct {
	Location string  `json:"location" jsonschema:"description=Location to get weather for"`
	Unit     *string `json:"unit" jsonschema:"description=Temp unit: 'C' or 'F' (null if unspecified)"`
}

// ChatMessage is one turn of the conversation passed to get_response.
type ChatMessage struct {
	Role    string `json:"role" jsonschema:"enum=user,enum=assistant,description=Message author"`
	Content string `json:"content" jsonschema:"description=Message content"`
}

// ResponseArgs are the arguments of get_response.
type ResponseArgs struct {
	Messages []ChatMessage    `json:"messages" jsonschema:"description=Conversation so far"`
	Tools    []map[string]any `json:"tools,omitempty" jsonschema:"description=Optional tool schemas"`
}

const weatherDoc = `
Fetch the weather for a given location.

Extended docstring...
`

const responseDoc = `
Return a response from the LLM for the conversation in messages.
Possibly supply a set of function tools it may call.
`

const greetDoc = `Greet someone.

:param name: Who to greet
:param repetitions: How many times to repeat the greeting
`

// providerFunc returns the chat provider used by get_response.
type providerFunc func() (toolschema.ChatProvider, error)

// exampleRegistry builds the registry of example tools. newProvider is only
// called when get_response runs.
func exampleRegistry(newProvider providerFunc) *tool.Registry {
	return tool.NewRegistry().Add(
		tool.Func("get_weather", weatherDoc, getWeather),
		tool.Func("get_response", responseDoc, getResponse(newProvider)),
		tool.Signature("greet", greetDoc, greet,
			tool.NewParam("name", schema.StringType),
			tool.NewParam("repetitions", schema.OptionalOf(schema.IntegerType)).WithDefault(),
		),
	)
}

func getWeather(ctx context.Context, args WeatherArgs) (string, error) {
	data, err := json.Marshal(map[string]any{
		"location": args.Location,
		"unit":     args.Unit,
		"temp":     "65F",
	})
	return string(data), err
}

func getResponse(newProvider providerFunc) tool.TypedHandler[ResponseArgs] {
	return func(ctx context.Context, args ResponseArgs) (string, error) {
		provider, err := newProvider()
		if err != nil {
			return "", err
		}

		messages := make([]toolschema.Message, len(args.Messages))
		for i, m := range args.Messages {
			messages[i] = toolschema.Message{Role: toolschema.Role(m.Role), Content: m.Content}
		}

		tools := make([]toolschema.Tool, 0, len(args.Tools))
		for _, raw := range args.Tools {
			data, err := json.Marshal(raw)
			if err != nil {
				return "", err
			}
			var t toolschema.Tool
			if err := json.Unmarshal(data, &t); err != nil {
				return "", fmt.Errorf("decode tool: %w", err)
			}
			tools = append(tools, t)
		}

		resp, err := provider.Chat(ctx, messages, tools)
		if err != nil {
			return "", err
		}
		if len(resp.Raw) > 0 {
			return string(resp.Raw), nil
		}
		data, err := json.Marshal(resp)
		return string(data), err
	}
}

type greetArgs struct {
	Name        string `json:"name"`
	Repetitions *int   `json:"repetitions"`
}

func greet(ctx context.Context, call toolschema.ToolCall) (string, error) {
	var args greetArgs
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	n := 1
	if args.Repetitions != nil && *args.Repetitions > 0 {
		n = *args.Repetitions
	}
	return strings.TrimSpace(strings.Repeat("Hello, "+args.Name+"! ", n)), nil
}
