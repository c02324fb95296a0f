package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/internal/retry"
	"github.com/spetersoncode/toolschema/provider/openai"
)

// examplePrompt asks the model to use both example tools.
const examplePrompt = "call get weather for New York City and use get_response to calculate 2+2"

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Send the example conversation with the example tools attached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := a.provider()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			tools := exampleRegistry(a.provider).Tools()
			messages := []toolschema.Message{{Role: toolschema.RoleUser, Content: examplePrompt}}

			a.logger.Info("sending chat request", "model", a.cfg.Model, "tools", len(tools))
			resp, err := provider.Chat(ctx, messages, tools)
			if err != nil {
				return err
			}
			for _, call := range resp.ToolCalls {
				a.logger.Info("model requested tool", "tool", call.Name, "call_id", call.ID)
			}
			return writeResponse(a, resp)
		},
	}
}

// writeResponse prints the endpoint's response body as indented JSON.
func writeResponse(a *app, resp *toolschema.Response) error {
	var body any = resp
	if len(resp.Raw) > 0 {
		var raw any
		if err := json.Unmarshal(resp.Raw, &raw); err == nil {
			body = raw
		}
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

// provider builds the OpenAI client from the loaded configuration.
func (a *app) provider() (toolschema.ChatProvider, error) {
	key, err := a.cfg.RequireAPIKey()
	if err != nil {
		return nil, err
	}

	r := retry.DefaultConfig().WithAttempts(a.cfg.MaxAttempts).WithLogger(a.logger)
	client, err := openai.New(key,
		openai.WithModel(a.cfg.Model),
		openai.WithBaseURL(a.cfg.BaseURL),
		openai.WithHTTPClient(&http.Client{Timeout: a.cfg.Timeout}),
		openai.WithRetry(r),
		openai.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
