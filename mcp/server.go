package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/tool"
)

// ServerOption configures NewServer.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name, version string
	logger        *slog.Logger
}

// WithName overrides the implementation name sent in the initialize reply.
func WithName(name string) ServerOption {
	return func(c *serverConfig) { c.name = name }
}

// WithVersion overrides the implementation version.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) { c.version = version }
}

// WithLogger receives a debug record per tool call.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) { c.logger = logger }
}

// NewServer serves the registry's executable tools over MCP. Descriptors
// registered without a handler are not listed. Input schemas are the
// strict parameter schemas as registered.
func NewServer(registry *tool.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := serverConfig{name: "toolschema", version: "1.0.0", logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := server.NewMCPServer(cfg.name, cfg.version, server.WithToolCapabilities(true))
	for _, t := range registry.Tools() {
		if h, ok := registry.Get(t.Name); ok && h != nil {
			s.AddTool(ToMCPTool(t), callHandler(registry, t.Name, cfg.logger))
		}
	}
	return s
}

// callHandler runs an MCP call through registry.Execute. MCP requests
// carry no call ID, so each call is given one. Failures are reported as
// error results rather than protocol errors.
func callHandler(registry *tool.Registry, name string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := encodeArguments(req.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		call := toolschema.ToolCall{ID: uuid.NewString(), Name: name, Arguments: args}
		logger.DebugContext(ctx, "mcp tool call", "tool", name, "call_id", call.ID)

		result, err := registry.Execute(ctx, call)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return ToMCPCallToolResult(result), nil
	}
}

func encodeArguments(args any) (string, error) {
	if args == nil {
		return "{}", nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("encode arguments: %w", err)
	}
	return string(data), nil
}

// ServeStdio serves registry over stdin and stdout until the input closes.
func ServeStdio(registry *tool.Registry, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(registry, opts...))
}
