package mcp

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spetersoncode/toolschema"
)

// RemoteRegistry imports the tools of an MCP server as strict descriptors
// and forwards calls to it. It is safe for concurrent use.
//
// The imported list is a snapshot taken at construction; Refresh replaces
// it.
type RemoteRegistry struct {
	client *client.Client

	mu    sync.RWMutex
	tools []toolschema.Tool // sorted by name
}

// NewRemoteRegistry runs command as an MCP server on stdio and imports its
// tools.
func NewRemoteRegistry(ctx context.Context, command string, env []string, args ...string) (*RemoteRegistry, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("mcp: start %s: %w", command, err)
	}
	return NewRemoteRegistryFromClient(ctx, c)
}

// NewRemoteRegistryFromClient starts a session on c and imports the
// server's tools. c is closed when the session cannot be set up.
func NewRemoteRegistryFromClient(ctx context.Context, c *client.Client) (*RemoteRegistry, error) {
	r := &RemoteRegistry{client: c}
	if err := r.open(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return r, nil
}

func (r *RemoteRegistry) open(ctx context.Context) error {
	if err := r.client.Start(ctx); err != nil {
		return fmt.Errorf("mcp: start client: %w", err)
	}

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "toolschema-client", Version: "1.0.0"}
	if _, err := r.client.Initialize(ctx, req); err != nil {
		return fmt.Errorf("mcp: initialize: %w", err)
	}
	return r.Refresh(ctx)
}

// Close ends the session.
func (r *RemoteRegistry) Close() error {
	return r.client.Close()
}

// Refresh lists and normalizes the server's tools again. On error the
// previous snapshot is kept.
func (r *RemoteRegistry) Refresh(ctx context.Context) error {
	listed, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("mcp: list tools: %w", err)
	}
	tools, err := FromMCPTools(listed.Tools)
	if err != nil {
		return err
	}
	slices.SortFunc(tools, func(a, b toolschema.Tool) int {
		return strings.Compare(a.Name, b.Name)
	})

	r.mu.Lock()
	r.tools = tools
	r.mu.Unlock()
	return nil
}

// Tools returns copies of the imported descriptors sorted by name.
func (r *RemoteRegistry) Tools() []toolschema.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]toolschema.Tool, len(r.tools))
	for i, t := range r.tools {
		out[i] = clone(t)
	}
	return out
}

// GetTool returns the descriptor imported under name.
func (r *RemoteRegistry) GetTool(name string) (toolschema.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index(name)
	if !ok {
		return toolschema.Tool{}, false
	}
	return clone(r.tools[i]), true
}

// Has reports whether name was imported.
func (r *RemoteRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index(name)
	return ok
}

// Names returns the imported names in sorted order.
func (r *RemoteRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of imported tools.
func (r *RemoteRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

func (r *RemoteRegistry) index(name string) (int, bool) {
	return slices.BinarySearchFunc(r.tools, name, func(t toolschema.Tool, name string) int {
		return strings.Compare(t.Name, name)
	})
}

// Execute forwards call to the server. A transport failure becomes an
// error result so the model sees it like any other tool failure.
func (r *RemoteRegistry) Execute(ctx context.Context, call toolschema.ToolCall) (toolschema.ToolResult, error) {
	res, err := r.client.CallTool(ctx, ToMCPCallToolRequest(call))
	if err != nil {
		return toolschema.ToolResult{ToolCallID: call.ID, Content: err.Error(), IsError: true}, nil
	}
	return FromMCPCallToolResult(call.ID, res), nil
}

func clone(t toolschema.Tool) toolschema.Tool {
	t.Parameters = bytes.Clone(t.Parameters)
	return t
}
