package tool

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/schema"
)

type entry struct {
	tool    toolschema.Tool
	handler Handler
}

// Registry holds descriptors together with the handlers that serve them.
//
// A descriptor is stored exactly as registered and every read returns that
// same value; nothing is rebuilt per request. The zero Registry is not
// usable, create one with NewRegistry. All methods are safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register stores t under t.Name. A nil handler marks a tool that is
// executed by the caller, not by the registry.
//
// A descriptor flagged Strict must satisfy the strict-mode rules; one that
// does not is rejected with an error wrapping ErrNotStrict.
func (r *Registry) Register(t toolschema.Tool, h Handler) error {
	if t.Name == "" {
		return ErrEmptyName
	}
	if t.Strict {
		if err := checkStrict(t); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[t.Name]; dup {
		return &ErrToolAlreadyRegistered{Name: t.Name}
	}
	r.entries[t.Name] = entry{tool: t, handler: h}
	return nil
}

func checkStrict(t toolschema.Tool) error {
	tree, err := t.Schema()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotStrict, t.Name, err)
	}
	if tree == nil {
		return nil
	}
	if err := schema.Check(tree); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotStrict, t.Name, err)
	}
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(t toolschema.Tool, h Handler) {
	if err := r.Register(t, h); err != nil {
		panic(err)
	}
}

// Unregister removes name. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.entries, name)
	r.mu.Unlock()
}

func (r *Registry) lookup(name string) (entry, bool) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	return e, ok
}

// Get returns the handler registered for name. The handler is nil for
// caller-executed tools.
func (r *Registry) Get(name string) (Handler, bool) {
	e, ok := r.lookup(name)
	return e.handler, ok
}

// GetTool returns the descriptor registered for name.
func (r *Registry) GetTool(name string) (toolschema.Tool, bool) {
	e, ok := r.lookup(name)
	return cloneTool(e.tool), ok
}

// Tools returns every descriptor, sorted by name, ready to be attached to
// a chat request.
func (r *Registry) Tools() []toolschema.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.namesLocked()
	tools := make([]toolschema.Tool, len(names))
	for i, name := range names {
		tools[i] = cloneTool(r.entries[name].tool)
	}
	return tools
}

// cloneTool copies the parameter bytes so callers cannot alter a
// registered descriptor.
func cloneTool(t toolschema.Tool) toolschema.Tool {
	t.Parameters = bytes.Clone(t.Parameters)
	return t
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Execute runs the handler of call.Name.
//
// A tool that is not registered, or has no handler, yields *ErrToolNotFound.
// A handler error is not returned: it becomes the Content of a result with
// IsError set, so it can be passed back to the model.
func (r *Registry) Execute(ctx context.Context, call toolschema.ToolCall) (toolschema.ToolResult, error) {
	e, ok := r.lookup(call.Name)
	if !ok || e.handler == nil {
		return toolschema.ToolResult{}, &ErrToolNotFound{Name: call.Name}
	}

	res := toolschema.ToolResult{ToolCallID: call.ID}
	content, err := e.handler(ctx, call)
	if err != nil {
		res.Content = err.Error()
		res.IsError = true
		return res, nil
	}
	res.Content = content
	return res, nil
}

// ExecuteAll runs calls concurrently. results[i] answers calls[i]; lookup
// failures are reported as error results.
func (r *Registry) ExecuteAll(ctx context.Context, calls []toolschema.ToolCall) []toolschema.ToolResult {
	results := make([]toolschema.ToolResult, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Execute(ctx, call)
			if err != nil {
				res = toolschema.ToolResult{ToolCallID: call.ID, Content: err.Error(), IsError: true}
			}
			results[i] = res
		}()
	}
	wg.Wait()
	return results
}
