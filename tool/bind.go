package tool

import (
	"context"
	"encoding/json"

	"github.com/spetersoncode/toolschema"
)

// Handler runs one call of a registered tool. Its result is the content of
// the tool message sent back to the model.
type Handler func(ctx context.Context, call toolschema.ToolCall) (string, error)

// TypedHandler receives the call arguments decoded into the parameter
// model T.
type TypedHandler[T any] func(ctx context.Context, args T) (string, error)

// Bind creates a Tool and Handler from a typed function.
// The parameter schema is generated from the fields of T and the
// description from doc, as in FromModel.
//
// Example:
//
//	type TranslateArgs struct {
//	    Text string `json:"text" jsonschema:"description=Text to translate"`
//	    From string `json:"from" jsonschema:"description=Source language"`
//	    To   string `json:"to" jsonschema:"description=Target language"`
//	}
//
//	t, h, err := tool.Bind("translate", "Translate text between languages",
//	    func(ctx context.Context, args TranslateArgs) (string, error) {
//	        // implementation
//	        return translated, nil
//	    }, tool.WithDescriptions(true))
func Bind[T any](name, doc string, fn TypedHandler[T], opts ...ModelOption) (toolschema.Tool, Handler, error) {
	t, err := FromModel[T](name, doc, opts...)
	if err != nil {
		return toolschema.Tool{}, nil, err
	}
	return t, typed(name, fn), nil
}

// MustBind is like Bind but panics on error.
// This is useful for initialization code where errors should be fatal.
func MustBind[T any](name, doc string, fn TypedHandler[T], opts ...ModelOption) (toolschema.Tool, Handler) {
	t, h, err := Bind(name, doc, fn, opts...)
	if err != nil {
		panic(err)
	}
	return t, h
}

// BindTo creates a tool from a typed function and registers it directly to a Registry.
// This is a convenience function combining Bind and Registry.Register.
func BindTo[T any](r *Registry, name, doc string, fn TypedHandler[T], opts ...ModelOption) error {
	t, h, err := Bind(name, doc, fn, opts...)
	if err != nil {
		return err
	}
	return r.Register(t, h)
}

// MustBindTo is like BindTo but panics on error.
func MustBindTo[T any](r *Registry, name, doc string, fn TypedHandler[T], opts ...ModelOption) {
	if err := BindTo(r, name, doc, fn, opts...); err != nil {
		panic(err)
	}
}

// typed adapts a TypedHandler to a Handler.
func typed[T any](name string, fn TypedHandler[T]) Handler {
	return func(ctx context.Context, call toolschema.ToolCall) (string, error) {
		var args T
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", &ErrInvalidArguments{Name: name, Err: err}
		}
		return fn(ctx, args)
	}
}
