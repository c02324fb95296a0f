package tool

import (
	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/schema"
)

// RegisterFunc builds a descriptor from the argument type T and registers
// it with a handler that decodes call arguments into T.
//
//	type SearchArgs struct {
//	    Query string `json:"query" jsonschema:"description=Search query"`
//	}
//
//	err := tool.RegisterFunc(registry, "search", "Search the web.",
//	    func(ctx context.Context, args SearchArgs) (string, error) {
//	        return doSearch(args.Query), nil
//	    },
//	)
func RegisterFunc[T any](r *Registry, name, doc string, fn TypedHandler[T], opts ...ModelOption) error {
	return BindTo(r, name, doc, fn, opts...)
}

// MustRegisterFunc is RegisterFunc that panics on error.
func MustRegisterFunc[T any](r *Registry, name, doc string, fn TypedHandler[T], opts ...ModelOption) {
	if err := RegisterFunc(r, name, doc, fn, opts...); err != nil {
		panic(err)
	}
}

// Registration is a descriptor paired with its handler, consumed by
// [Registry.Add].
type Registration struct {
	Tool    toolschema.Tool
	Handler Handler
}

// Func declares a tool whose parameters are the fields of T. It panics when
// T is not a struct.
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", weatherDoc, getWeather),
//	    tool.Func("get_response", responseDoc, getResponse),
//	)
func Func[T any](name, doc string, fn TypedHandler[T], opts ...ModelOption) Registration {
	t, h := MustBind(name, doc, fn, opts...)
	return Registration{Tool: t, Handler: h}
}

// Signature declares a tool from a parameter list and `:param` style
// documentation. It panics on an invalid declaration.
//
//	registry := tool.NewRegistry().Add(
//	    tool.Signature("greet", greetDoc, greet,
//	        tool.NewParam("name", schema.StringType),
//	        tool.NewParam("repetitions", schema.OptionalOf(schema.IntegerType)).WithDefault(),
//	    ),
//	)
func Signature(name, doc string, h Handler, params ...Param) Registration {
	return Registration{Tool: MustFromSignature(name, doc, params...), Handler: h}
}

// WithHandler declares a tool from a hand-written parameter schema, which
// is normalized with its descriptions kept. It panics when the schema is
// not an object.
func WithHandler(name, description string, params any, h Handler) Registration {
	t, err := Assemble(name, description, params, schema.KeepDescriptions())
	if err != nil {
		panic(err)
	}
	return Registration{Tool: t, Handler: h}
}

// WithTool pairs an already built descriptor with h.
func WithTool(t toolschema.Tool, h Handler) Registration {
	return Registration{Tool: t, Handler: h}
}

// Add registers every reg and returns r. It panics on the first
// registration Register rejects.
func (r *Registry) Add(regs ...Registration) *Registry {
	for _, reg := range regs {
		r.MustRegister(reg.Tool, reg.Handler)
	}
	return r
}
