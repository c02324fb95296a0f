package tool

import (
	"encoding/json"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/docstring"
	"github.com/spetersoncode/toolschema/schema"
)

// ModelOption configures descriptor construction from a parameter model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	descriptions bool
}

// WithDescriptions controls whether property descriptions survive
// normalization. They are pruned by default.
func WithDescriptions(keep bool) ModelOption {
	return func(c *modelConfig) {
		c.descriptions = keep
	}
}

func (c modelConfig) normalizeOptions() []schema.NormalizeOption {
	if c.descriptions {
		return []schema.NormalizeOption{schema.KeepDescriptions()}
	}
	return nil
}

// FromModel builds the descriptor of a callable whose parameters are the
// fields of the struct type T.
//
// The documentation is split into short and long descriptions; the tool
// description joins them with a blank line. Nested structs are inlined.
//
//	type GetWeatherArgs struct {
//	    Location string  `json:"location" jsonschema:"description=City name"`
//	    Unit     *string `json:"unit" jsonschema:"enum=celsius,enum=fahrenheit"`
//	}
//
//	t, err := tool.FromModel[GetWeatherArgs]("get_weather", "Get the current weather.")
func FromModel[T any](name, doc string, opts ...ModelOption) (toolschema.Tool, error) {
	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params, err := schema.ModelJSON[T]()
	if err != nil {
		return toolschema.Tool{}, err
	}
	return Assemble(name, docstring.ParseStructured(doc).Description(name), params, cfg.normalizeOptions()...)
}

// MustFromModel is like FromModel but panics on error.
func MustFromModel[T any](name, doc string, opts ...ModelOption) toolschema.Tool {
	t, err := FromModel[T](name, doc, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// SchemaFor returns the strict parameter schema of the struct type T with
// property descriptions kept.
func SchemaFor[T any]() (json.RawMessage, error) {
	params, err := schema.ModelJSON[T]()
	if err != nil {
		return nil, err
	}
	return schema.NormalizeJSON(params, schema.KeepDescriptions())
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	s, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return s
}
