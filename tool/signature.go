package tool

import (
	"fmt"

	"github.com/spetersoncode/toolschema"
	"github.com/spetersoncode/toolschema/docstring"
	"github.com/spetersoncode/toolschema/schema"
)

// BuildParameterSchema builds the raw parameter object of a signature.
//
// Properties follow declaration order. A property's description is the
// parameter's own description or, failing that, the one documented for it;
// empty descriptions are omitted. Parameters without a default are marked
// required. The result is not normalized.
func BuildParameterSchema(params []Param, doc docstring.Bundle) *schema.Node {
	root := schema.NewObject()
	for _, p := range params {
		prop := nodeFor(p.Type)
		prop.Description = p.Description
		if prop.Description == "" {
			prop.Description, _ = doc.Lookup(p.Name)
		}
		root.SetProperty(p.Name, prop)
		if !p.HasDefault {
			root.AddRequired(p.Name)
		}
	}
	return root
}

// nodeFor maps a declared type to a property node. Sequences also carry
// the schema of their elements.
func nodeFor(t schema.TypeRef) *schema.Node {
	n := &schema.Node{Type: schema.MapType(t)}
	if elem, ok := sequenceElem(t); ok {
		n.Items = nodeFor(elem)
	}
	return n
}

func sequenceElem(t schema.TypeRef) (schema.TypeRef, bool) {
	switch v := t.(type) {
	case schema.Sequence:
		return v.Elem, true
	case schema.Optional:
		return sequenceElem(v.Elem)
	default:
		return nil, false
	}
}

// FromSignature builds the descriptor of a callable from its declared
// parameters and its `:param` style documentation.
//
//	t, err := tool.FromSignature("greet", `Greet someone.
//
//	:param name: Person to greet
//	:param repetitions: How many times`,
//		tool.NewParam("name", schema.StringType),
//		tool.NewParam("repetitions", schema.OptionalOf(schema.IntegerType)).WithDefault(),
//	)
//
// The description is the documentation summary, or a placeholder when
// there is none. Property descriptions are kept.
func FromSignature(name, doc string, params ...Param) (toolschema.Tool, error) {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Name == "" {
			return toolschema.Tool{}, fmt.Errorf("%w: empty name in %s", ErrInvalidParam, name)
		}
		if seen[p.Name] {
			return toolschema.Tool{}, fmt.Errorf("%w: %s.%s", ErrDuplicateParam, name, p.Name)
		}
		seen[p.Name] = true
	}

	bundle := docstring.Parse(doc)
	return Assemble(name, bundle.Summary, BuildParameterSchema(params, bundle), schema.KeepDescriptions())
}

// MustFromSignature is like FromSignature but panics on error.
func MustFromSignature(name, doc string, params ...Param) toolschema.Tool {
	t, err := FromSignature(name, doc, params...)
	if err != nil {
		panic(err)
	}
	return t
}
