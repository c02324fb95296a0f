package schema

import "fmt"

// ObjectBuilder builds an "object" node with ordered properties.
type ObjectBuilder struct{ nodeBuilder }

// Object starts an object schema with no properties.
func Object() *ObjectBuilder { return &ObjectBuilder{nodeBuilder{node: NewObject()}} }

// Desc sets the description of the object itself.
func (b *ObjectBuilder) Desc(d string) *ObjectBuilder {
	b.node.Description = d
	return b
}

// Title sets the title. Normalize removes it.
func (b *ObjectBuilder) Title(t string) *ObjectBuilder {
	b.node.Title = t
	return b
}

// Field declares property name. field is a Builder, or a *RequiredField
// from a builder's Required method. Redeclaring a name replaces its schema
// in place. Any other argument type panics.
func (b *ObjectBuilder) Field(name string, field any) *ObjectBuilder {
	switch f := field.(type) {
	case *RequiredField:
		b.node.SetProperty(name, f.builder.Node())
		b.node.AddRequired(name)
	case Builder:
		b.node.SetProperty(name, f.Node())
	default:
		panic(fmt.Sprintf("schema: Field %q requires a Builder or *RequiredField, got %T", name, field))
	}
	return b
}

// AdditionalProperties sets whether undeclared properties are accepted.
func (b *ObjectBuilder) AdditionalProperties(allowed bool) *ObjectBuilder {
	b.node.AdditionalProperties = ptr(allowed)
	return b
}

// StrictMode closes this object only: additionalProperties becomes false
// and every declared field required. Use Normalize for a whole tree.
func (b *ObjectBuilder) StrictMode() *ObjectBuilder {
	b.AdditionalProperties(false)
	for _, name := range b.node.PropertyNames() {
		b.node.AddRequired(name)
	}
	return b
}

// Nullable adds "null" to the type.
func (b *ObjectBuilder) Nullable() *ObjectBuilder {
	b.node.Type = b.node.Type.Nullable()
	return b
}

// Required marks the object as required when nested in another object.
func (b *ObjectBuilder) Required() *RequiredField { return &RequiredField{builder: b} }

// RequiredField is a Builder marked as required in its parent object.
type RequiredField struct {
	builder Builder
}
