package schema

// ArrayBuilder builds an "array" node.
type ArrayBuilder struct{ nodeBuilder }

// Array starts an array schema whose elements follow items.
func Array(items Builder) *ArrayBuilder {
	b := &ArrayBuilder{newBuilder(TypeArray)}
	b.node.Items = items.Node()
	return b
}

// Desc sets the description.
func (b *ArrayBuilder) Desc(d string) *ArrayBuilder {
	b.node.Description = d
	return b
}

// Nullable adds "null" to the type.
func (b *ArrayBuilder) Nullable() *ArrayBuilder {
	b.node.Type = b.node.Type.Nullable()
	return b
}

// Required marks the field as required inside [ObjectBuilder.Field].
func (b *ArrayBuilder) Required() *RequiredField { return &RequiredField{builder: b} }
