package schema

// StringBuilder builds a "string" node.
type StringBuilder struct{ nodeBuilder }

// String starts a string schema.
func String() *StringBuilder { return &StringBuilder{newBuilder(TypeString)} }

// Desc sets the description.
func (b *StringBuilder) Desc(d string) *StringBuilder {
	b.node.Description = d
	return b
}

// Title sets the title. Normalize removes it.
func (b *StringBuilder) Title(t string) *StringBuilder {
	b.node.Title = t
	return b
}

// Format sets a hint such as "date-time". Normalize removes it.
func (b *StringBuilder) Format(f string) *StringBuilder {
	b.node.Format = f
	return b
}

// Default sets the default. Normalize removes it.
func (b *StringBuilder) Default(v string) *StringBuilder {
	b.node.Default = v
	return b
}

// Enum limits the value to values.
func (b *StringBuilder) Enum(values ...string) *StringBuilder {
	b.node.Enum = enumValues(values)
	return b
}

// Nullable adds "null" to the type.
func (b *StringBuilder) Nullable() *StringBuilder {
	b.node.Type = b.node.Type.Nullable()
	return b
}

// Required marks the field as required inside [ObjectBuilder.Field].
func (b *StringBuilder) Required() *RequiredField { return &RequiredField{builder: b} }

// NumericBuilder builds an "integer" (T = int) or "number" (T = float64)
// node.
type NumericBuilder[T int | float64] struct{ nodeBuilder }

// IntBuilder builds "integer" nodes.
type IntBuilder = NumericBuilder[int]

// NumberBuilder builds "number" nodes.
type NumberBuilder = NumericBuilder[float64]

// Int starts an integer schema.
func Int() *IntBuilder { return &IntBuilder{newBuilder(TypeInteger)} }

// Integer is Int.
func Integer() *IntBuilder { return Int() }

// Number starts a number schema.
func Number() *NumberBuilder { return &NumberBuilder{newBuilder(TypeNumber)} }

// Desc sets the description.
func (b *NumericBuilder[T]) Desc(d string) *NumericBuilder[T] {
	b.node.Description = d
	return b
}

// Default sets the default. Normalize removes it.
func (b *NumericBuilder[T]) Default(v T) *NumericBuilder[T] {
	b.node.Default = v
	return b
}

// Enum limits the value to values.
func (b *NumericBuilder[T]) Enum(values ...T) *NumericBuilder[T] {
	b.node.Enum = enumValues(values)
	return b
}

// Nullable adds "null" to the type.
func (b *NumericBuilder[T]) Nullable() *NumericBuilder[T] {
	b.node.Type = b.node.Type.Nullable()
	return b
}

// Required marks the field as required inside [ObjectBuilder.Field].
func (b *NumericBuilder[T]) Required() *RequiredField { return &RequiredField{builder: b} }

// BoolBuilder builds a "boolean" node.
type BoolBuilder struct{ nodeBuilder }

// Bool starts a boolean schema.
func Bool() *BoolBuilder { return &BoolBuilder{newBuilder(TypeBoolean)} }

// Boolean is Bool.
func Boolean() *BoolBuilder { return Bool() }

// Desc sets the description.
func (b *BoolBuilder) Desc(d string) *BoolBuilder {
	b.node.Description = d
	return b
}

// Default sets the default. Normalize removes it.
func (b *BoolBuilder) Default(v bool) *BoolBuilder {
	b.node.Default = v
	return b
}

// Nullable adds "null" to the type.
func (b *BoolBuilder) Nullable() *BoolBuilder {
	b.node.Type = b.node.Type.Nullable()
	return b
}

// Required marks the field as required inside [ObjectBuilder.Field].
func (b *BoolBuilder) Required() *RequiredField { return &RequiredField{builder: b} }
