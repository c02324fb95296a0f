package schema

// TypeRef describes the declared type of a parameter.
//
// It is a closed set of variants: Primitive, Null, Optional, Union, Sequence
// and Mapping. MapType matches them exhaustively.
type TypeRef interface {
	typeRef()
}

// Kind identifies a primitive type.
type Kind int

const (
	// KindUnknown is any primitive without a JSON Schema counterpart.
	// It maps to "string".
	KindUnknown Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
)

// Primitive is a scalar type.
type Primitive struct {
	Kind Kind
}

// Null is the absence-of-value type.
type Null struct{}

// Optional is a value of type Elem, or null.
type Optional struct {
	Elem TypeRef
}

// Union is a value of any of the member types.
type Union struct {
	Members []TypeRef
}

// Sequence is an ordered list of Elem values.
type Sequence struct {
	Elem TypeRef
}

// Mapping is a key/value map.
type Mapping struct {
	Key   TypeRef
	Value TypeRef
}

func (Primitive) typeRef() {}
func (Null) typeRef()      {}
func (Optional) typeRef()  {}
func (Union) typeRef()     {}
func (Sequence) typeRef()  {}
func (Mapping) typeRef()   {}

// Common type references.
var (
	StringType  TypeRef = Primitive{Kind: KindString}
	IntegerType TypeRef = Primitive{Kind: KindInteger}
	FloatType   TypeRef = Primitive{Kind: KindFloat}
	BooleanType TypeRef = Primitive{Kind: KindBoolean}
	NullType    TypeRef = Null{}
)

// OptionalOf returns the optional form of t.
func OptionalOf(t TypeRef) TypeRef {
	return Optional{Elem: t}
}

// UnionOf returns a union of the given members.
func UnionOf(members ...TypeRef) TypeRef {
	return Union{Members: members}
}

// SequenceOf returns a sequence of elem.
func SequenceOf(elem TypeRef) TypeRef {
	return Sequence{Elem: elem}
}

// MappingOf returns a mapping from key to value.
func MappingOf(key, value TypeRef) TypeRef {
	return Mapping{Key: key, Value: value}
}

var primitiveTokens = map[Kind]string{
	KindString:  TypeString,
	KindInteger: TypeInteger,
	KindFloat:   TypeNumber,
	KindBoolean: TypeBoolean,
}

// MapType converts a type reference to its JSON Schema type tokens.
//
// Unions, including Optional, are flattened and deduplicated; callers must
// not rely on the order of the returned tokens. Sequence and Mapping map to
// "array" and "object" without describing their elements. A nil reference
// (no declared type) and unknown primitives map to "string". MapType never
// fails.
func MapType(t TypeRef) Types {
	switch ref := t.(type) {
	case nil:
		return Types{TypeString}
	case Primitive:
		if tok, ok := primitiveTokens[ref.Kind]; ok {
			return Types{tok}
		}
		return Types{TypeString}
	case Null:
		return Types{TypeNull}
	case Optional:
		return mapUnion([]TypeRef{ref.Elem, Null{}})
	case Union:
		return mapUnion(ref.Members)
	case Sequence:
		return Types{TypeArray}
	case Mapping:
		return Types{TypeObject}
	default:
		return Types{TypeString}
	}
}

func mapUnion(members []TypeRef) Types {
	var out Types
	for _, m := range members {
		for _, tok := range MapType(m) {
			out = out.add(tok)
		}
	}
	if len(out) == 0 {
		return Types{TypeString}
	}
	return out
}
