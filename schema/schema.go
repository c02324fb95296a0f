package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Builder is the interface implemented by all schema builders.
// It provides a fluent API for constructing JSON Schema objects.
type Builder interface {
	// Build serializes the schema to json.RawMessage.
	// Returns an error if the schema is invalid.
	Build() (json.RawMessage, error)

	// MustBuild is like Build but panics on error.
	MustBuild() json.RawMessage

	// Node returns the underlying schema tree for composition.
	Node() *Node
}

// Properties is the ordered property mapping of an object node.
type Properties = orderedmap.OrderedMap[string, *Node]

// Node is one node of a JSON Schema tree.
//
// Title, Format, Default and Examples exist so that raw trees can carry the
// metadata strict mode forbids; Normalize removes them.
type Node struct {
	Type        Types  `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Default     any    `json:"default,omitempty"`
	Examples    []any  `json:"examples,omitempty"`

	// Array kind
	Items *Node `json:"items,omitempty"`

	// Object kind
	Properties           *Properties `json:"properties,omitempty"`
	Required             []string    `json:"required,omitempty"`
	AdditionalProperties *bool       `json:"additionalProperties,omitempty"`

	AnyOf []*Node `json:"anyOf,omitempty"`
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{
		Type:       Types{TypeObject},
		Properties: orderedmap.New[string, *Node](),
	}
}

// IsObject reports whether the node's type includes "object".
func (n *Node) IsObject() bool {
	return n != nil && n.Type.Has(TypeObject)
}

// SetProperty adds or replaces a property, keeping first-insertion order.
func (n *Node) SetProperty(name string, prop *Node) {
	if n.Properties == nil {
		n.Properties = orderedmap.New[string, *Node]()
	}
	n.Properties.Set(name, prop)
}

// Property returns the named property, if present.
func (n *Node) Property(name string) (*Node, bool) {
	if n.Properties == nil {
		return nil, false
	}
	return n.Properties.Get(name)
}

// PropertyNames returns the property names in declaration order.
func (n *Node) PropertyNames() []string {
	if n.Properties == nil {
		return nil
	}
	names := make([]string, 0, n.Properties.Len())
	for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// AddRequired marks a property as required without duplicating it.
func (n *Node) AddRequired(name string) {
	for _, r := range n.Required {
		if r == name {
			return
		}
	}
	n.Required = append(n.Required, name)
}

// Map converts the node to the generic JSON tree shape consumed by Normalize.
func (n *Node) Map() (map[string]any, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("schema: encode node: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("schema: decode node: %w", err)
	}
	return m, nil
}

// Sentinel errors for schema validation.
var (
	// ErrNilItems is returned when an array has no items schema.
	ErrNilItems = errors.New("schema: array requires items schema")

	// ErrEnumType is returned when an enum value does not match the node type.
	ErrEnumType = errors.New("schema: enum value does not match type")
)

// ValidationError represents a schema validation failure.
type ValidationError struct {
	Field   string // The field name (for objects)
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema: field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("schema: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validate checks the schema for internal consistency.
func (n *Node) validate() error {
	for _, v := range n.Enum {
		if !n.acceptsValue(v) {
			return &ValidationError{
				Message: fmt.Sprintf("enum value %v is not of type %s", v, n.Type),
				Err:     ErrEnumType,
			}
		}
	}

	if n.Type.Has(TypeArray) {
		if n.Items == nil {
			return &ValidationError{
				Message: "array requires items schema",
				Err:     ErrNilItems,
			}
		}
		if err := n.Items.validate(); err != nil {
			return &ValidationError{
				Message: fmt.Sprintf("invalid items schema: %v", err),
				Err:     err,
			}
		}
	}

	if n.Properties != nil {
		for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if err := pair.Value.validate(); err != nil {
				return &ValidationError{
					Field:   pair.Key,
					Message: err.Error(),
					Err:     err,
				}
			}
		}
	}

	for _, branch := range n.AnyOf {
		if err := branch.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) acceptsValue(v any) bool {
	if len(n.Type) == 0 {
		return true
	}
	switch v.(type) {
	case nil:
		return n.Type.Has(TypeNull)
	case string:
		return n.Type.Has(TypeString)
	case bool:
		return n.Type.Has(TypeBoolean)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return n.Type.Has(TypeInteger) || n.Type.Has(TypeNumber)
	case float32, float64:
		return n.Type.Has(TypeNumber)
	}
	return true
}

// build validates and serializes a node.
func build(n *Node) (json.RawMessage, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

// mustBuild is like build but panics on error.
func mustBuild(n *Node) json.RawMessage {
	data, err := build(n)
	if err != nil {
		panic(err)
	}
	return data
}

// ptr returns a pointer to the value.
func ptr[T any](v T) *T {
	return &v
}
