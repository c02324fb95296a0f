package schema

import "encoding/json"

// nodeBuilder supplies the Builder methods shared by every concrete
// builder. Embedders set node on construction.
type nodeBuilder struct {
	node *Node
}

// Build validates the node and serializes it.
func (b nodeBuilder) Build() (json.RawMessage, error) { return build(b.node) }

// MustBuild is Build that panics on an invalid node.
func (b nodeBuilder) MustBuild() json.RawMessage { return mustBuild(b.node) }

// Node returns the node under construction. Changes to it are visible to
// the builder.
func (b nodeBuilder) Node() *Node { return b.node }

func newBuilder(t string) nodeBuilder {
	return nodeBuilder{node: &Node{Type: Types{t}}}
}

func enumValues[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
