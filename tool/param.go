package tool

import "github.com/spetersoncode/toolschema/schema"

// Param declares one parameter of a callable.
//
// A nil Type means the parameter is unannotated; it is described as a
// string.
type Param struct {
	Name        string
	Type        schema.TypeRef
	HasDefault  bool
	Description string
}

// NewParam declares a parameter without a default.
func NewParam(name string, t schema.TypeRef) Param {
	return Param{Name: name, Type: t}
}

// WithDefault marks the parameter as having a default value.
func (p Param) WithDefault() Param {
	p.HasDefault = true
	return p
}

// Desc sets the description, taking precedence over the documentation.
func (p Param) Desc(description string) Param {
	p.Description = description
	return p
}
