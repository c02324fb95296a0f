package tool

import (
	"errors"
	"fmt"
)

// Declaration errors returned while building a descriptor.
var (
	// ErrEmptyName is returned when a tool is declared without a name.
	ErrEmptyName = errors.New("tool: empty tool name")
	// ErrDuplicateParam is returned when a signature declares a parameter twice.
	ErrDuplicateParam = errors.New("tool: duplicate parameter")
	// ErrInvalidParam is returned for a parameter without a name.
	ErrInvalidParam = errors.New("tool: invalid parameter")
	// ErrUnsupportedSchema is returned when Assemble is given a parameter
	// schema of an unknown Go type.
	ErrUnsupportedSchema = errors.New("tool: unsupported parameter schema")
	// ErrNotStrict is returned when a descriptor flagged Strict fails the
	// strict-mode check.
	ErrNotStrict = errors.New("tool: descriptor is not strict")
)

// ErrToolNotFound is returned when a tool call references an unregistered tool.
type ErrToolNotFound struct {
	Name string
}

// Error returns a formatted error message including the tool name.
func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("tool: not found: %s", e.Name)
}

// ErrInvalidArguments wraps a failure to decode the arguments of a tool call.
type ErrInvalidArguments struct {
	Name string
	Err  error
}

// Error returns a formatted error message including the tool name and cause.
func (e *ErrInvalidArguments) Error() string {
	return fmt.Sprintf("tool: %s: invalid arguments: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ErrInvalidArguments) Unwrap() error {
	return e.Err
}

// ErrToolAlreadyRegistered is returned when registering a tool with a duplicate name.
type ErrToolAlreadyRegistered struct {
	Name string
}

// Error returns a formatted error message including the duplicate tool name.
func (e *ErrToolAlreadyRegistered) Error() string {
	return fmt.Sprintf("tool: already registered: %s", e.Name)
}
