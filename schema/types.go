package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSON Schema type tokens.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// Types is a set of JSON Schema type tokens.
//
// A single token serializes as a bare string ("string"), more than one as an
// array (["integer","null"]). The order of tokens carries no meaning; compare
// with Equal.
type Types []string

// Of returns a Types set from the given tokens, dropping duplicates.
func Of(tokens ...string) Types {
	var t Types
	for _, tok := range tokens {
		t = t.add(tok)
	}
	return t
}

// Has reports whether the set contains token.
func (t Types) Has(token string) bool {
	for _, tok := range t {
		if tok == token {
			return true
		}
	}
	return false
}

// Equal reports whether both sets contain the same tokens, in any order.
func (t Types) Equal(other Types) bool {
	for _, tok := range t {
		if !other.Has(tok) {
			return false
		}
	}
	for _, tok := range other {
		if !t.Has(tok) {
			return false
		}
	}
	return true
}

// Nullable returns the set with "null" added.
func (t Types) Nullable() Types {
	return append(Types(nil), t...).add(TypeNull)
}

func (t Types) add(token string) Types {
	if t.Has(token) {
		return t
	}
	return append(t, token)
}

func (t Types) String() string {
	if len(t) == 1 {
		return t[0]
	}
	return "[" + strings.Join(t, ",") + "]"
}

// MarshalJSON encodes one token as a string and several as an array.
func (t Types) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts either a string or an array of strings.
func (t *Types) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Types{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("schema: type must be a string or an array of strings: %w", err)
	}
	*t = Of(many...)
	return nil
}
