// Package schema builds and normalizes JSON Schema trees for tool parameters.
//
// The package has four parts:
//
//   - [TypeRef] and [MapType]: declared parameter types and their JSON
//     Schema type tokens.
//   - [Node] and the fluent builders ([Object], [String], [Int], ...):
//     programmatic schema construction.
//   - [FromModel]: schema extraction from a Go struct, with nested structs
//     inlined.
//   - [Normalize] and [Check]: the strict-mode rewrite and its invariant.
//
// # Type Mapping
//
//	schema.MapType(schema.StringType)                         // "string"
//	schema.MapType(schema.OptionalOf(schema.IntegerType))     // ["integer","null"]
//	schema.MapType(schema.SequenceOf(schema.StringType))      // "array"
//	schema.MapType(nil)                                       // "string"
//
// # Builders
//
//	params := schema.Object().
//		Field("location", schema.String().Desc("City name").Required()).
//		Field("unit", schema.String().Enum("C", "F").Nullable()).
//		MustBuild()
//
// # Strict Mode
//
// Normalize works on the generic decoded JSON shape and returns a new tree:
//
//	strict := schema.NormalizeMap(tree, schema.KeepDescriptions())
//	if err := schema.Check(strict); err != nil {
//		log.Fatal(err) // never happens for Normalize output
//	}
//
// After normalization every object node has "additionalProperties": false
// and lists all of its properties in "required"; "default", "title",
// "examples" and "format" are gone everywhere.
package schema
