// Package toolschema builds strict-mode function-calling descriptors from
// Go functions and parameter models.
//
// A [Tool] pairs a name and description with a JSON Schema that describes
// the function's parameters. Every schema produced by this module satisfies
// the strict contract of function-calling APIs: each object forbids unlisted
// fields, each declared property is required, metadata keys such as
// "default", "title", "examples" and "format" are removed, and nullable
// values are expressed as type unions with "null".
//
// # Building Descriptors
//
// Use the [github.com/spetersoncode/toolschema/tool] package to build
// descriptors, either from a static parameter list with `:param` style
// documentation:
//
//	t, err := tool.FromSignature("greet", `Greet someone.
//
//	:param name: Who to greet
//	:param repetitions: How many times`,
//	    tool.Param{Name: "name", Type: schema.StringType},
//	    tool.Param{Name: "repetitions", Type: schema.OptionalOf(schema.IntegerType), HasDefault: true},
//	)
//
// or from a parameter struct:
//
//	type WeatherArgs struct {
//	    Location string  `json:"location" jsonschema:"description=Location to get weather for"`
//	    Unit     *string `json:"unit" jsonschema:"nullable"`
//	}
//
//	t, err := tool.FromModel[WeatherArgs]("get_weather", "Fetch the weather for a given location.")
//
// # Serialization
//
// A [Tool] marshals to the envelope expected in the "tools" field of a chat
// completion request:
//
//	{"type":"function","function":{"name":"greet","description":"Greet someone.","parameters":{...},"strict":true}}
//
// # Errors
//
// Schema construction never fails on schema content: unknown types degrade
// to "string" and malformed documentation is ignored. Remote consumers in the
// provider packages report [ErrConfigMissing] when credentials are absent
// (see [IsConfigMissing]) and a categorized [Error] when the endpoint
// rejects a request (see [IsRemoteRejection]).
package toolschema
