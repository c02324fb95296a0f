// Package tool builds strict tool descriptors and keeps them in a registry.
//
// A descriptor can be built three ways:
//
//   - [FromSignature] from declared parameters plus `:param` documentation.
//   - [FromModel] from the fields of a struct type plus short/long
//     documentation.
//   - [Assemble] from any parameter schema.
//
// Every descriptor is normalized to strict mode: each object is closed to
// extra properties and lists all of its properties as required, and
// defaults, titles, examples and formats are removed. Optional parameters
// stay optional through a "null" member in their type.
//
// # Signatures
//
//	t, err := tool.FromSignature("greet", `Greet someone.
//
//	:param name: Person to greet
//	:param repetitions: How many times`,
//		tool.NewParam("name", schema.StringType),
//		tool.NewParam("repetitions", schema.OptionalOf(schema.IntegerType)).WithDefault(),
//	)
//
// # Models
//
// Define tool arguments as a struct with json and jsonschema tags, then use
// Bind, Func or FromModel:
//
//	type WeatherArgs struct {
//	    Location string  `json:"location" jsonschema:"description=City name"`
//	    Unit     *string `json:"unit" jsonschema:"enum=celsius,enum=fahrenheit"`
//	}
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather",
//	        func(ctx context.Context, args WeatherArgs) (string, error) {
//	            return fmt.Sprintf(`{"temp": 72, "location": %q}`, args.Location), nil
//	        }, tool.WithDescriptions(true)),
//	)
//
// Registered descriptors are built once and can be read concurrently.
package tool
