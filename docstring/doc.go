// Package docstring extracts descriptions from function documentation.
//
// Two conventions are supported and are not interchangeable:
//
//   - [Parse] reads the line-oriented `:param name: text` convention and
//     returns a [Bundle]: a summary plus one description per parameter.
//   - [ParseStructured] splits text into a short description (the first
//     line) and a long description (the rest, up to the first field list)
//     and returns a [Doc].
package docstring
