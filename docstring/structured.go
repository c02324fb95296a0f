package docstring

import (
	"fmt"
	"strings"
)

// Doc is a docstring split into a short and a long description.
//
// Short is not the same thing as Bundle.Summary: it is only the first line
// of the text, while Summary joins every line before the first tag.
type Doc struct {
	Short string
	Long  string
}

// ParseStructured splits documentation into short and long descriptions.
//
// The text is dedented first (the first line is trimmed, the remaining lines
// lose their common indentation). Everything from the first section line is
// metadata and is not part of either description: a field list such as
// `:param x:` or `:returns:`, or a heading such as "Args:" or "Returns:". Of the rest, the first line is the
// short description and the remaining lines, trimmed, the long description.
// Line breaks inside the long description are kept.
func ParseStructured(text string) Doc {
	lines := dedent(text)

	var body []string
	for _, line := range lines {
		if isSection(line) {
			break
		}
		body = append(body, line)
	}

	desc := strings.TrimSpace(strings.Join(body, "\n"))
	if desc == "" {
		return Doc{}
	}
	short, long, _ := strings.Cut(desc, "\n")
	return Doc{
		Short: strings.TrimSpace(short),
		Long:  strings.TrimSpace(long),
	}
}

// Text combines the descriptions: both joined by a blank line when both
// are present, otherwise whichever is present.
func (d Doc) Text() string {
	switch {
	case d.Short != "" && d.Long != "":
		return d.Short + "\n\n" + d.Long
	case d.Short != "":
		return d.Short
	default:
		return d.Long
	}
}

// Description is Text with a placeholder for undocumented functions:
// "<name> (no description)". It never returns an empty string.
func (d Doc) Description(name string) string {
	if text := d.Text(); text != "" {
		return text
	}
	return Placeholder(name)
}

// Placeholder is the description of an undocumented function.
func Placeholder(name string) string {
	return fmt.Sprintf("%s (no description)", name)
}

var sectionHeadings = map[string]bool{
	"Args:":       true,
	"Arguments:":  true,
	"Parameters:": true,
	"Returns:":    true,
	"Raises:":     true,
	"Yields:":     true,
}

func isSection(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, ":") || sectionHeadings[line]
}

// dedent trims the text and removes the indentation common to all
// non-blank lines after the first.
func dedent(text string) []string {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\t", "    "), "\n")
	if len(lines) == 0 {
		return nil
	}

	indent := -1
	for _, line := range lines[1:] {
		stripped := strings.TrimLeft(line, " ")
		if stripped == "" {
			continue
		}
		if n := len(line) - len(stripped); indent < 0 || n < indent {
			indent = n
		}
	}

	out := make([]string, len(lines))
	out[0] = strings.TrimSpace(lines[0])
	for i, line := range lines[1:] {
		if len(line) >= indent && indent > 0 {
			line = line[indent:]
		}
		out[i+1] = strings.TrimRight(line, " ")
	}
	return out
}
