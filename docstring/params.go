package docstring

import (
	"regexp"
	"strings"
)

// paramTag is the prefix of a parameter line.
const paramTag = ":param"

var paramLine = regexp.MustCompile(`^:param\s+(\w+)\s*:\s*(.*)$`)

// Param is the description of one documented parameter.
type Param struct {
	Name        string
	Description string
}

// Bundle is the result of parsing `:param` style documentation.
type Bundle struct {
	// Summary is the text before the first parameter tag, with lines joined
	// by single spaces.
	Summary string
	// Params lists the documented parameters in documentation order.
	// Names are unique.
	Params []Param
}

// Lookup returns the description of the named parameter.
func (b Bundle) Lookup(name string) (string, bool) {
	for _, p := range b.Params {
		if p.Name == name {
			return p.Description, true
		}
	}
	return "", false
}

// Descriptions returns the parameter descriptions keyed by name.
func (b Bundle) Descriptions() map[string]string {
	m := make(map[string]string, len(b.Params))
	for _, p := range b.Params {
		m[p.Name] = p.Description
	}
	return m
}

// Parse splits documentation into a summary and parameter descriptions.
//
// The text is processed line by line, each line trimmed:
//
//	Does X.
//
//	:param a: about a
//	    continued here
//	:param b: about b
//
// Lines before the first `:param` line form the summary; blank lines are
// skipped. A line matching `:param <name>: <text>` starts the entry for
// name (the text may be empty; a repeated name overwrites the earlier
// entry in place). A `:param` line that does not match that shape is
// ignored. Any other non-blank line after the first `:param` line is a
// continuation of the last entry, appended with a single space. A
// continuation with no entry to attach to (only malformed tags so far) is
// dropped.
//
// Parse never fails.
func Parse(text string) Bundle {
	var (
		b        Bundle
		summary  []string
		inParams bool
		index    = map[string]int{}
		last     = -1
	)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, paramTag) {
			inParams = true
			m := paramLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name, desc := m[1], strings.TrimSpace(m[2])
			if i, ok := index[name]; ok {
				b.Params[i].Description = desc
				continue
			}
			index[name] = len(b.Params)
			b.Params = append(b.Params, Param{Name: name, Description: desc})
			last = len(b.Params) - 1
			continue
		}

		if line == "" {
			continue
		}
		if !inParams {
			summary = append(summary, line)
			continue
		}
		if last < 0 {
			continue
		}
		if b.Params[last].Description == "" {
			b.Params[last].Description = line
		} else {
			b.Params[last].Description += " " + line
		}
	}

	b.Summary = strings.Join(summary, " ")
	return b
}
