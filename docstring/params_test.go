package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantSummary string
		wantParams  []Param
	}{
		{
			name:        "summary and params",
			text:        "Does X.\n\n:param a: about a\n:param b: about b",
			wantSummary: "Does X.",
			wantParams:  []Param{{"a", "about a"}, {"b", "about b"}},
		},
		{
			name:        "multi-line summary",
			text:        "Greets a person\n  by name.\n:param name: who",
			wantSummary: "Greets a person by name.",
			wantParams:  []Param{{"name", "who"}},
		},
		{
			name:        "continuation lines",
			text:        ":param name: the name\n    of the person\n\n    to greet\n:param n: count",
			wantParams:  []Param{{"name", "the name of the person to greet"}, {"n", "count"}},
		},
		{
			name:       "empty description is kept",
			text:       ":param flag:\n:param other: set",
			wantParams: []Param{{"flag", ""}, {"other", "set"}},
		},
		{
			name:       "continuation fills an empty description",
			text:       ":param flag:\n  enables it",
			wantParams: []Param{{"flag", "enables it"}},
		},
		{
			name:       "repeated name overwrites in place",
			text:       ":param a: first\n:param b: bee\n:param a: second",
			wantParams: []Param{{"a", "second"}, {"b", "bee"}},
		},
		{
			name:       "continuation after a repeated name goes to the newest entry",
			text:       ":param a: first\n:param b: bee\n:param a: second\nmore",
			wantParams: []Param{{"a", "second"}, {"b", "bee more"}},
		},
		{
			name:        "malformed tag is ignored",
			text:        "Summary.\n:param: nothing\n:param x about x\n:param ok: fine",
			wantSummary: "Summary.",
			wantParams:  []Param{{"ok", "fine"}},
		},
		{
			name:        "continuation after only malformed tags is dropped",
			text:        "Summary.\n:param broken\nlost words\n:param a: kept",
			wantSummary: "Summary.",
			wantParams:  []Param{{"a", "kept"}},
		},
		{
			name:        "no params",
			text:        "  Just a summary.  ",
			wantSummary: "Just a summary.",
		},
		{
			name: "empty input",
			text: "",
		},
		{
			name: "whitespace input",
			text: " \n\t\n ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Equal(t, tt.wantParams, got.Params)
		})
	}
}

func TestBundleLookup(t *testing.T) {
	b := Parse(":param name: who\n:param repetitions: how many")

	desc, ok := b.Lookup("repetitions")
	assert.True(t, ok)
	assert.Equal(t, "how many", desc)

	_, ok = b.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{"name": "who", "repetitions": "how many"}, b.Descriptions())
	assert.Empty(t, Parse("").Descriptions())
}
