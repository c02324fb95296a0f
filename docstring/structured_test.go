package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStructured(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Doc
	}{
		{
			name: "short only",
			text: "Get the current weather.",
			want: Doc{Short: "Get the current weather."},
		},
		{
			name: "short and long",
			text: `Get a response from the model.

			Sends the conversation so far
			and returns the reply.
			`,
			want: Doc{
				Short: "Get a response from the model.",
				Long:  "Sends the conversation so far\nand returns the reply.",
			},
		},
		{
			name: "field list ends the description",
			text: "Greet someone.\n\nSays hello.\n:param name: who\n:returns: greeting",
			want: Doc{Short: "Greet someone.", Long: "Says hello."},
		},
		{
			name: "section heading ends the description",
			text: "Greet someone.\n\n    Args:\n        name: who",
			want: Doc{Short: "Greet someone."},
		},
		{
			name: "only fields",
			text: ":param name: who",
			want: Doc{},
		},
		{
			name: "empty",
			text: "",
			want: Doc{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStructured(tt.text))
		})
	}
}

func TestParseStructured_NotSummary(t *testing.T) {
	text := "First line\nsecond line\n:param a: x"

	assert.Equal(t, "First line", ParseStructured(text).Short)
	assert.Equal(t, "First line second line", Parse(text).Summary)
}

func TestDocDescription(t *testing.T) {
	tests := []struct {
		name string
		doc  Doc
		want string
	}{
		{name: "both", doc: Doc{Short: "S", Long: "L"}, want: "S\n\nL"},
		{name: "short", doc: Doc{Short: "S"}, want: "S"},
		{name: "long", doc: Doc{Long: "L"}, want: "L"},
		{name: "neither", doc: Doc{}, want: "get_weather (no description)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.Description("get_weather"))
		})
	}
}
