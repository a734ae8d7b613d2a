package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"punctuation stripped", "Acme, Inc.", "acme inc"},
		{"uppercase lowered", "ACME INC", "acme inc"},
		{"whitespace trimmed", " acme inc ", "acme inc"},
		{"internal runs collapsed", "acme   holdings\tco", "acme holdings co"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
		{"digits and underscores kept", "Area_51 Labs", "area_51 labs"},
		{"ampersand removed", "Smith & Sons", "smith sons"},
		{"trailing exclamations", "BETA CO!!", "beta co"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestName_EquivalentForms(t *testing.T) {
	t.Parallel()

	// All spellings of the same entity must collapse to one join key.
	forms := []string{"Acme, Inc.", "ACME INC", " acme inc ", "Acme  Inc!"}
	for _, f := range forms {
		assert.Equal(t, "acme inc", Name(f), "form %q", f)
	}
}
