package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textnorm/pkg/sanitizer"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "title cases words", input: "mr. chuck norris", expected: "Mr. Chuck Norris"},
		{name: "lowercases the rest", input: "MR. CHUCK NORRIS", expected: "Mr. Chuck Norris"},
		{name: "trims", input: "  chuck norris \t", expected: "Chuck Norris"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "keeps inner punctuation", input: "o'neil jean-luc", expected: "O'neil Jean-luc"},
		{name: "unicode letters", input: "ÉMILE ŽOLA", expected: "Émile Žola"},
		{name: "cyrillic", input: "иван ПЕТРОВ", expected: "Иван Петров"},
		{name: "keeps inner spacing", input: "anna  maria", expected: "Anna  Maria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.Name(tt.input))
		})
	}
}
