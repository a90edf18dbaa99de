package genres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Action", "action"},
		{"mixed case", "SCI-FI", "sci-fi"},
		{"accents", "Shōnen", "shonen"},
		{"whitespace", "  Slice  of   Life ", "slice of life"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestCanonical(t *testing.T) {
	got, ok := Canonical("sci-fi")
	assert.True(t, ok)
	assert.Equal(t, "Sci-Fi", got)

	got, ok = Canonical("SLICE OF LIFE")
	assert.True(t, ok)
	assert.Equal(t, "Slice of Life", got)

	_, ok = Canonical("definitely not a genre")
	assert.False(t, ok)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("Action"))
	assert.True(t, Valid("isekai"))
	assert.True(t, Valid("Josei"))
	assert.False(t, Valid("Akchun"))
}

func TestSuggest(t *testing.T) {
	got, ok := Suggest("Advanture")
	assert.True(t, ok)
	assert.Equal(t, "Adventure", got)

	got, ok = Suggest("scifi")
	assert.True(t, ok)
	assert.Equal(t, "Sci-Fi", got)

	got, ok = Suggest("Psycological")
	assert.True(t, ok)
	assert.Equal(t, "Psychological", got)

	// Romanization variant of a demographic
	got, ok = Suggest("Shōnen")
	assert.True(t, ok)
	assert.Equal(t, "Shounen", got)

	_, ok = Suggest("qqqqwwww")
	assert.False(t, ok)
}

func TestCanon(t *testing.T) {
	canon := Canon()
	assert.NotEmpty(t, canon)
	assert.Equal(t, "Action", canon[0])
	assert.Contains(t, canon, "Mecha")
	assert.Contains(t, canon, "Seinen")
	// Every canonical name resolves to itself.
	for _, name := range canon {
		got, ok := Canonical(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, got)
	}
}
