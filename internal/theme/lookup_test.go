package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	names := []string{"Default", "dark", "darker", "light", "solarized-dark", "monokai"}

	tests := []struct {
		name     string
		query    string
		contains []string
		empty    bool
	}{
		{name: "prefix", query: "dar", contains: []string{"dark", "darker"}},
		{name: "subsequence", query: "slrz", contains: []string{"solarized-dark"}},
		{name: "no match", query: "zzz", empty: true},
		{name: "empty query", query: "", empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(names, tt.query)
			if tt.empty {
				assert.Empty(t, got)
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			assert.LessOrEqual(t, len(got), maxSuggestions)
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	names := []string{"a1", "a2", "a3", "a4", "a5"}
	assert.Len(t, Suggest(names, "a"), maxSuggestions)
}
