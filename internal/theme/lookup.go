package theme

import (
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the number of names returned by Suggest.
const maxSuggestions = 3

// Suggest returns up to three names that fuzzy-match query, best match first.
func Suggest(names []string, query string) []string {
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
