package interactive

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

const maxSuggestions = 3

// FuzzyMatcher suggests names with sahilm/fuzzy
type FuzzyMatcher struct{}

// NewFuzzyMatcher creates a new matcher
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

// Suggest returns up to three candidates closest to name, best first.
// Substring matches come before fuzzy ones.
func (m *FuzzyMatcher) Suggest(name string, candidates []string) []string {
	if name == "" {
		return nil
	}
	needle := strings.ToLower(name)

	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] && len(suggestions) < maxSuggestions {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, c := range candidates {
		lower := strings.ToLower(c)
		if strings.Contains(lower, needle) || strings.Contains(needle, lower) {
			add(c)
		}
	}

	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}
	for _, match := range fuzzy.Find(needle, lowered) {
		add(candidates[match.Index])
	}

	return suggestions
}

var _ usecase.NameMatcher = (*FuzzyMatcher)(nil)
