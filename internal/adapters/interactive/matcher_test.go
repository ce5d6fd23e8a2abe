package interactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatcherSuggest(t *testing.T) {
	candidates := []string{"ETH", "Goerli", "hardhat"}
	m := NewFuzzyMatcher()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "substring", input: "goer", expected: []string{"Goerli"}},
		{name: "fuzzy", input: "grli", expected: []string{"Goerli"}},
		{name: "superstring", input: "ethereum", expected: []string{"ETH"}},
		{name: "hardhat typo", input: "hrdht", expected: []string{"hardhat"}},
		{name: "no match", input: "zzz", expected: nil},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Suggest(tt.input, candidates))
		})
	}
}

func TestFuzzyMatcherLimit(t *testing.T) {
	candidates := []string{"net1", "net2", "net3", "net4", "net5"}
	assert.Len(t, NewFuzzyMatcher().Suggest("net", candidates), 3)
}
