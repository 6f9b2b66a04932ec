package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"betting", "bet"},   // suffix strip + doubled consonant
		{"running", "run"},
		{"runs", "run"},
		{"cats", "cat"},
		{"happiness", "happi"},
		{"cat", "cat"}, // <= 3 chars passes through
		{"be", "be"},
		{"scams", "scam"},
		{"arbitrage", "arbitrage"}, // no matching suffix
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stem(tt.word), "stem(%q)", tt.word)
	}
}

func TestStemDeterministic(t *testing.T) {
	for _, w := range []string{"betting", "strategies", "opportunities", "x", "doors"} {
		assert.Equal(t, stem(w), stem(w))
	}
}
