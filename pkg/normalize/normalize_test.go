package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t  \n"} {
		result := Normalize(raw)
		assert.Equal(t, "", result.Text)
		assert.Empty(t, result.Tokens)
		assert.Empty(t, result.Sentences)
	}
}

func TestNormalizeLowercases(t *testing.T) {
	result := Normalize("Arbitrage BETTING Strategies")
	assert.Equal(t, "arbitrage betting strategies", result.Text)
}

func TestNormalizeStripsMarkdown(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"link", "check [this guide](https://example.com/guide) out", "check this guide out"},
		{"bold", "this is **very** important", "this is very important"},
		{"italic", "this is *quite* important", "this is quite important"},
		{"strikethrough", "~~wrong~~ right", "wrong right"},
		{"inline code", "run `go build` first", "run go build first"},
		{"blockquote", "> quoted text\nreply", "quoted text reply"},
		{"heading", "## Section Title\nbody text", "section title body text"},
		{"horizontal rule", "above\n---\nbelow", "above below"},
		{"superscript", "that was fast ^really", "that was fast really"},
		{"superscript attached", "that was fast^really", "that was fastreally"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw).Text)
		})
	}
}

func TestNormalizeStripsURLs(t *testing.T) {
	result := Normalize("see https://example.com/a?b=c and http://foo.bar here")
	assert.Equal(t, "see and here", result.Text)
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	result := Normalize("  too\t\tmany   spaces\n\nhere  ")
	assert.Equal(t, "too many spaces here", result.Text)
}

func TestNormalizeTokens(t *testing.T) {
	result := Normalize("Don't under-estimate 42 things!")
	assert.Equal(t, []string{"don't", "under-estimate", "42", "things"}, result.Tokens)
}

func TestNormalizeSentences(t *testing.T) {
	result := Normalize("First sentence. Second one! A third? last bit")
	assert.Equal(t, []string{
		"first sentence.",
		"second one!",
		"a third?",
		"last bit",
	}, result.Sentences)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"**Bold** and [link](http://x.y) with https://z.example trailing",
		"> quote\n# Heading\nplain text. more text!",
		"already normalized plain text",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once.Text)
		assert.Equal(t, once.Text, twice.Text, "normalization must be idempotent for %q", raw)
		assert.Equal(t, once.Tokens, twice.Tokens)
	}
}
