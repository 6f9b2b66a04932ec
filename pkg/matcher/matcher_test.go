package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/pkg/normalize"
)

func TestSingleTokenHit(t *testing.T) {
	content := normalize.Normalize("I love arbitrage betting strategies")
	rule := Rule{Phrases: [][]string{{"arbitrage"}}}

	results := Find(content, rule)
	require.Len(t, results, 1)
	assert.Equal(t, "arbitrage", results[0].MatchedPhrase)
	assert.Equal(t, 1.0, results[0].ProximityScore)
}

func TestProximityWithinWindow(t *testing.T) {
	content := normalize.Normalize("arbitrage is a common strategy in sports betting")
	rule := Rule{
		Phrases:         [][]string{{"arbitrage", "betting"}},
		ProximityWindow: 15,
	}

	results := Find(content, rule)
	require.Len(t, results, 1)
	assert.Equal(t, "arbitrage betting", results[0].MatchedPhrase)
	assert.Less(t, results[0].ProximityScore, 1.0)
	assert.Greater(t, results[0].ProximityScore, 0.0)
}

func TestOutOfWindow(t *testing.T) {
	content := normalize.Normalize("arbitrage " + strings.Repeat("word ", 20) + "betting")
	rule := Rule{
		Phrases:         [][]string{{"arbitrage", "betting"}},
		ProximityWindow: 5,
	}

	assert.Empty(t, Find(content, rule))
}

func TestAnywhereExclusion(t *testing.T) {
	content := normalize.Normalize("arbitrage betting is a scam")
	rule := Rule{
		Phrases:        [][]string{{"arbitrage", "betting"}},
		Exclusions:     []string{"scam"},
		ExclusionScope: ScopeAnywhere,
	}

	assert.Empty(t, Find(content, rule))
}

func TestRequireOrder(t *testing.T) {
	content := normalize.Normalize("betting on arbitrage opportunities")
	rule := Rule{
		Phrases:      [][]string{{"arbitrage", "betting"}},
		RequireOrder: true,
	}
	assert.Empty(t, Find(content, rule))

	rule.RequireOrder = false
	assert.Len(t, Find(content, rule), 1)
}

func TestOrderedMatch(t *testing.T) {
	content := normalize.Normalize("arbitrage in sports betting")
	rule := Rule{
		Phrases:      [][]string{{"arbitrage", "betting"}},
		RequireOrder: true,
	}
	assert.Len(t, Find(content, rule), 1)
}

func TestProximityScopedExclusion(t *testing.T) {
	content := normalize.Normalize("arbitrage betting is a scam")
	rule := Rule{
		Phrases:         [][]string{{"arbitrage", "betting"}},
		Exclusions:      []string{"scam"},
		ExclusionScope:  ScopeProximity,
		ProximityWindow: 15,
	}
	assert.Empty(t, Find(content, rule))

	// Exclusion term outside the proximity window does not suppress.
	far := "arbitrage betting is fine " + strings.Repeat("word ", 20) + "scam"
	results := Find(normalize.Normalize(far), rule)
	assert.Len(t, results, 1)
}

func TestStemmingMatchesVariants(t *testing.T) {
	content := normalize.Normalize("he keeps betting on long shots")
	rule := Rule{
		Phrases:     [][]string{{"bet"}},
		UseStemming: true,
	}
	require.Len(t, Find(content, rule), 1)

	// Without stemming the surface forms differ.
	rule.UseStemming = false
	assert.Empty(t, Find(content, rule))
}

func TestStemmedExclusion(t *testing.T) {
	content := normalize.Normalize("arbitrage betting scams everywhere")
	rule := Rule{
		Phrases:        [][]string{{"arbitrage"}},
		Exclusions:     []string{"scam"},
		UseStemming:    true,
		ExclusionScope: ScopeAnywhere,
	}
	assert.Empty(t, Find(content, rule))
}

func TestORGroup(t *testing.T) {
	content := normalize.Normalize("matched betting is the safer approach")
	rule := Rule{
		Phrases: [][]string{{"arbitrage"}, {"matched", "betting"}},
	}

	results := Find(content, rule)
	require.Len(t, results, 1)
	assert.Equal(t, "matched betting", results[0].MatchedPhrase)
}

func TestMissingTokenNoMatch(t *testing.T) {
	content := normalize.Normalize("arbitrage only appears here")
	rule := Rule{Phrases: [][]string{{"arbitrage", "betting"}}}
	assert.Empty(t, Find(content, rule))
}

func TestMultipleSingleTokenOccurrences(t *testing.T) {
	content := normalize.Normalize("bonus here and bonus there and bonus everywhere")
	rule := Rule{Phrases: [][]string{{"bonus"}}}
	assert.Len(t, Find(content, rule), 3)
}

func TestWindowMonotonicity(t *testing.T) {
	content := normalize.Normalize("arbitrage " + strings.Repeat("word ", 8) + "betting")
	phrase := [][]string{{"arbitrage", "betting"}}

	matchedAt := -1
	for w := 2; w <= 30; w++ {
		results := Find(content, Rule{Phrases: phrase, ProximityWindow: w})
		if len(results) > 0 && matchedAt == -1 {
			matchedAt = w
		}
		if matchedAt != -1 {
			// Once it matches at some window it matches at every larger one.
			assert.NotEmpty(t, results, "window %d", w)
		}
	}
	require.NotEqual(t, -1, matchedAt)
}

func TestSnippetShortTextUnchanged(t *testing.T) {
	content := normalize.Normalize("short text with arbitrage inside")
	results := Find(content, Rule{Phrases: [][]string{{"arbitrage"}}})
	require.Len(t, results, 1)
	assert.Equal(t, content.Text, results[0].Snippet)
}

func TestSnippetTruncation(t *testing.T) {
	long := strings.Repeat("filler ", 40) + "arbitrage " + strings.Repeat("filler ", 40)
	content := normalize.Normalize(long)
	results := Find(content, Rule{Phrases: [][]string{{"arbitrage"}}})
	require.Len(t, results, 1)

	snippet := results[0].Snippet
	assert.Len(t, snippet, 200)
	assert.True(t, strings.HasPrefix(snippet, "..."))
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.Contains(t, snippet, "arbitrage")
}

func TestSpanOffsets(t *testing.T) {
	content := normalize.Normalize("the arbitrage window")
	results := Find(content, Rule{Phrases: [][]string{{"arbitrage"}}})
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].SpanStart)
	assert.Equal(t, 13, results[0].SpanEnd)
	assert.Equal(t, "arbitrage", content.Text[results[0].SpanStart:results[0].SpanEnd])
}

func TestAdjacentTokensScoreOne(t *testing.T) {
	content := normalize.Normalize("arbitrage betting here")
	results := Find(content, Rule{Phrases: [][]string{{"arbitrage", "betting"}}})
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].ProximityScore)
}

func TestScoreFloor(t *testing.T) {
	content := normalize.Normalize("arbitrage " + strings.Repeat("word ", 13) + "betting")
	results := Find(content, Rule{Phrases: [][]string{{"arbitrage", "betting"}}, ProximityWindow: 15})
	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].ProximityScore, 0.1)
}

func TestEmptyContent(t *testing.T) {
	assert.Empty(t, Find(normalize.Result{}, Rule{Phrases: [][]string{{"x"}}}))
}

func TestDefaultWindowApplied(t *testing.T) {
	// 10 tokens apart: inside the default window of 15.
	content := normalize.Normalize("arbitrage " + strings.Repeat("word ", 9) + "betting")
	results := Find(content, Rule{Phrases: [][]string{{"arbitrage", "betting"}}})
	assert.Len(t, results, 1)
}
