// Package matcher checks normalized content against keyword rules,
// verifying that phrase tokens appear within a configurable proximity
// window. Supports OR groups, exclusions, ordering constraints, and
// optional stemming.
package matcher

import (
	"strings"

	"github.com/reddalert/reddalert/pkg/normalize"
)

// ExclusionScope controls where exclusion terms suppress matches.
type ExclusionScope string

const (
	// ScopeAnywhere suppresses every match when an exclusion term
	// appears anywhere in the content.
	ScopeAnywhere ExclusionScope = "anywhere"
	// ScopeProximity suppresses only matches with an exclusion term
	// inside the proximity window around the matched tokens.
	ScopeProximity ExclusionScope = "proximity"
)

// DefaultProximityWindow is the strict upper bound on max-min of token
// indices in one multi-token match when a rule does not set its own.
const DefaultProximityWindow = 15

const snippetLength = 200

// Rule is the matcher's unit of configuration. Phrases form an OR
// group: each phrase is a token sequence, and any phrase satisfying
// its constraints yields a match.
type Rule struct {
	Phrases         [][]string
	Exclusions      []string
	ProximityWindow int
	RequireOrder    bool
	UseStemming     bool
	ExclusionScope  ExclusionScope
}

// Result is a single match found in content.
type Result struct {
	MatchedPhrase  string
	SpanStart      int // char index in normalized text
	SpanEnd        int
	Snippet        string
	ProximityScore float64
}

// Find returns all keyword matches in normalized content.
//
// For each phrase in the rule's OR group:
//  1. Find all token occurrences in the content
//  2. Check proximity window constraints
//  3. Check ordering constraints if required
//  4. Apply exclusion filters
//  5. Generate snippet and score
func Find(content normalize.Result, rule Rule) []Result {
	if content.Text == "" || len(content.Tokens) == 0 {
		return nil
	}

	window := rule.ProximityWindow
	if window <= 0 {
		window = DefaultProximityWindow
	}
	scope := rule.ExclusionScope
	if scope == "" {
		scope = ScopeAnywhere
	}

	tokens := content.Tokens
	text := content.Text
	tokenOffsets := buildTokenOffsets(tokens, text)

	// Optionally stem content tokens.
	stemmedTokens := tokens
	if rule.UseStemming {
		stemmedTokens = make([]string, len(tokens))
		for i, t := range tokens {
			stemmedTokens[i] = stem(t)
		}
	}

	// "anywhere" exclusions short-circuit the whole rule.
	if len(rule.Exclusions) > 0 && scope == ScopeAnywhere {
		exclusionSet := buildExclusionSet(rule.Exclusions, rule.UseStemming)
		check := tokens
		if rule.UseStemming {
			check = stemmedTokens
		}
		for _, t := range check {
			if exclusionSet[t] {
				return nil
			}
		}
	}

	var results []Result

	for _, phraseTokens := range rule.Phrases {
		if len(phraseTokens) == 0 {
			continue
		}

		phraseStemmed := make([]string, len(phraseTokens))
		for i, t := range phraseTokens {
			lower := strings.ToLower(t)
			if rule.UseStemming {
				lower = stem(lower)
			}
			phraseStemmed[i] = lower
		}

		occurrences := findPhraseOccurrences(stemmedTokens, phraseStemmed, window, rule.RequireOrder)

		for _, matchedIndices := range occurrences {
			if len(rule.Exclusions) > 0 && scope == ScopeProximity {
				if hasProximityExclusion(stemmedTokens, tokens, matchedIndices, rule.Exclusions, window, rule.UseStemming) {
					continue
				}
			}

			// Span in the original text uses the original tokens.
			spanStart := tokenOffsets[matchedIndices[0]]
			lastIdx := matchedIndices[len(matchedIndices)-1]
			spanEnd := tokenOffsets[lastIdx] + len(tokens[lastIdx])

			results = append(results, Result{
				MatchedPhrase:  strings.Join(phraseTokens, " "),
				SpanStart:      spanStart,
				SpanEnd:        spanEnd,
				Snippet:        generateSnippet(text, spanStart, spanEnd),
				ProximityScore: proximityScore(matchedIndices),
			})
		}
	}

	return results
}

// buildTokenOffsets maps each token index to its character offset in
// text by walking the text with a cursor.
func buildTokenOffsets(tokens []string, text string) []int {
	offsets := make([]int, len(tokens))
	cursor := 0
	for i, token := range tokens {
		idx := strings.Index(text[cursor:], token)
		if idx >= 0 {
			idx += cursor
		} else {
			idx = cursor
		}
		offsets[i] = idx
		cursor = idx + len(token)
	}
	return offsets
}

func buildExclusionSet(exclusions []string, useStemming bool) map[string]bool {
	set := make(map[string]bool, len(exclusions))
	for _, e := range exclusions {
		term := strings.ToLower(e)
		if useStemming {
			term = stem(term)
		}
		set[term] = true
	}
	return set
}

// findPhraseOccurrences locates all occurrences of a phrase within the
// token list. Single-token phrases match at each position where the
// token appears; multi-token phrases use the first token's positions
// as anchors and search depth-first for a combination within the
// window, returning the first valid combination per anchor.
func findPhraseOccurrences(stemmedTokens, phrase []string, window int, requireOrder bool) [][]int {
	if len(phrase) == 1 {
		var occurrences [][]int
		for i, t := range stemmedTokens {
			if t == phrase[0] {
				occurrences = append(occurrences, []int{i})
			}
		}
		return occurrences
	}

	// Positions of each phrase token; a missing token means no match.
	positions := make([][]int, len(phrase))
	for j, pt := range phrase {
		for i, t := range stemmedTokens {
			if t == pt {
				positions[j] = append(positions[j], i)
			}
		}
		if len(positions[j]) == 0 {
			return nil
		}
	}

	var occurrences [][]int
	for _, anchor := range positions[0] {
		if combo := findCombination(positions, window, requireOrder, []int{anchor}, 1); combo != nil {
			occurrences = append(occurrences, combo)
		}
	}
	return occurrences
}

// findCombination assigns one position per remaining phrase token such
// that the overall span stays strictly under the window, positions are
// distinct, and ordering holds when required.
func findCombination(positions [][]int, window int, requireOrder bool, combo []int, tokenIdx int) []int {
	if tokenIdx >= len(positions) {
		return combo
	}

	for _, pos := range positions[tokenIdx] {
		lo, hi := spanBounds(combo, pos)
		if hi-lo >= window {
			continue
		}
		if requireOrder && pos <= combo[len(combo)-1] {
			continue
		}
		if containsInt(combo, pos) {
			continue
		}

		next := make([]int, len(combo), len(combo)+1)
		copy(next, combo)
		next = append(next, pos)

		if result := findCombination(positions, window, requireOrder, next, tokenIdx+1); result != nil {
			return result
		}
	}
	return nil
}

// hasProximityExclusion reports whether any exclusion term appears
// within the window around the matched token indices.
func hasProximityExclusion(stemmedTokens, tokens []string, matchedIndices []int, exclusions []string, window int, useStemming bool) bool {
	exclusionSet := buildExclusionSet(exclusions, useStemming)
	check := tokens
	if useStemming {
		check = stemmedTokens
	}

	lo, hi := spanBounds(matchedIndices, matchedIndices[0])
	start := lo - window
	if start < 0 {
		start = 0
	}
	end := hi + window + 1
	if end > len(check) {
		end = len(check)
	}

	for i := start; i < end; i++ {
		if exclusionSet[check[i]] {
			return true
		}
	}
	return false
}

// generateSnippet cuts a snippetLength-char window centered on the
// match span, with "..." markers replacing the truncated ends.
func generateSnippet(text string, spanStart, spanEnd int) string {
	if len(text) <= snippetLength {
		return text
	}

	center := (spanStart + spanEnd) / 2
	start := center - snippetLength/2
	if start < 0 {
		start = 0
	}
	end := start + snippetLength
	if end > len(text) {
		end = len(text)
		start = end - snippetLength
		if start < 0 {
			start = 0
		}
	}

	snippet := text[start:end]
	if start > 0 {
		snippet = "..." + snippet[3:]
	}
	if end < len(text) {
		snippet = snippet[:len(snippet)-3] + "..."
	}
	return snippet
}

// proximityScore is 1.0 for single-token matches and for adjacent
// multi-token matches; otherwise it decreases as the actual span grows
// past the minimal possible span, bottoming out at 0.1.
func proximityScore(matchedIndices []int) float64 {
	if len(matchedIndices) <= 1 {
		return 1.0
	}

	lo, hi := spanBounds(matchedIndices, matchedIndices[0])
	span := hi - lo
	minSpan := len(matchedIndices) - 1
	if span <= minSpan {
		return 1.0
	}

	score := float64(minSpan) / float64(span)
	if score < 0.1 {
		return 0.1
	}
	return score
}

func spanBounds(indices []int, extra int) (lo, hi int) {
	lo, hi = extra, extra
	for _, i := range indices {
		if i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	return lo, hi
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
