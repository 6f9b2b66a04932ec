// Package normalize cleans, tokenizes, and segments raw text from
// upstream posts and comments into a deterministic form suitable for
// keyword matching and content-addressed deduplication.
package normalize

import (
	"regexp"
	"strings"
)

// Result of normalizing a piece of text.
type Result struct {
	Text      string
	Tokens    []string
	Sentences []string
}

// Patterns compiled once at package level.
var (
	urlPattern           = regexp.MustCompile(`https?://\S+`)
	linkPattern          = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	boldPattern          = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern        = regexp.MustCompile(`\*([^*]+)\*`)
	strikethroughPattern = regexp.MustCompile(`~~(.+?)~~`)
	inlineCodePattern    = regexp.MustCompile("`([^`]+)`")
	blockquotePattern    = regexp.MustCompile(`(?m)^>\s?`)
	headingPattern       = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	superscriptPattern   = regexp.MustCompile(`\^(\S+)`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
	tokenPattern         = regexp.MustCompile(`[a-z0-9'-]+`)
)

// Normalize converts raw upstream text into a clean, matchable form.
//
// Processing steps, in order:
//  1. Lowercase
//  2. Strip markdown formatting (keeping inner text)
//  3. Strip URLs
//  4. Collapse whitespace
//  5. Tokenize into words
//  6. Segment into sentences
//
// The same input always yields the identical Result.
func Normalize(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{Text: ""}
	}

	text := strings.ToLower(raw)
	text = stripMarkdown(text)
	text = stripURLs(text)
	text = collapseWhitespace(text)

	return Result{
		Text:      text,
		Tokens:    tokenize(text),
		Sentences: segmentSentences(text),
	}
}

// stripMarkdown removes upstream markdown formatting, keeping the inner text.
func stripMarkdown(text string) string {
	// Links: [text](url) -> text
	text = linkPattern.ReplaceAllString(text, "$1")
	// Bold: **text** -> text (before italic, so leftover single stars are plain)
	text = boldPattern.ReplaceAllString(text, "$1")
	// Italic: *text* -> text
	text = italicPattern.ReplaceAllString(text, "$1")
	// Strikethrough: ~~text~~ -> text
	text = strikethroughPattern.ReplaceAllString(text, "$1")
	// Inline code: `text` -> text
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	// Blockquote markers: > text -> text
	text = blockquotePattern.ReplaceAllString(text, "")
	// Headings: ## text -> text
	text = headingPattern.ReplaceAllString(text, "")
	// Horizontal rules
	text = horizontalRulePattern.ReplaceAllString(text, "")
	// Superscript: ^word -> word
	text = superscriptPattern.ReplaceAllString(text, "$1")
	return text
}

func stripURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// tokenize splits text into word tokens, preserving contractions,
// hyphenated compounds and digits.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// segmentSentences splits text after sentence-ending punctuation
// followed by whitespace.
func segmentSentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && isSpace(text[i+1]) {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
