package matcher

// Simple suffix-stripping stemmer. Intentionally basic, just enough to
// match common morphological variants (e.g. "betting" -> "bet",
// "runs" -> "run") without pulling in a full stemming library. The
// mapping is deterministic: the same token always yields the same stem.
var stemSuffixes = []string{
	"ational", "tional", "enci", "anci", "izer", "ation", "ness",
	"ment", "ful", "less", "ive", "ous", "ing", "ble", "ally",
	"ity", "ies", "ied", "ers", "est", "ely", "ess",
	"ly", "er", "ed", "al", "es", "en", "ty", "ss",
	"s",
}

// stem strips the first matching suffix where the remaining stem keeps
// at least 2 characters, then drops a doubled final consonant. Tokens
// of length <= 3 pass through unchanged.
func stem(word string) string {
	if len(word) <= 3 {
		return word
	}

	for _, suffix := range stemSuffixes {
		if len(word)-len(suffix) >= 2 && hasSuffix(word, suffix) {
			s := word[:len(word)-len(suffix)]
			// "betting" -> "bett" after removing "ing" -> "bet"
			if len(s) >= 2 && s[len(s)-1] == s[len(s)-2] && !isVowel(s[len(s)-1]) {
				s = s[:len(s)-1]
			}
			return s
		}
	}
	return word
}

func hasSuffix(word, suffix string) bool {
	return len(word) >= len(suffix) && word[len(word)-len(suffix):] == suffix
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
