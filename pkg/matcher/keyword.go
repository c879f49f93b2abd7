package matcher

import "strings"

// KeywordMatches reports whether keyword is present in prompt
func KeywordMatches(prompt, keyword string) bool {
	return keywordInNormalized(NormalizePrompt(prompt), keyword)
}

// AnyKeyword reports the first keyword present in prompt
func AnyKeyword(prompt string, keywords []string) (string, bool) {
	return firstKeyword(NormalizePrompt(prompt), keywords)
}

func firstKeyword(normalized string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if keywordInNormalized(normalized, kw) {
			return kw, true
		}
	}
	return "", false
}

// keywordInNormalized matches a keyword against an already normalized prompt.
// A multi-word keyword also matches when each of its words appears somewhere
// in the prompt, in any order.
func keywordInNormalized(normalized, keyword string) bool {
	kw := strings.TrimSpace(strings.ToLower(keyword))

	if strings.Contains(normalized, kw) {
		return true
	}

	words := strings.Fields(kw)
	if len(words) < 2 {
		return false
	}
	for _, word := range words {
		if !strings.Contains(normalized, word) {
			return false
		}
	}
	return true
}
