package matcher

import "strings"

// sentencePunctuation is stripped before keyword matching
var sentencePunctuation = strings.NewReplacer(
	"?", "",
	"!", "",
	"。", "",
	"？", "",
	"！", "",
)

// NormalizePrompt lowercases the prompt, trims it, collapses whitespace runs
// to a single space and strips sentence-terminal punctuation
func NormalizePrompt(prompt string) string {
	lowered := strings.ToLower(prompt)
	collapsed := strings.Join(strings.Fields(lowered), " ")
	return sentencePunctuation.Replace(collapsed)
}
