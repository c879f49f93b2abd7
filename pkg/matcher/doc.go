// Package matcher decides which skills a prompt triggers.
//
// Each rule is tried in rule set order. Keyword triggers are checked first
// against a normalized prompt (lowercased, whitespace collapsed, sentence
// punctuation removed). A keyword matches when it is a substring of the
// normalized prompt, or, for multi-word keywords, when every word is.
// Only when no keyword matched are the rule's intent patterns tried, as
// case-insensitive ECMAScript regular expressions searched in the raw
// prompt. A skill therefore yields at most one match.
//
// A pattern that does not compile, or whose match attempt times out, counts
// as a non-match; it is reported through Options.OnPatternError and
// evaluation carries on.
package matcher
