package matcher

import (
	"time"

	"github.com/arthur-debert/skillhook/pkg/errors"
	"github.com/dlclark/regexp2"
)

// patternOptions mirrors a JavaScript RegExp created with the "i" flag
const patternOptions = regexp2.IgnoreCase | regexp2.ECMAScript

// CompilePattern compiles an intent pattern. A zero timeout disables the
// per-match time limit.
func CompilePattern(pattern string, timeout time.Duration) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, patternOptions)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid regex pattern %q", pattern).
			WithDetail("pattern", pattern)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}

// PatternMatches searches prompt for pattern
func PatternMatches(prompt, pattern string, timeout time.Duration) (bool, error) {
	re, err := CompilePattern(pattern, timeout)
	if err != nil {
		return false, err
	}

	ok, err := re.MatchString(prompt)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrPatternTimeout, "regex pattern %q did not finish", pattern).
			WithDetail("pattern", pattern)
	}
	return ok, nil
}

// IntentMatches reports the first pattern found in prompt. Patterns that
// fail are passed to onError and skipped.
func IntentMatches(prompt string, patterns []string, timeout time.Duration, onError func(pattern string, err error)) (string, bool) {
	for _, pattern := range patterns {
		ok, err := PatternMatches(prompt, pattern, timeout)
		if err != nil {
			if onError != nil {
				onError(pattern, err)
			}
			continue
		}
		if ok {
			return pattern, true
		}
	}
	return "", false
}
