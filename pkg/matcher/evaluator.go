package matcher

import (
	"time"

	"github.com/arthur-debert/skillhook/pkg/logging"
	"github.com/arthur-debert/skillhook/pkg/rules"
	"github.com/rs/zerolog"
)

// MatchType records which kind of trigger fired
type MatchType string

const (
	MatchKeyword MatchType = "keyword"
	MatchIntent  MatchType = "intent"
)

// Match is a skill selected for a prompt
type Match struct {
	Name string
	Type MatchType
	Rule rules.Rule

	// Trigger is the keyword or pattern that fired
	Trigger string
}

// PatternErrorFunc receives intent patterns that could not be evaluated
type PatternErrorFunc func(skill, pattern string, err error)

// Options configures an Evaluator
type Options struct {
	// RegexTimeout bounds a single pattern match attempt; zero means no limit
	RegexTimeout time.Duration

	OnPatternError PatternErrorFunc
}

// Evaluator applies a rule set to prompts
type Evaluator struct {
	opts   Options
	logger zerolog.Logger
}

// NewEvaluator creates an Evaluator
func NewEvaluator(opts Options) *Evaluator {
	return &Evaluator{
		opts:   opts,
		logger: logging.GetLogger("matcher.evaluator"),
	}
}

// Evaluate returns the skills triggered by prompt, in rule set order
func (e *Evaluator) Evaluate(prompt string, set *rules.RuleSet) []Match {
	if set == nil {
		return nil
	}

	normalized := NormalizePrompt(prompt)
	var matches []Match

	for _, skill := range set.Skills {
		if !skill.Rule.HasTriggers() {
			continue
		}
		triggers := skill.Rule.PromptTriggers

		if kw, ok := firstKeyword(normalized, triggers.Keywords); ok {
			matches = append(matches, Match{Name: skill.Name, Type: MatchKeyword, Rule: skill.Rule, Trigger: kw})
			e.logger.Debug().Str("skill", skill.Name).Str("keyword", kw).Msg("Keyword matched")
			continue
		}

		if len(triggers.IntentPatterns) == 0 {
			continue
		}

		pattern, ok := IntentMatches(prompt, triggers.IntentPatterns, e.opts.RegexTimeout, func(pattern string, err error) {
			e.logger.Debug().Err(err).Str("skill", skill.Name).Str("pattern", pattern).Msg("Intent pattern failed")
			if e.opts.OnPatternError != nil {
				e.opts.OnPatternError(skill.Name, pattern, err)
			}
		})
		if ok {
			matches = append(matches, Match{Name: skill.Name, Type: MatchIntent, Rule: skill.Rule, Trigger: pattern})
			e.logger.Debug().Str("skill", skill.Name).Str("pattern", pattern).Msg("Intent matched")
		}
	}

	e.logger.Debug().Int("skills", len(set.Skills)).Int("matches", len(matches)).Msg("Evaluated prompt")
	return matches
}
