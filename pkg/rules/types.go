package rules

import "github.com/arthur-debert/skillhook/pkg/errors"

// Type distinguishes mandatory safety rules from topical ones
type Type string

const (
	TypeGuardrail Type = "guardrail"
	TypeDomain    Type = "domain"
)

// Valid reports whether t is a known rule type
func (t Type) Valid() bool {
	return t == TypeGuardrail || t == TypeDomain
}

// Enforcement tells the host how strongly to apply a skill
type Enforcement string

const (
	EnforcementBlock   Enforcement = "block"
	EnforcementSuggest Enforcement = "suggest"
	EnforcementWarn    Enforcement = "warn"
)

// Valid reports whether e is a known enforcement level
func (e Enforcement) Valid() bool {
	switch e {
	case EnforcementBlock, EnforcementSuggest, EnforcementWarn:
		return true
	}
	return false
}

// Priority orders and groups matched skills in the advisory
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Priorities lists every tier, most urgent first
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the tier index (0 is most urgent), or -1 for unknown values
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return -1
}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// PromptTriggers lists the conditions that mark a skill as relevant
type PromptTriggers struct {
	Keywords       []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	IntentPatterns []string `json:"intentPatterns,omitempty" yaml:"intentPatterns,omitempty"`
}

// Rule is a single skill's definition
type Rule struct {
	Type           Type            `json:"type" yaml:"type"`
	Enforcement    Enforcement     `json:"enforcement" yaml:"enforcement"`
	Priority       Priority        `json:"priority" yaml:"priority"`
	PromptTriggers *PromptTriggers `json:"promptTriggers,omitempty" yaml:"promptTriggers,omitempty"`
}

// HasTriggers reports whether the rule carries a trigger specification
func (r Rule) HasTriggers() bool {
	return r.PromptTriggers != nil
}

// Skill pairs a skill name with its rule
type Skill struct {
	Name string
	Rule Rule
}

// RuleSet is a loaded rule file, skills in file order
type RuleSet struct {
	Version string
	Skills  []Skill
}

// Lookup returns the rule for a skill name
func (s *RuleSet) Lookup(name string) (Rule, bool) {
	for _, skill := range s.Skills {
		if skill.Name == name {
			return skill.Rule, true
		}
	}
	return Rule{}, false
}

// Names returns skill names in file order
func (s *RuleSet) Names() []string {
	names := make([]string, 0, len(s.Skills))
	for _, skill := range s.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// Select returns a rule set holding only the named skills, in the order
// given. Unknown names are an error.
func (s *RuleSet) Select(names []string) (*RuleSet, error) {
	selected := &RuleSet{Version: s.Version}
	for _, name := range names {
		rule, ok := s.Lookup(name)
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown skill %q", name).
				WithDetail("skill", name)
		}
		selected.add(name, rule)
	}
	return selected, nil
}

// add appends a skill, or replaces the rule in place when the name repeats
func (s *RuleSet) add(name string, rule Rule) {
	for i := range s.Skills {
		if s.Skills[i].Name == name {
			s.Skills[i].Rule = rule
			return
		}
	}
	s.Skills = append(s.Skills, Skill{Name: name, Rule: rule})
}
