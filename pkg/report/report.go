// Package report renders the hook's text output: the skill advisory that
// goes to stdout and the error banner that goes to stderr.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/arthur-debert/skillhook/pkg/matcher"
	"github.com/arthur-debert/skillhook/pkg/rules"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// Rule is the horizontal line framing every block
const Rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// tierHeadings holds the heading shown above each priority bucket
var tierHeadings = map[rules.Priority]string{
	rules.PriorityCritical: "⚠️ CRITICAL SKILLS (REQUIRED):",
	rules.PriorityHigh:     "📚 RECOMMENDED SKILLS:",
	rules.PriorityMedium:   "💡 SUGGESTED SKILLS:",
	rules.PriorityLow:      "📌 OPTIONAL SKILLS:",
}

// Tier is one rendered priority bucket
type Tier struct {
	Priority rules.Priority
	Heading  string
	Skills   []string
}

type advisoryData struct {
	Rule  string
	Tiers []Tier
}

// GroupByPriority buckets matches by priority tier, most urgent first.
// Empty tiers and matches with an unknown priority are left out; order
// within a tier follows the input.
func GroupByPriority(matches []matcher.Match) []Tier {
	var tiers []Tier
	for _, priority := range rules.Priorities {
		tier := Tier{Priority: priority, Heading: tierHeadings[priority]}
		for _, m := range matches {
			if m.Rule.Priority == priority {
				tier.Skills = append(tier.Skills, m.Name)
			}
		}
		if len(tier.Skills) > 0 {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// Render builds the advisory for a set of matches. It returns "" when there
// are no matches.
func Render(matches []matcher.Match) (string, error) {
	if len(matches) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	data := advisoryData{Rule: Rule, Tiers: GroupByPriority(matches)}
	if err := templates.ExecuteTemplate(&buf, "advisory.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to execute advisory template: %w", err)
	}
	return buf.String(), nil
}
