package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/skillhook/pkg/matcher"
	"github.com/arthur-debert/skillhook/pkg/rules"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// MatchView is the serialisable form of a matched skill
type MatchView struct {
	Skill       string `json:"skill"`
	Match       string `json:"match"`
	Priority    string `json:"priority"`
	Enforcement string `json:"enforcement"`
	Trigger     string `json:"trigger"`
}

// RuleView is the serialisable form of a loaded rule
type RuleView struct {
	Skill          string `json:"skill"`
	Type           string `json:"type"`
	Enforcement    string `json:"enforcement"`
	Priority       string `json:"priority"`
	Keywords       int    `json:"keywords"`
	IntentPatterns int    `json:"intentPatterns"`
}

// RulesView is the serialisable form of a rule set
type RulesView struct {
	Source  string     `json:"source"`
	Version string     `json:"version,omitempty"`
	Rules   []RuleView `json:"rules"`
}

// NewMatchViews converts evaluator output for display
func NewMatchViews(matches []matcher.Match) []MatchView {
	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, MatchView{
			Skill:       m.Name,
			Match:       string(m.Type),
			Priority:    string(m.Rule.Priority),
			Enforcement: string(m.Rule.Enforcement),
			Trigger:     m.Trigger,
		})
	}
	return views
}

// NewRulesView converts a rule set for display
func NewRulesView(set *rules.RuleSet, source string) RulesView {
	view := RulesView{Source: source, Rules: []RuleView{}}
	if set == nil {
		return view
	}
	view.Version = set.Version
	for _, s := range set.Skills {
		rv := RuleView{
			Skill:       s.Name,
			Type:        string(s.Rule.Type),
			Enforcement: string(s.Rule.Enforcement),
			Priority:    string(s.Rule.Priority),
		}
		if t := s.Rule.PromptTriggers; t != nil {
			rv.Keywords = len(t.Keywords)
			rv.IntentPatterns = len(t.IntentPatterns)
		}
		view.Rules = append(view.Rules, rv)
	}
	return view
}

// RenderMatches writes the matches for prompt to w in the given format
func RenderMatches(w io.Writer, format Format, matches []matcher.Match) error {
	views := NewMatchViews(matches)
	format = Resolve(format, w)

	if format == FormatJSON {
		return writeJSON(w, views)
	}

	if len(views) == 0 {
		_, err := fmt.Fprintln(w, "No skills matched.")
		return err
	}

	data := pterm.TableData{{"Skill", "Match", "Priority", "Enforcement", "Trigger"}}
	for _, v := range views {
		data = append(data, []string{v.Skill, v.Match, v.Priority, v.Enforcement, v.Trigger})
	}
	return writeTable(w, format, data)
}

// RenderRules writes the loaded rule set to w in the given format
func RenderRules(w io.Writer, format Format, set *rules.RuleSet, source string) error {
	view := NewRulesView(set, source)
	format = Resolve(format, w)

	if format == FormatJSON {
		return writeJSON(w, view)
	}

	var r *lipgloss.Renderer
	if format == FormatTerminal {
		r = terminalRenderer(w)
	}
	if _, err := fmt.Fprintln(w, heading(r, view)); err != nil {
		return err
	}

	if len(view.Rules) == 0 {
		_, err := fmt.Fprintln(w, "No rules defined.")
		return err
	}

	data := pterm.TableData{{"Skill", "Type", "Enforcement", "Priority", "Keywords", "Patterns"}}
	for _, rv := range view.Rules {
		data = append(data, []string{
			rv.Skill, rv.Type, rv.Enforcement, rv.Priority,
			strconv.Itoa(rv.Keywords), strconv.Itoa(rv.IntentPatterns),
		})
	}
	return writeTable(w, format, data)
}

// terminalRenderer styles output for w even when w is not a terminal,
// as asked for with --format term
func terminalRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

func heading(r *lipgloss.Renderer, view RulesView) string {
	text := fmt.Sprintf("%d rules from %s", len(view.Rules), view.Source)
	if view.Version != "" {
		text += fmt.Sprintf(" (version %s)", view.Version)
	}
	return Styled(r, "Heading", text)
}

func writeTable(w io.Writer, format Format, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if format != FormatTerminal {
		out = pterm.RemoveColorFromString(out)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
