package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/skillhook/pkg/errors"
	"github.com/arthur-debert/skillhook/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Load reads the rule file at path. When a .json path is missing, sibling
// .yaml and .yml files are tried. It returns the file actually read.
func Load(path string) (*RuleSet, string, error) {
	logger := logging.GetLogger("rules.loader")

	found, err := locate(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(found)
	if err != nil {
		return nil, found, errors.Wrapf(err, errors.ErrRulesRead, "failed to read rule file %s", found).
			WithDetail("path", found)
	}

	set, err := Parse(data, formatOf(found))
	if err != nil {
		return nil, found, errors.Wrapf(err, errors.ErrRulesParse, "failed to parse rule file %s", found).
			WithDetail("path", found)
	}

	for _, warning := range set.Warnings() {
		logger.Debug().Str("path", found).Msg(warning)
	}
	logger.Debug().
		Str("path", found).
		Str("version", set.Version).
		Strs("skills", set.Names()).
		Msg("Loaded rule file")

	return set, found, nil
}

// Format is a rule file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Parse decodes rule file content
func Parse(data []byte, format Format) (*RuleSet, error) {
	set := &RuleSet{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, set); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

func locate(path string) (string, error) {
	candidates := []string{path}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		base := strings.TrimSuffix(path, filepath.Ext(path))
		candidates = append(candidates, base+".yaml", base+".yml")
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrRulesNotFound, "%s not found at: %s", filepath.Base(path), path).
		WithDetail("path", path)
}

// Warnings describes entries that load fine but are probably mistakes
func (s *RuleSet) Warnings() []string {
	var warnings []string
	for _, skill := range s.Skills {
		r := skill.Rule
		if !r.Type.Valid() {
			warnings = append(warnings, fmt.Sprintf("skill %q has unknown type %q", skill.Name, r.Type))
		}
		if !r.Enforcement.Valid() {
			warnings = append(warnings, fmt.Sprintf("skill %q has unknown enforcement %q", skill.Name, r.Enforcement))
		}
		if !r.Priority.Valid() {
			warnings = append(warnings, fmt.Sprintf("skill %q has unknown priority %q and will never be listed", skill.Name, r.Priority))
		}
		if r.PromptTriggers == nil {
			continue
		}
		for _, kw := range r.PromptTriggers.Keywords {
			if strings.TrimSpace(kw) == "" {
				warnings = append(warnings, fmt.Sprintf("skill %q has an empty keyword, which matches every prompt", skill.Name))
			}
		}
	}
	return warnings
}
