package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/skillhook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "version": "1.0",
  "description": "ignored",
  "skills": {
    "zeta-guard": {
      "type": "guardrail",
      "enforcement": "block",
      "priority": "critical",
      "promptTriggers": {
        "keywords": ["deploy production"],
        "intentPatterns": ["(ship|release).*prod"]
      },
      "fileTriggers": {"pathPatterns": ["deploy/**"]}
    },
    "alpha-docs": {
      "type": "domain",
      "enforcement": "suggest",
      "priority": "low"
    },
    "middle-db": {
      "type": "domain",
      "enforcement": "warn",
      "priority": "high",
      "promptTriggers": {"intentPatterns": ["migrat(e|ion)"]}
    }
  }
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestParseJSONKeepsFileOrder(t *testing.T) {
	set, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "1.0", set.Version)
	assert.Equal(t, []string{"zeta-guard", "alpha-docs", "middle-db"}, set.Names())

	guard, ok := set.Lookup("zeta-guard")
	require.True(t, ok)
	assert.Equal(t, TypeGuardrail, guard.Type)
	assert.Equal(t, EnforcementBlock, guard.Enforcement)
	assert.Equal(t, PriorityCritical, guard.Priority)
	require.NotNil(t, guard.PromptTriggers)
	assert.Equal(t, []string{"deploy production"}, guard.PromptTriggers.Keywords)
	assert.Equal(t, []string{"(ship|release).*prod"}, guard.PromptTriggers.IntentPatterns)

	docs, _ := set.Lookup("alpha-docs")
	assert.Nil(t, docs.PromptTriggers)

	db, _ := set.Lookup("middle-db")
	assert.Nil(t, db.PromptTriggers.Keywords)
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"skills": {`},
		{"not an object", `["a", "b"]`},
		{"missing skills", `{"version": "1.0"}`},
		{"null skills", `{"skills": null}`},
		{"skills not an object", `{"skills": []}`},
		{"keywords not strings", `{"skills": {"a": {"promptTriggers": {"keywords": [1]}}}}`},
		{"trailing garbage", `{"skills": {}} extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestParseJSONNumericVersion(t *testing.T) {
	set, err := Parse([]byte(`{"version": 2, "skills": {}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "2", set.Version)
	assert.Empty(t, set.Skills)
}

func TestParseYAMLKeepsFileOrder(t *testing.T) {
	data := `
version: "1.0"
skills:
  zeta:
    type: guardrail
    enforcement: block
    priority: critical
    promptTriggers:
      keywords: [rollback]
  alpha:
    type: domain
    enforcement: suggest
    priority: medium
    promptTriggers:
      intentPatterns:
        - 'revert.*commit'
`
	set, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1.0", set.Version)
	assert.Equal(t, []string{"zeta", "alpha"}, set.Names())

	alpha, _ := set.Lookup("alpha")
	assert.Equal(t, PriorityMedium, alpha.Priority)
	assert.Equal(t, []string{"revert.*commit"}, alpha.PromptTriggers.IntentPatterns)
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("version: 1\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("skills: [a]\n"), FormatYAML)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".claude", "skills", "skill-rules.json")
		writeFile(t, path, sampleJSON)

		set, found, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
		assert.Len(t, set.Skills, 3)
	})

	t.Run("yaml sibling of missing json", func(t *testing.T) {
		dir := t.TempDir()
		jsonPath := filepath.Join(dir, "skill-rules.json")
		yamlPath := filepath.Join(dir, "skill-rules.yaml")
		writeFile(t, yamlPath, "skills:\n  only:\n    priority: high\n")

		set, found, err := Load(jsonPath)
		require.NoError(t, err)
		assert.Equal(t, yamlPath, found)
		assert.Equal(t, []string{"only"}, set.Names())
	})

	t.Run("json preferred over yaml", func(t *testing.T) {
		dir := t.TempDir()
		jsonPath := filepath.Join(dir, "skill-rules.json")
		writeFile(t, jsonPath, `{"skills": {"from-json": {}}}`)
		writeFile(t, filepath.Join(dir, "skill-rules.yml"), "skills:\n  from-yaml: {}\n")

		set, _, err := Load(jsonPath)
		require.NoError(t, err)
		assert.Equal(t, []string{"from-json"}, set.Names())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skill-rules.json")

		_, _, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesNotFound))
		assert.Equal(t, path, errors.Detail(err, "path"))
		assert.Contains(t, err.Error(), "skill-rules.json not found at: "+path)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skill-rules.json")
		require.NoError(t, os.MkdirAll(path, 0755))

		_, _, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesNotFound))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skill-rules.json")
		writeFile(t, path, `{"skills": {"broken": `)

		_, found, err := Load(path)
		require.Error(t, err)
		assert.Equal(t, path, found)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesParse))
	})
}

func TestWarnings(t *testing.T) {
	set := &RuleSet{}
	set.add("ok", Rule{Type: TypeDomain, Enforcement: EnforcementSuggest, Priority: PriorityLow,
		PromptTriggers: &PromptTriggers{Keywords: []string{"docs"}}})
	set.add("odd", Rule{Type: "tooling", Enforcement: "deny", Priority: "urgent",
		PromptTriggers: &PromptTriggers{Keywords: []string{"  "}}})

	warnings := set.Warnings()
	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], `"odd" has unknown type "tooling"`)
	assert.Contains(t, warnings[1], `unknown enforcement "deny"`)
	assert.Contains(t, warnings[2], `unknown priority "urgent"`)
	assert.Contains(t, warnings[3], "empty keyword")
}
