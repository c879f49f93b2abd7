package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig is the styles file: a colour palette and named styles
type StylesConfig struct {
	Colors map[string]string   `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultStyles = mustParseStyles(embeddedStyles)

// ParseStyles decodes a styles file
func ParseStyles(data []byte) (*StylesConfig, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return &cfg, nil
}

func mustParseStyles(data []byte) *StylesConfig {
	cfg, err := ParseStyles(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Style builds the named style on r. Unknown names give an unstyled style.
func (c *StylesConfig) Style(r *lipgloss.Renderer, name string) lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	style := r.NewStyle()

	def, ok := c.Styles[name]
	if !ok {
		return style
	}
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		color := def.Foreground
		if named, ok := c.Colors[color]; ok {
			color = named
		}
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}

// Styled renders text with the named built-in style. A nil renderer means
// plain output and returns text unchanged.
func Styled(r *lipgloss.Renderer, name, text string) string {
	if r == nil {
		return text
	}
	return defaultStyles.Style(r, name).Render(text)
}
