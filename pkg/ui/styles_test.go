package ui_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/skillhook/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyles(t *testing.T) {
	cfg, err := ui.ParseStyles([]byte(`
colors:
  accent: "#ff00ff"
styles:
  Title:
    bold: true
    foreground: accent
`))
	require.NoError(t, err)
	assert.Equal(t, "#ff00ff", cfg.Colors["accent"])
	assert.Equal(t, ui.StyleDef{Bold: true, Foreground: "accent"}, cfg.Styles["Title"])

	_, err = ui.ParseStyles([]byte("styles: ["))
	assert.Error(t, err)
}

func TestStyleResolvesPalette(t *testing.T) {
	cfg := &ui.StylesConfig{
		Colors: map[string]string{"accent": "#ff00ff"},
		Styles: map[string]ui.StyleDef{"Title": {Bold: true, Foreground: "accent"}},
	}
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.TrueColor)

	style := cfg.Style(r, "Title")
	assert.True(t, style.GetBold())
	assert.Equal(t, lipgloss.Color("#ff00ff"), style.GetForeground())

	plain := cfg.Style(r, "Missing")
	assert.False(t, plain.GetBold())
}

func TestStyled(t *testing.T) {
	assert.Equal(t, "hello", ui.Styled(nil, "Heading", "hello"))

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.TrueColor)
	out := ui.Styled(r, "Heading", "hello")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "\x1b[")
}
