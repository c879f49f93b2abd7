package skillhook

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/skillhook/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpIsStyled reports whether help text goes to a colour terminal
func helpIsStyled() bool {
	return ui.DetectFormat(os.Stdout) == ui.FormatTerminal
}

// formatBold returns s in bold when help output is a terminal
func formatBold(s string) string {
	if !helpIsStyled() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns s upper-cased, and bold on a terminal
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"boldUpper": formatBoldUpper,
	})
}
