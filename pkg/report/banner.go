package report

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/skillhook/pkg/ui"
	"github.com/charmbracelet/lipgloss"
)

// BannerTitle heads the error banner
const BannerTitle = "❌ HOOK ERROR: skill-activation-prompt"

const notSet = "(not set)"

// BannerInfo is what the error banner reports
type BannerInfo struct {
	Message string
	// Stack is only set for recovered panics
	Stack string

	EnvVar        string
	EnvValue      string
	ExecutableDir string
	Cwd           string
}

type bannerData struct {
	BannerInfo
	Rule  string
	Title string
}

// ErrorBanner renders the banner printed for uncaught errors. A nil renderer
// produces plain text.
func ErrorBanner(info BannerInfo, r *lipgloss.Renderer) (string, error) {
	if info.EnvValue == "" {
		info.EnvValue = notSet
	}

	title := ui.Styled(r, "BannerTitle", BannerTitle)

	var buf bytes.Buffer
	data := bannerData{BannerInfo: info, Rule: Rule, Title: title}
	if err := templates.ExecuteTemplate(&buf, "banner.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to execute banner template: %w", err)
	}
	return buf.String(), nil
}
