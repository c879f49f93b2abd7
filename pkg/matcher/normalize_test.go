package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"lowercases", "Deploy To PRODUCTION", "deploy to production"},
		{"trims", "  fix the bug \n", "fix the bug"},
		{"collapses whitespace", "fix\t\tthe   \n bug", "fix the bug"},
		{"strips ascii punctuation", "can you deploy?!", "can you deploy"},
		{"strips full-width punctuation", "部署吗？！。", "部署吗"},
		{"keeps other punctuation", "deploy, then test.", "deploy, then test."},
		{"punctuation between words leaves double space", "ready ? go", "ready  go"},
		{"empty", "", ""},
		{"only whitespace and punctuation", "  ?? ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePrompt(tt.prompt))
		})
	}
}
