package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/skillhook/pkg/errors"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "bare",
			err:  errors.New(errors.ErrRulesNotFound, "skill-rules.json not found at: /p/.claude/skills/skill-rules.json"),
			want: "[RULES_NOT_FOUND] skill-rules.json not found at: /p/.claude/skills/skill-rules.json",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrPatternInvalid, "invalid regex pattern %q in skill %q", "(", "deploy"),
			want: `[PATTERN_INVALID] invalid regex pattern "(" in skill "deploy"`,
		},
		{
			name: "wrapped cause",
			err:  errors.Wrapf(stderrors.New("unexpected EOF"), errors.ErrRulesParse, "failed to parse rule file %s", "rules.json"),
			want: "[RULES_PARSE] failed to parse rule file rules.json: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrRulesRead, "read"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrRulesRead, "read %s", "x"); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

// The hook picks its exit path from the code of the outermost HookError,
// even when a caller has added plain fmt wrapping on top.
func TestCodeClassification(t *testing.T) {
	projectErr := errors.New(errors.ErrProjectDir, "invalid project directory").WithDetail("path", "/gone")
	rulesErr := errors.Wrap(stderrors.New("no such file"), errors.ErrRulesNotFound, "skill-rules.json not found at: /p")
	inputErr := errors.New(errors.ErrInvalidInput, "hook input has no prompt")

	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"project dir", projectErr, errors.ErrProjectDir},
		{"rules not found", rulesErr, errors.ErrRulesNotFound},
		{"behind fmt wrapping", fmt.Errorf("failed to resolve project: %w", rulesErr), errors.ErrRulesNotFound},
		{"invalid input", inputErr, errors.ErrInvalidInput},
		{"plain error", stderrors.New("boom"), errors.ErrUnknown},
		{"nil", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.want)
			}
			if tt.want != errors.ErrUnknown && !errors.IsErrorCode(tt.err, tt.want) {
				t.Errorf("IsErrorCode(%v) = false", tt.want)
			}
			if errors.IsErrorCode(tt.err, errors.ErrInternal) {
				t.Error("IsErrorCode(ErrInternal) = true")
			}
		})
	}
}

func TestOutermostCodeWins(t *testing.T) {
	cause := stderrors.New("context deadline exceeded")
	timeout := errors.Wrap(cause, errors.ErrPatternTimeout, "pattern timed out").WithDetail("pattern", "^(a+)+$")
	outer := errors.Wrap(timeout, errors.ErrInternal, "evaluation failed")

	if got := errors.GetErrorCode(outer); got != errors.ErrInternal {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrInternal)
	}
	if !stderrors.Is(outer, errors.New(errors.ErrInternal, "")) {
		t.Error("errors.Is should match a HookError with the same code")
	}
	if stderrors.Is(outer, errors.New(errors.ErrRulesRead, "")) {
		t.Error("errors.Is matched an unrelated code")
	}
	if !stderrors.Is(outer, cause) {
		t.Error("errors.Is should reach the root cause")
	}

	var inner *errors.HookError
	if !stderrors.As(outer.Unwrap(), &inner) || inner.Code != errors.ErrPatternTimeout {
		t.Errorf("inner error = %v, want PATTERN_TIMEOUT", inner)
	}
}

func TestDetail(t *testing.T) {
	err := errors.New(errors.ErrProjectDir, "invalid project directory").
		WithDetail("path", "/missing/project").
		WithDetail("attempt", 2)
	wrapped := fmt.Errorf("resolve: %w", err)

	tests := []struct {
		name string
		err  error
		key  string
		want string
	}{
		{"string detail", err, "path", "/missing/project"},
		{"through fmt wrapping", wrapped, "path", "/missing/project"},
		{"non-string detail", err, "attempt", "2"},
		{"absent key", err, "skill", ""},
		{"plain error", stderrors.New("plain"), "path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Detail(tt.err, tt.key); got != tt.want {
				t.Errorf("Detail(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	var zero errors.HookError
	if got := zero.WithDetail("k", "v"); errors.Detail(got, "k") != "v" {
		t.Error("WithDetail on a zero HookError should allocate details")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "drops code and cause",
			err:  errors.Wrap(stderrors.New("stat failed"), errors.ErrRulesNotFound, "skill-rules.json not found at: /p"),
			want: "skill-rules.json not found at: /p",
		},
		{
			name: "plain error",
			err:  stderrors.New("plain"),
			want: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
