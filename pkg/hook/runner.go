package hook

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/arthur-debert/skillhook/pkg/config"
	"github.com/arthur-debert/skillhook/pkg/errors"
	"github.com/arthur-debert/skillhook/pkg/logging"
	"github.com/arthur-debert/skillhook/pkg/matcher"
	"github.com/arthur-debert/skillhook/pkg/paths"
	"github.com/arthur-debert/skillhook/pkg/report"
	"github.com/arthur-debert/skillhook/pkg/rules"
	"github.com/arthur-debert/skillhook/pkg/ui"
)

// Prefix marks every diagnostic line the hook writes to stderr
const Prefix = "[skill-activation-prompt]"

// Exit codes. Only the two setup checks exit non-zero; uncaught errors are
// reported and exit 0 so the host still processes the prompt.
const (
	ExitOK    = 0
	ExitSetup = 1
)

// Runner executes one hook invocation
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ProjectDir overrides every other project resolution step
	ProjectDir string

	// Overrides are dotted settings keys applied over all other layers
	Overrides map[string]interface{}

	// ExecutableDir defaults to the running binary's directory
	ExecutableDir string

	// ConfigureLogging, when set, is called once the project settings are known
	ConfigureLogging func(cfg *config.Config)
}

// Resolved is the project and rule set a prompt is evaluated against
type Resolved struct {
	Config     *config.Config
	Project    paths.Resolution
	Rules      *rules.RuleSet
	RulesPath  string
	RulesFound string
}

// Run performs the invocation and returns the process exit code
func (r *Runner) Run() (code int) {
	logger := logging.GetLogger("hook.runner")
	envVar := paths.EnvProjectDir
	defer logging.LogOperationStart(logger, "hook")()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("Recovered from panic")
			r.banner(fmt.Sprintf("%v", rec), string(debug.Stack()), envVar)
			code = ExitOK
		}
	}()

	in, err := ReadInput(r.stdin())
	if err != nil {
		return r.fail(err, envVar)
	}
	logger.Debug().
		Str("session_id", in.SessionID).
		Str("transcript_path", in.TranscriptPath).
		Str("permission_mode", in.PermissionMode).
		Str("cwd", in.Cwd).
		Msg("Hook input received")

	resolved, err := r.Resolve(in.Cwd)
	if resolved != nil && resolved.Config != nil {
		envVar = resolved.Config.Project.EnvVar
	}
	if err != nil {
		return r.fail(err, envVar)
	}

	evaluator := matcher.NewEvaluator(matcher.Options{
		RegexTimeout:   resolved.Config.Match.RegexTimeout,
		OnPatternError: PatternErrorPrinter(r.Stderr),
	})
	matches := evaluator.Evaluate(in.Prompt, resolved.Rules)

	block, err := report.Render(matches)
	if err != nil {
		return r.fail(errors.Wrap(err, errors.ErrInternal, "failed to render advisory"), envVar)
	}
	if block != "" {
		fmt.Fprintln(r.Stdout, block)
	}

	logger.Info().Int("matches", len(matches)).Msg("Hook completed")
	return ExitOK
}

// Resolve finds the project directory and loads its settings and rule set
func (r *Runner) Resolve(cwd string) (*Resolved, error) {
	resolved, err := r.ResolveProject(cwd)
	if err != nil {
		return resolved, err
	}
	if err := r.LoadRules(resolved); err != nil {
		return resolved, err
	}
	return resolved, nil
}

// ResolveProject finds the project directory and loads its settings.
// Project resolution only sees defaults, environment and overrides, since
// the project settings file lives inside the project.
func (r *Runner) ResolveProject(cwd string) (*Resolved, error) {
	base, err := config.Load("", r.Overrides)
	if err != nil {
		return nil, err
	}
	resolved := &Resolved{Config: base}

	resolved.Project, err = paths.ResolveProjectDir(paths.ResolveOptions{
		Override:      r.ProjectDir,
		EnvVar:        base.Project.EnvVar,
		Marker:        base.Project.Marker,
		ExecutableDir: r.executableDir(),
		InputCwd:      cwd,
	})
	if err != nil {
		return resolved, err
	}

	cfg, err := config.Load(resolved.Project.Dir, r.Overrides)
	if err != nil {
		return resolved, err
	}
	resolved.Config = cfg
	if r.ConfigureLogging != nil {
		r.ConfigureLogging(cfg)
	}

	logger := logging.GetLogger("hook.runner")
	logger.Debug().
		Str("project", resolved.Project.Dir).
		Str("source", string(resolved.Project.Source)).
		Str("settings", cfg.Source).
		Msg("Project resolved")

	return resolved, nil
}

// LoadRules reads the rule set of a resolved project
func (r *Runner) LoadRules(resolved *Resolved) error {
	var err error
	resolved.RulesPath = resolved.Config.RulesPath(resolved.Project.Dir)
	resolved.Rules, resolved.RulesFound, err = rules.Load(resolved.RulesPath)
	return err
}

// PatternErrorPrinter reports unusable intent patterns as diagnostic lines
func PatternErrorPrinter(w io.Writer) matcher.PatternErrorFunc {
	return func(skill, pattern string, err error) {
		timedOut := errors.IsErrorCode(err, errors.ErrPatternTimeout)
		if cause := stderrors.Unwrap(err); cause != nil {
			err = cause
		}
		if timedOut {
			fmt.Fprintf(w, "%s Regex pattern %q in skill %q timed out: %v\n", Prefix, pattern, skill, err)
			return
		}
		fmt.Fprintf(w, "%s Invalid regex pattern %q in skill %q: %v\n", Prefix, pattern, skill, err)
	}
}

// fail reports err and returns the exit code it maps to
func (r *Runner) fail(err error, envVar string) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrProjectDir:
		fmt.Fprintf(r.Stderr, "%s Invalid project directory: %s\n", Prefix, errors.Detail(err, "path"))
		return ExitSetup
	case errors.ErrRulesNotFound:
		fmt.Fprintf(r.Stderr, "%s %s\n", Prefix, errors.Message(err))
		return ExitSetup
	}

	logger := logging.GetLogger("hook.runner")
	logger.Debug().Err(err).Msg("Hook failed")
	r.banner(err.Error(), "", envVar)
	return ExitOK
}

func (r *Runner) banner(message, stack, envVar string) {
	cwd, _ := os.Getwd()

	out, err := report.ErrorBanner(report.BannerInfo{
		Message:       message,
		Stack:         stack,
		EnvVar:        envVar,
		EnvValue:      os.Getenv(envVar),
		ExecutableDir: r.executableDir(),
		Cwd:           cwd,
	}, ui.StyleRenderer(r.Stderr))
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s %s\n", Prefix, message)
		return
	}
	fmt.Fprint(r.Stderr, out)
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *Runner) executableDir() string {
	if r.ExecutableDir == "" {
		return paths.ExecutableDir()
	}
	return r.ExecutableDir
}
