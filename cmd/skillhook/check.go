package skillhook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/skillhook/pkg/hook"
	"github.com/arthur-debert/skillhook/pkg/logging"
	"github.com/arthur-debert/skillhook/pkg/matcher"
	"github.com/arthur-debert/skillhook/pkg/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "check [prompt...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

			f, err := ui.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}

			prompt, err := readPrompt(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			resolved, err := resolve(opts, cmd, true)
			if err != nil {
				return err
			}

			evaluator := matcher.NewEvaluator(matcher.Options{
				RegexTimeout:   resolved.Config.Match.RegexTimeout,
				OnPatternError: hook.PatternErrorPrinter(cmd.ErrOrStderr()),
			})
			matches := evaluator.Evaluate(prompt, resolved.Rules)
			logger.Info().Str("rules", resolved.RulesFound).Int("matches", len(matches)).Msg("Prompt checked")

			return ui.RenderMatches(cmd.OutOrStdout(), f, matches)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	return cmd
}

// readPrompt joins the arguments, or reads stdin when there are none
func readPrompt(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if isInteractive(stdin) {
		return "", errors.New(MsgErrEmptyInput)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf(MsgErrReadPrompt, err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", errors.New(MsgErrEmptyInput)
	}
	return prompt, nil
}

// resolve finds the project from the working directory, optionally loading
// its rule set
func resolve(opts *rootOptions, cmd *cobra.Command, withRules bool) (*hook.Resolved, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf(MsgErrResolve, err)
	}

	runner := opts.runner(cmd)
	var resolved *hook.Resolved
	if withRules {
		resolved, err = runner.Resolve(cwd)
	} else {
		resolved, err = runner.ResolveProject(cwd)
	}
	if err != nil {
		return nil, fmt.Errorf(MsgErrResolve, err)
	}
	return resolved, nil
}
