package skillhook

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/skillhook/internal/version"
	"github.com/arthur-debert/skillhook/pkg/config"
	"github.com/arthur-debert/skillhook/pkg/hook"
	"github.com/arthur-debert/skillhook/pkg/logging"
	"github.com/arthur-debert/skillhook/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags and the exit code of the hook run
type rootOptions struct {
	verbosity  int
	projectDir string
	rulesPath  string

	exitCode int
}

// overrides turns flags into dotted settings keys
func (o *rootOptions) overrides() map[string]interface{} {
	m := map[string]interface{}{}
	if o.rulesPath != "" {
		m["rules.path"] = o.rulesPath
	}
	if o.verbosity > 0 {
		m["logging.verbosity"] = o.verbosity
	}
	return m
}

// runner builds a hook runner wired to the command's streams
func (o *rootOptions) runner(cmd *cobra.Command) *hook.Runner {
	return &hook.Runner{
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		ProjectDir: o.projectDir,
		Overrides:  o.overrides(),
		ConfigureLogging: func(cfg *config.Config) {
			logging.Setup(logging.Options{
				Verbosity: max(o.verbosity, cfg.Logging.Verbosity),
				Console:   cmd.ErrOrStderr(),
				File:      cfg.Logging.File,
			})
		},
	}
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return opts.exitCode
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "skillhook",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Console only until the project settings are known
			logging.Setup(logging.Options{Verbosity: opts.verbosity, Console: cmd.ErrOrStderr()})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Nothing is piped in: someone ran the binary by hand
			if isInteractive(cmd.InOrStdin()) {
				return cmd.Help()
			}
			opts.exitCode = opts.runner(cmd).Run()
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.projectDir, "project-dir", "", MsgFlagProjectDir)
	rootCmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", MsgFlagRules)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// isInteractive reports whether r is a terminal
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError writes a command error, in red on a colour terminal
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.Styled(ui.StyleRenderer(w), "Error", fmt.Sprintf(MsgError, err)))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
