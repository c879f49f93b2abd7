package skillhook

import (
	"fmt"

	"github.com/arthur-debert/skillhook/pkg/ui"
	"github.com/spf13/cobra"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules [skill...]",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}

			resolved, err := resolve(opts, cmd, true)
			if err != nil {
				return err
			}

			for _, warning := range resolved.Rules.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgRuleWarning, warning)
			}

			set := resolved.Rules
			if len(args) > 0 {
				if set, err = set.Select(args); err != nil {
					return err
				}
			}
			return ui.RenderRules(cmd.OutOrStdout(), f, set, resolved.RulesFound)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	return cmd
}
