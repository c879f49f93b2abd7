package skillhook

import (
	"fmt"
	"io"

	"github.com/arthur-debert/skillhook/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := io.WriteString(out, config.DefaultsContent())
				return err
			}

			resolved, err := resolve(opts, cmd, false)
			if err != nil {
				return err
			}

			data, err := resolved.Config.MarshalTOML()
			if err != nil {
				return err
			}

			if resolved.Config.Source != "" {
				fmt.Fprintf(out, MsgSettingsSource, resolved.Config.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
