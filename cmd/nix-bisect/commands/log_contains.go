package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/nixbisect/internal/app"
)

func (c *CLI) newLogContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log-contains <attribute> <phrase>",
		Short: "Report whether the attribute's build log contains a phrase",
		Long: "Prints yes when the log contains the phrase, no_fail when it does not and the build failed,\n" +
			"and no_success when it does not and the build succeeded. A rebuild is forced when no\n" +
			"log is available yet.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			common, err := commonOptions(cmd)
			if err != nil {
				return err
			}

			match, err := c.app.LogContains(cmd.Context(), app.LogContainsOptions{
				CommonOptions: common,
				Target:        args[0],
				Phrase:        args[1],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), match.String())
			return nil
		},
	}
}
