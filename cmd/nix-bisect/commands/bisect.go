package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nixbisect/internal/app"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) addBisectFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("try-cherry-pick", nil, "Cherry-pick this revision before building (repeatable)")
	cmd.Flags().Int("max-rebuilds", 0, "Skip revisions that need more than this many units rebuilt")
	cmd.Flags().String("failure-line", "", "Only count failures whose log contains this line as bad")
}

func (c *CLI) runBisect(cmd *cobra.Command, args []string) error {
	common, err := commonOptions(cmd)
	if err != nil {
		return err
	}

	patches, _ := cmd.Flags().GetStringArray("try-cherry-pick")
	failureLine, _ := cmd.Flags().GetString("failure-line")

	opts := app.BisectOptions{
		CommonOptions: common,
		Target:        args[0],
		Patches:       patches,
		FailureLine:   failureLine,
	}

	if cmd.Flags().Changed("max-rebuilds") {
		limit, _ := cmd.Flags().GetInt("max-rebuilds")
		if limit < 0 {
			return zerr.With(domain.ErrInvalidMaxRebuilds, "value", limit)
		}
		opts.MaxRebuilds = &limit
	}

	decision, err := c.app.Bisect(cmd.Context(), opts)
	if err != nil {
		return err
	}
	c.exitCode = c.reporter.Quit(decision)
	return nil
}

// parseBuildOptions parses name=value pairs. The value may itself contain '='.
func parseBuildOptions(raw []string) ([]domain.BuildOption, error) {
	opts := make([]domain.BuildOption, 0, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		if !ok {
			return nil, zerr.With(domain.ErrInvalidBuildOption, "option", r)
		}
		opt := domain.BuildOption{Name: strings.TrimSpace(name), Value: value}
		if err := opt.Validate(); err != nil {
			return nil, zerr.With(err, "option", r)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}
