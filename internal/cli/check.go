package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/report"
)

func (a *app) newCheckCommand() *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report which teams are eliminated",
		Long: `Check reads a division and prints, for every team, either
"<team> is not eliminated" or "<team> is eliminated by the subset R = { ... }".

With no file (or "-") the standings are read from stdin. With --source postgres
they are read from the teams and schedule tables for --season.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, summary)
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "append a division summary")
	addInputFlags(cmd)

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, summary bool) error {
	d, err := a.loadDivision(cmd.Context(), cmd.InOrStdin())
	if err != nil {
		return err
	}
	alg, err := a.cfg.Algorithm()
	if err != nil {
		return err
	}

	e := elimination.New(d, elimination.WithAlgorithm(alg), elimination.WithLogger(a.logger))
	results, err := e.Results()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Render(out, results); err != nil {
		return err
	}
	if !summary {
		return nil
	}

	s, err := report.Summarize(d, results)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	return s.Write(out)
}

// addInputFlags registers the flags selecting and validating the input.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "input source: text or postgres")
	cmd.Flags().Bool("strict", false, "require remaining games to equal the division schedule")
	cmd.Flags().String("dsn", "", "PostgreSQL connection string (postgres source)")
	cmd.Flags().String("season", "", "season to load (postgres source)")
}
