package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/store"
)

func (a *app) newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Store a standings file in PostgreSQL as a season",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runImport,
	}

	cmd.Flags().Bool("strict", false, "require remaining games to equal the division schedule")
	cmd.Flags().String("dsn", "", "PostgreSQL connection string")
	cmd.Flags().String("season", "", "season to write")

	return cmd
}

func (a *app) runImport(cmd *cobra.Command, args []string) error {
	if a.cfg.Input.DSN == "" || a.cfg.Input.Season == "" {
		return errors.New("import: --dsn and --season are required")
	}

	var opts []division.Option
	if a.cfg.Input.Strict {
		opts = append(opts, division.WithStrictSchedule())
	}
	d, err := division.Load(args[0], opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := store.Open(ctx, a.cfg.Input.DSN)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return err
	}
	if err := st.SaveDivision(ctx, a.cfg.Input.Season, d); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d teams into season %q\n", d.TeamCount(), a.cfg.Input.Season)

	return err
}
