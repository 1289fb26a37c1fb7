package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/server"
)

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve elimination results over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	addInputFlags(cmd)

	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := a.loadDivision(ctx, cmd.InOrStdin())
	if err != nil {
		return err
	}
	alg, err := a.cfg.Algorithm()
	if err != nil {
		return err
	}

	e := elimination.New(d, elimination.WithAlgorithm(alg), elimination.WithLogger(a.logger))
	a.logger.Info("division loaded", "teams", d.TeamCount(), "algorithm", alg.String())

	return server.ListenAndServe(ctx, a.cfg.Server.Addr, server.NewRouter(e, a.logger), a.logger)
}
