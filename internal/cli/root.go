// Package cli implements the pennant command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pennant/config"
	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/logging"
	"github.com/katalvlaran/pennant/store"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"source":     "input.source",
	"strict":     "input.strict",
	"dsn":        "input.dsn",
	"season":     "input.season",
	"algorithm":  "solver.algorithm",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"addr":       "server.addr",
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pennant",
		Short: "Find teams mathematically eliminated from first place",
		Long: `Pennant reads division standings and the games left between teams,
and reports which teams can no longer finish first, each with the subset
of teams that proves it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().String("algorithm", "", "max-flow algorithm: edmonds-karp or dinic")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "", "log format: text or json")

	root.AddCommand(a.newCheckCommand(), a.newServeCommand(), a.newImportCommand())

	return root
}

// Execute runs the pennant command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// configure resolves configuration for the command being run.
func (a *app) configure(cmd *cobra.Command, args []string) error {
	v := viper.New()
	config.SetDefaults(v)
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	}
	// Unchanged flags never shadow env, file or defaults.
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	a.logger.Debug("configuration loaded",
		"source", cfg.Input.Source,
		"path", cfg.Input.Path,
		"algorithm", cfg.Solver.Algorithm,
	)

	return nil
}

// loadDivision reads the division named by the configured input source.
// A text source without a path, or with "-", reads stdin.
func (a *app) loadDivision(ctx context.Context, stdin io.Reader) (*division.Division, error) {
	var opts []division.Option
	if a.cfg.Input.Strict {
		opts = append(opts, division.WithStrictSchedule())
	}

	switch a.cfg.Input.Source {
	case config.SourcePostgres:
		st, err := store.Open(ctx, a.cfg.Input.DSN)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		return st.LoadDivision(ctx, a.cfg.Input.Season, opts...)
	default:
		if p := a.cfg.Input.Path; p != "" && p != "-" {
			return division.Load(p, opts...)
		}

		return division.Parse(stdin, opts...)
	}
}
