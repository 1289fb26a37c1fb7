package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/config"
	"github.com/katalvlaran/pennant/flow"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, config.SourceText, c.Input.Source)
	require.Equal(t, ":8080", c.Server.Addr)

	alg, err := c.Algorithm()
	require.NoError(t, err)
	require.Equal(t, flow.AlgorithmEdmondsKarp, alg)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	c, err := config.Load(v)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pennant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  source: postgres
  dsn: postgres://localhost/pennant
  season: "2008"
solver:
  algorithm: dinic
logging:
  level: debug
`), 0o600))
	t.Setenv("PENNANT_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("PENNANT_LOGGING_FORMAT", "json")

	v := viper.New()
	config.SetDefaults(v)
	v.SetConfigFile(path)

	c, err := config.Load(v)
	require.NoError(t, err)
	require.Equal(t, config.SourcePostgres, c.Input.Source)
	require.Equal(t, "2008", c.Input.Season)
	require.Equal(t, "debug", c.Logging.Level)
	require.Equal(t, "json", c.Logging.Format)
	require.Equal(t, "127.0.0.1:9000", c.Server.Addr)

	alg, err := c.Algorithm()
	require.NoError(t, err)
	require.Equal(t, flow.AlgorithmDinic, alg)
}

func TestLoad_MissingFile(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.SetConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load(v)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := config.Default()
	c.Input.Source = config.SourcePostgres
	c.Solver.Algorithm = "simplex"
	c.Logging.Level = "trace"
	c.Logging.Format = "xml"
	c.Server.Addr = ""

	err := c.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	var verrs config.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, len(verrs))
	for i, e := range verrs {
		fields[i] = e.Field
	}
	require.Equal(t, []string{
		"input.dsn", "input.season", "solver.algorithm",
		"logging.level", "logging.format", "server.addr",
	}, fields)
	require.Contains(t, err.Error(), "6 validation errors")

	c = config.Default()
	c.Input.Source = "ftp"
	require.EqualError(t, c.Validate(), "input.source: must be text or postgres (got: ftp)")
}
