package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadtrip/config"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve_Defaults(t *testing.T) {
	cfg, err := config.Resolve(nil, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Borders:    config.DefaultBorders,
		Capitals:   config.DefaultCapitals,
		StateNames: config.DefaultStateNames,
		LogLevel:   slog.LevelInfo,
		CacheSize:  config.DefaultCacheSize,
	}, cfg)
}

func TestResolve_ArgsOverrideEnv(t *testing.T) {
	env := envMap(map[string]string{
		config.EnvBorders:    "env-borders.txt",
		config.EnvCapitals:   "env-capdist.csv",
		config.EnvStateNames: "env-names.tsv",
		config.EnvAliases:    " aliases.yaml ",
		config.EnvLogLevel:   "DEBUG",
		config.EnvCacheSize:  "8",
	})

	cfg, err := config.Resolve([]string{"b.txt"}, env)
	require.NoError(t, err)
	assert.Equal(t, "b.txt", cfg.Borders)
	assert.Equal(t, "env-capdist.csv", cfg.Capitals)
	assert.Equal(t, "env-names.tsv", cfg.StateNames)
	assert.Equal(t, "aliases.yaml", cfg.Aliases)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 8, cfg.CacheSize)

	cfg, err = config.Resolve([]string{"b.txt", "c.csv", "n.tsv"}, env)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "c.csv", "n.tsv"}, []string{cfg.Borders, cfg.Capitals, cfg.StateNames})
}

func TestResolve_Invalid(t *testing.T) {
	cases := map[string]struct {
		args []string
		env  map[string]string
	}{
		"too many args":   {args: []string{"a", "b", "c", "d"}},
		"bad log level":   {env: map[string]string{config.EnvLogLevel: "loud"}},
		"bad cache size":  {env: map[string]string{config.EnvCacheSize: "many"}},
		"zero cache size": {env: map[string]string{config.EnvCacheSize: "0"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Resolve(tc.args, envMap(tc.env))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ROADTRIP_CAPDIST=from-dotenv.csv\n"), 0o600))
	require.NoError(t, os.Unsetenv(config.EnvCapitals))
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvCapitals) })

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.Capitals)
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ROADTRIP_BORDERS=from-dotenv.txt\n"), 0o600))
	t.Setenv(config.EnvBorders, "from-env.txt")

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.Borders)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
