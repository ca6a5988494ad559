package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, animation.SpeedNormal, cfg.Speed())
	assert.Equal(t, builder.Range{Min: 10, Max: 15}, cfg.Generator.Nodes)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	yml := writeFile(t, "pathviz.yaml", `
server:
  port: 9000
  debug: true
store:
  kind: file
  path: /tmp/graphs.json
generator:
  nodes: {min: 20, max: 30}
  weights: {min: 1, max: 9}
  width: 800
  height: 600
  seed: 7
playback:
  base_delay: 250ms
  speed: 2
`)
	env := writeFile(t, "test.env", "PATHVIZ_SPEED=0.5\n")
	t.Cleanup(func() { os.Unsetenv("PATHVIZ_SPEED") })
	t.Setenv("PATHVIZ_PORT", "9100")

	cfg, err := config.Load(yml, env)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port, "environment wins over YAML")
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, config.StoreFile, cfg.Store.Kind)
	assert.Equal(t, builder.Range{Min: 20, Max: 30}, cfg.Generator.Nodes)
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.BaseDelay)
	assert.Equal(t, animation.SpeedHalf, cfg.Speed(), ".env overrides YAML")
}

func TestLoad_RejectsUnknownYAMLField(t *testing.T) {
	yml := writeFile(t, "bad.yaml", "server:\n  prot: 1\n")
	_, err := config.Load(yml, noEnvFile(t))
	assert.Error(t, err)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("PATHVIZ_PORT", "eighty")
	_, err := config.Load("", noEnvFile(t))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"port":           func(c *config.Config) { c.Server.Port = 0 },
		"store kind":     func(c *config.Config) { c.Store.Kind = "redis" },
		"postgres url":   func(c *config.Config) { c.Store.Kind = config.StorePostgres },
		"file path":      func(c *config.Config) { c.Store.Kind = config.StoreFile; c.Store.Path = "" },
		"nodes range":    func(c *config.Config) { c.Generator.Nodes = builder.Range{Min: 9, Max: 3} },
		"too many nodes": func(c *config.Config) { c.Generator.Nodes = builder.Range{Min: 10, Max: builder.MaxNodes + 1} },
		"weights range":  func(c *config.Config) { c.Generator.Weights = builder.Range{Min: 1, Max: 0} },
		"canvas":         func(c *config.Config) { c.Generator.Width = 0 },
		"speed":          func(c *config.Config) { c.Playback.Speed = 3 },
		"base delay":     func(c *config.Config) { c.Playback.BaseDelay = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, config.Default().Validate())
}
