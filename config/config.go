// Package config loads pathviz settings: defaults, then a YAML file, then
// a .env file, then PATHVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/builder"
)

// Store kinds.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Generator GeneratorConfig `yaml:"generator"`
	Playback  PlaybackConfig  `yaml:"playback"`
}

type ServerConfig struct {
	Port  int  `yaml:"port" validate:"min=1,max=65535"`
	Debug bool `yaml:"debug"`
}

type StoreConfig struct {
	Kind        string `yaml:"kind" validate:"oneof=memory file postgres"`
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
}

// GeneratorConfig holds the defaults used when a request omits them.
type GeneratorConfig struct {
	Nodes   builder.Range `yaml:"nodes"`
	Weights builder.Range `yaml:"weights"`
	Width   float64       `yaml:"width" validate:"gt=0"`
	Height  float64       `yaml:"height" validate:"gt=0"`
	// Seed 0 means a fresh seed per generation.
	Seed int64 `yaml:"seed"`
}

type PlaybackConfig struct {
	BaseDelay time.Duration `yaml:"base_delay" validate:"gt=0"`
	Speed     float64       `yaml:"speed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Store:  StoreConfig{Kind: StoreMemory, Path: "graphs.json"},
		Generator: GeneratorConfig{
			Nodes:   builder.Range{Min: 10, Max: 15},
			Weights: builder.Range{Min: 1, Max: 20},
			Width:   1000,
			Height:  700,
		},
		Playback: PlaybackConfig{BaseDelay: animation.DefaultBaseDelay, Speed: 1},
	}
}

// Load builds a Config. path may be empty (no YAML file). envFiles default
// to ".env"; a missing env file is not an error. Variables already set in
// the process environment win over env files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config: env file %s: %w", f, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays PATHVIZ_* variables.
func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	str("PATHVIZ_STORE", &cfg.Store.Kind)
	str("PATHVIZ_STORE_PATH", &cfg.Store.Path)
	str("PATHVIZ_DATABASE_URL", &cfg.Store.DatabaseURL)

	parsers := []struct {
		key   string
		parse func(string) error
	}{
		{"PATHVIZ_PORT", func(v string) (err error) { cfg.Server.Port, err = strconv.Atoi(v); return }},
		{"PATHVIZ_DEBUG", func(v string) (err error) { cfg.Server.Debug, err = strconv.ParseBool(v); return }},
		{"PATHVIZ_SEED", func(v string) (err error) { cfg.Generator.Seed, err = strconv.ParseInt(v, 10, 64); return }},
		{"PATHVIZ_BASE_DELAY", func(v string) (err error) { cfg.Playback.BaseDelay, err = time.ParseDuration(v); return }},
		{"PATHVIZ_SPEED", func(v string) error {
			s, err := animation.ParseSpeed(v)
			cfg.Playback.Speed = float64(s)
			return err
		}},
	}
	for _, p := range parsers {
		v, ok := os.LookupEnv(p.key)
		if !ok {
			continue
		}
		if err := p.parse(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, p.key, v, err)
		}
	}

	return nil
}

// Validate checks field tags, then the cross-field rules tags cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	g := c.Generator
	if g.Nodes.Min < 1 || g.Nodes.Min > g.Nodes.Max || g.Nodes.Max > builder.MaxNodes {
		return fmt.Errorf("%w: generator.nodes [%d,%d]", ErrInvalid, g.Nodes.Min, g.Nodes.Max)
	}
	if g.Weights.Max < 1 || g.Weights.Min > g.Weights.Max {
		return fmt.Errorf("%w: generator.weights [%d,%d]", ErrInvalid, g.Weights.Min, g.Weights.Max)
	}
	if _, err := animation.ParseSpeed(strconv.FormatFloat(c.Playback.Speed, 'g', -1, 64)); err != nil {
		return fmt.Errorf("%w: playback.speed: %v", ErrInvalid, err)
	}
	if c.Store.Kind == StoreFile && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path required for file store", ErrInvalid)
	}
	if c.Store.Kind == StorePostgres && c.Store.DatabaseURL == "" {
		return fmt.Errorf("%w: store.database_url required for postgres store", ErrInvalid)
	}

	return nil
}

// Addr returns the listen address, e.g. ":8080".
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// Speed returns the configured playback multiplier.
func (c Config) Speed() animation.Speed {
	return animation.Speed(c.Playback.Speed)
}
