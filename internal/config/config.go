// Package config loads rpgsim settings from a YAML file, an optional .env
// file and RPGSIM_* environment variables, in that order of precedence.
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

// Store backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RPGSIM_"

// Config is the full rpgsim configuration.
type Config struct {
	AssetsDir  string           `yaml:"assets_dir"`
	Store      StoreConfig      `yaml:"store"`
	Simulation SimulationConfig `yaml:"simulation"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// StoreConfig selects where player records live.
type StoreConfig struct {
	Backend   string `yaml:"backend"`
	RedisAddr string `yaml:"redis_addr"`
}

// SimulationConfig drives the tick loop.
type SimulationConfig struct {
	PlayerID    int `yaml:"player_id"`
	MaxTicks    int `yaml:"max_ticks"`
	TickDelayMS int `yaml:"tick_delay_ms"`
	// Seed fixes the session roller; zero seeds from the wall clock
	Seed int64 `yaml:"seed"`
}

// ServerConfig configures the websocket endpoint.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LogConfig configures the default slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AssetsDir: "game/assets",
		Store: StoreConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
		},
		Simulation: SimulationConfig{
			PlayerID:    0,
			MaxTicks:    200,
			TickDelayMS: 50,
		},
		Server: ServerConfig{Port: 8080},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of the given .env files, ".env" when none
// are named. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeMalformed, "failed to load env file")
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.NotFoundf("config file %s not found", path)
		}
		return errors.WrapWithCodef(err, errors.CodeIO, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCodef(err, errors.CodeMalformed, "failed to parse config %s", path)
	}
	return nil
}

// ApplyEnv overrides fields from RPGSIM_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	var bad []string
	num := func(key string, dst *int) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			bad = append(bad, EnvPrefix+key)
			return
		}
		*dst = n
	}

	str("ASSETS_DIR", &c.AssetsDir)
	str("STORE_BACKEND", &c.Store.Backend)
	str("REDIS_ADDR", &c.Store.RedisAddr)
	num("PLAYER_ID", &c.Simulation.PlayerID)
	num("MAX_TICKS", &c.Simulation.MaxTicks)
	num("TICK_DELAY_MS", &c.Simulation.TickDelayMS)
	num("PORT", &c.Server.Port)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			bad = append(bad, EnvPrefix+"SEED")
		} else {
			c.Simulation.Seed = seed
		}
	}

	if len(bad) > 0 {
		return errors.InvalidArgumentf("environment overrides must be integers: %s", strings.Join(bad, ", "))
	}
	return nil
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("assets_dir", c.AssetsDir, vb)
	errors.ValidateEnum("store.backend", c.Store.Backend, []string{BackendFile, BackendRedis}, vb)
	if c.Store.Backend == BackendRedis {
		errors.ValidateRequired("store.redis_addr", c.Store.RedisAddr, vb)
	}
	errors.ValidateMin("simulation.player_id", c.Simulation.PlayerID, 0, vb)
	errors.ValidateMin("simulation.max_ticks", c.Simulation.MaxTicks, 1, vb)
	errors.ValidateMin("simulation.tick_delay_ms", c.Simulation.TickDelayMS, 0, vb)
	errors.ValidateMin("server.port", c.Server.Port, 1, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{FormatText, FormatJSON}, vb)
	if _, err := parseLevel(c.Log.Level); err != nil {
		vb.Field("log.level", "must be one of: debug, info, warn, error")
	}

	return vb.Build()
}

// TickDelay returns the pause between simulation ticks.
func (c *Config) TickDelay() time.Duration {
	return time.Duration(c.Simulation.TickDelayMS) * time.Millisecond
}

// Logger returns a slog logger writing to w as configured.
func (c *LogConfig) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(s))
	return level, err
}
