package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/config"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg := config.Default()
	s.Require().NoError(cfg.Validate())
	s.Equal("game/assets", cfg.AssetsDir)
	s.Equal(config.BackendFile, cfg.Store.Backend)
	s.Equal(0, cfg.Simulation.PlayerID)
	s.Equal(200, cfg.Simulation.MaxTicks)
	s.Equal(50*time.Millisecond, cfg.TickDelay())
	s.Equal(8080, cfg.Server.Port)
}

func (s *ConfigTestSuite) TestLoadYAML() {
	path := s.write("rpgsim.yaml", `
assets_dir: /srv/assets
store:
  backend: redis
  redis_addr: cache:6379
simulation:
  max_ticks: 12
  tick_delay_ms: 0
  seed: 99
log:
  format: json
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("/srv/assets", cfg.AssetsDir)
	s.Equal(config.BackendRedis, cfg.Store.Backend)
	s.Equal("cache:6379", cfg.Store.RedisAddr)
	s.Equal(12, cfg.Simulation.MaxTicks)
	s.Equal(time.Duration(0), cfg.TickDelay())
	s.Equal(int64(99), cfg.Simulation.Seed)
	s.Equal(8080, cfg.Server.Port, "unset keys keep defaults")
}

func (s *ConfigTestSuite) TestLoadErrors() {
	_, err := config.Load(filepath.Join(s.dir, "missing.yaml"))
	s.True(errors.IsNotFound(err))

	_, err = config.Load(s.write("bad.yaml", "store: [unclosed"))
	s.True(errors.IsMalformed(err))

	_, err = config.Load(s.write("invalid.yaml", "store:\n  backend: sqlite\n"))
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "store.backend")
}

func (s *ConfigTestSuite) TestApplyEnv() {
	cfg := config.Default()
	err := cfg.ApplyEnv(env(map[string]string{
		"RPGSIM_ASSETS_DIR":    "/tmp/assets",
		"RPGSIM_PLAYER_ID":     "3",
		"RPGSIM_TICK_DELAY_MS": "5",
		"RPGSIM_SEED":          "42",
		"RPGSIM_LOG_LEVEL":     "debug",
		"RPGSIM_PORT":          "",
	}))
	s.Require().NoError(err)
	s.Equal("/tmp/assets", cfg.AssetsDir)
	s.Equal(3, cfg.Simulation.PlayerID)
	s.Equal(5*time.Millisecond, cfg.TickDelay())
	s.Equal(int64(42), cfg.Simulation.Seed)
	s.Equal("debug", cfg.Log.Level)
	s.Equal(8080, cfg.Server.Port)
}

func (s *ConfigTestSuite) TestApplyEnvRejectsNonIntegers() {
	cfg := config.Default()
	err := cfg.ApplyEnv(env(map[string]string{
		"RPGSIM_MAX_TICKS": "many",
		"RPGSIM_SEED":      "0x10",
	}))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "RPGSIM_MAX_TICKS")
	s.Contains(err.Error(), "RPGSIM_SEED")
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := config.Default()
	cfg.Store.Backend = config.BackendRedis
	cfg.Store.RedisAddr = ""
	cfg.Simulation.MaxTicks = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	s.Require().Error(err)
	s.Contains(err.Error(), "store.redis_addr")
	s.Contains(err.Error(), "simulation.max_ticks")
	s.Contains(err.Error(), "log.level")
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	path := s.write("test.env", "RPGSIM_TEST_DOTENV=loaded\n")
	s.T().Cleanup(func() { _ = os.Unsetenv("RPGSIM_TEST_DOTENV") })

	s.Require().NoError(config.LoadDotEnv(path))
	s.Equal("loaded", os.Getenv("RPGSIM_TEST_DOTENV"))

	s.NoError(config.LoadDotEnv(filepath.Join(s.dir, "absent.env")))
}

func (s *ConfigTestSuite) TestLogger() {
	var buf bytes.Buffer
	logger := (&config.LogConfig{Level: "warn", Format: config.FormatJSON}).Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "tick", 3)

	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), `"tick":3`)
}
