// Package main is the entry point for the rpgsim command line
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sim/internal/config"
	"github.com/KirkDiggler/rpg-sim/internal/session"
)

var (
	configPath string
	envFile    string
	assetsDir  string
	storeKind  string
	redisAddr  string
)

var rootCmd = &cobra.Command{
	Use:          "rpgsim",
	Short:        "Text RPG simulation",
	Long:         `rpgsim runs a tick-driven RPG simulation over JSON game assets and player records.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading RPGSIM_* variables (default .env)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "game assets directory")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "player store backend: file or redis")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis address for the redis store")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newPlayerCmd)
}

// loadConfig merges file, env and flag settings and installs the logger.
func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	if err := config.LoadDotEnv(files...); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if assetsDir != "" {
		cfg.AssetsDir = assetsDir
	}
	if storeKind != "" {
		cfg.Store.Backend = storeKind
	}
	if redisAddr != "" {
		cfg.Store.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(cfg.Log.Logger(os.Stderr))
	return cfg, nil
}

func newSession(ctx context.Context, cfg *config.Config) (*session.Session, error) {
	sess, err := session.New(ctx, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return sess, nil
}
