package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sim/internal/network"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/simulation"
)

var (
	port     int
	noSimRun bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the websocket sync endpoint",
	Long:  `Serve packets on /ws while the simulation runs. Clients receive a syncPlayer packet whenever the player takes damage.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "override server.port")
	serveCmd.Flags().BoolVar(&noSimRun, "no-simulation", false, "serve without running the simulation")
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	hub, err := network.NewHub(sess.Dispatcher)
	if err != nil {
		return err
	}
	unsubscribe := hub.Subscribe(sess.Bus)
	defer unsubscribe()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("websocket server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	if !noSimRun {
		go func() {
			out, err := sess.Simulation.Run(ctx, &simulation.RunInput{})
			if err != nil {
				slog.Warn("simulation stopped", "error", err)
				return
			}
			slog.Info("simulation finished", "ticks", out.Ticks, "player_died", out.PlayerDied)
		}()
	}

	select {
	case <-ctx.Done():
	case err := <-errChan:
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("graceful shutdown failed", "error", err)
		return srv.Close()
	}
	slog.Info("server stopped gracefully")
	return nil
}
