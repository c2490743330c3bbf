package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/simulation"
)

var (
	maxTicks int
	playerID int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation loop",
	Long:  `Spawn the player and every enemy definition, then tick until the player dies or the tick limit is reached.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "override simulation.max_ticks")
	simulateCmd.Flags().IntVar(&playerID, "player", -1, "override simulation.player_id")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if maxTicks > 0 {
		cfg.Simulation.MaxTicks = maxTicks
	}
	if playerID >= 0 {
		cfg.Simulation.PlayerID = playerID
	}

	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	out, err := sess.Simulation.Run(ctx, &simulation.RunInput{})
	if err != nil {
		return err
	}

	if out.PlayerDied {
		fmt.Fprintln(cmd.OutOrStdout(), "Player has died.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Simulation finished. ticks: %d\n", out.Ticks)
	return nil
}
