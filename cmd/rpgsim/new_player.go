package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
)

var (
	newPlayerID   int
	displayName   string
	username      string
	statOverrides []string
)

var newPlayerCmd = &cobra.Command{
	Use:   "new-player",
	Short: "Write a fresh player record",
	Long:  `Create a player with default stats. Without --id the next free player ID is used.`,
	Example: `  rpgsim new-player --name Kirito --stat STR=12 --stat HP=150
  rpgsim new-player --id 0 --name Hero`,
	RunE: runNewPlayer,
}

func init() {
	newPlayerCmd.Flags().IntVar(&newPlayerID, "id", -1, "player ID (default next free ID)")
	newPlayerCmd.Flags().StringVar(&displayName, "name", "Hero", "display name")
	newPlayerCmd.Flags().StringVar(&username, "username", "", "user name")
	newPlayerCmd.Flags().StringArrayVar(&statOverrides, "stat", nil, "stat override as KEY=VALUE, repeatable")
}

func runNewPlayer(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	stats, err := parseStats(statOverrides)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	input := &player.CreateInput{
		DisplayName: displayName,
		Username:    username,
		Stats:       stats,
	}
	if newPlayerID >= 0 {
		input.PlayerID = &newPlayerID
	}

	out, err := sess.Players.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created player %d (%s)\n", out.Player.PlayerID, out.Player.DisplayName)
	return nil
}

func parseStats(pairs []string) (entities.Stats, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	stats := make(entities.Stats, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid stat %q, want KEY=VALUE", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid value for stat %s: %w", key, err)
		}
		stats[strings.ToUpper(strings.TrimSpace(key))] = n
	}
	return stats, nil
}
