package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
)

var fixPlayers bool

var checkPlayersCmd = &cobra.Command{
	Use:   "check-players",
	Short: "Scan player records for corrupted data",
	Long: `Load every stored player record and report the ones that cannot be decoded
or that are missing default stats. With --fix, missing stats are restored to
their defaults. Undecodable records are only reported.`,
	RunE: runCheckPlayers,
}

func init() {
	checkPlayersCmd.Flags().BoolVar(&fixPlayers, "fix", false, "restore missing default stats")
	rootCmd.AddCommand(checkPlayersCmd)
}

func runCheckPlayers(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	w := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	listOut, err := sess.Players.List(ctx, &player.ListInput{})
	if err != nil {
		return err
	}

	var corrupted, incomplete, fixed int
	for _, id := range listOut.PlayerIDs {
		getOut, err := sess.Players.Get(ctx, &player.GetInput{PlayerID: id})
		if err != nil {
			if errors.IsMalformed(err) {
				fmt.Fprintf(w, "✗ corrupted record for player %d: %v\n", id, err)
				corrupted++
				continue
			}
			return err
		}

		missing := missingStats(getOut.Player.Stats)
		if len(missing) == 0 {
			continue
		}
		incomplete++
		fmt.Fprintf(w, "✗ player %d is missing stats: %s\n", id, strings.Join(missing, ", "))

		if !fixPlayers {
			continue
		}
		if _, err := sess.Players.Mutate(ctx, &player.MutateInput{
			PlayerID: id,
			Mutation: func(p *entities.Player) error {
				for _, key := range missingStats(p.Stats) {
					p.Stats[key] = player.DefaultStats[key]
				}
				return nil
			},
		}); err != nil {
			fmt.Fprintf(w, "failed to fix player %d: %v\n", id, err)
			continue
		}
		fixed++
	}

	fmt.Fprintf(w, "\nChecked %d players, found %d corrupted and %d incomplete records", len(listOut.PlayerIDs), corrupted, incomplete)
	if fixPlayers {
		fmt.Fprintf(w, ", fixed %d", fixed)
	}
	fmt.Fprintln(w)
	return nil
}

func missingStats(stats entities.Stats) []string {
	var missing []string
	for key := range player.DefaultStats {
		if _, ok := stats[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
