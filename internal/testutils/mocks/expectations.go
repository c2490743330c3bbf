// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/rpg-sim/internal/orchestrators/player/mock"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/players"
	playersmock "github.com/KirkDiggler/rpg-sim/internal/repositories/players/mock"
)

// ExpectPlayerLoad makes the repository return a copy of p for its ID
func ExpectPlayerLoad(ctx context.Context, repo *playersmock.MockRepository, p *entities.Player) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, players.GetInput{PlayerID: p.PlayerID}).
		Return(&players.GetOutput{Player: p.Clone()}, nil)
}

// ExpectPlayerMissing makes the repository report playerID as not found
func ExpectPlayerMissing(ctx context.Context, repo *playersmock.MockRepository, playerID int) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, players.GetInput{PlayerID: playerID}).
		Return(nil, errors.NotFoundf("player %d not found", playerID))
}

// ExpectPlayerSave captures the saved record into *saved
func ExpectPlayerSave(ctx context.Context, repo *playersmock.MockRepository, saved **entities.Player) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input players.SaveInput) (*players.SaveOutput, error) {
			*saved = input.Player.Clone()
			return &players.SaveOutput{Player: input.Player}, nil
		})
}

// ExpectMutation runs the next mutation for p.PlayerID against a copy of p.
// The mutated record is stored in *saved unless the mutation fails.
func ExpectMutation(ctx context.Context, svc *playermock.MockService, p *entities.Player, saved **entities.Player) *gomock.Call {
	return svc.EXPECT().
		Mutate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *player.MutateInput) (*player.MutateOutput, error) {
			if input.PlayerID != p.PlayerID {
				return nil, errors.NotFoundf("player %d not found", input.PlayerID)
			}
			working := p.Clone()
			working.Normalize()
			if err := input.Mutation(working); err != nil {
				return nil, err
			}
			if saved != nil {
				*saved = working.Clone()
			}
			return &player.MutateOutput{Player: working}, nil
		})
}

// ExpectGet makes the player service return a copy of p
func ExpectGet(ctx context.Context, svc *playermock.MockService, p *entities.Player) *gomock.Call {
	return svc.EXPECT().
		Get(ctx, &player.GetInput{PlayerID: p.PlayerID}).
		Return(&player.GetOutput{Player: p.Clone()}, nil)
}
