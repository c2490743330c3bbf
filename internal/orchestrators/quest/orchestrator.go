// Package quest tracks quest progress on player records. Progress lives in
// the side quest log keyed by q_<questID>.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/KirkDiggler/rpg-sim/internal/orchestrators/quest Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
)

// Service defines the interface for quest operations
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Assign(ctx context.Context, input *AssignInput) (*AssignOutput, error)
	TrackProgress(ctx context.Context, input *TrackProgressInput) (*TrackProgressOutput, error)

	// Complete flags the quest and grants its rewards in a single write.
	// Objectives are not checked.
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)
	Reward(ctx context.Context, input *RewardInput) (*RewardOutput, error)

	Objectives(ctx context.Context, input *ObjectivesInput) (*ObjectivesOutput, error)
	ValidateState(ctx context.Context, input *ValidateStateInput) (*ValidateStateOutput, error)
	CheckCompletion(ctx context.Context, input *CheckCompletionInput) (*CheckCompletionOutput, error)
}

// Config holds the dependencies for the quest orchestrator
type Config struct {
	PlayerService player.Service
	Catalog       assets.Catalog
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	players player.Service
	catalog assets.Catalog
	bus     events.EventBus
}

// NewOrchestrator creates a new quest orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		players: cfg.PlayerService,
		catalog: cfg.Catalog,
		bus:     cfg.EventBus,
	}, nil
}

func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	q, err := o.catalog.Quest(ctx, input.Quest)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Quest: q}, nil
}

func (o *orchestrator) Assign(ctx context.Context, input *AssignInput) (*AssignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	q, err := o.catalog.Quest(ctx, input.Quest)
	if err != nil {
		return nil, err
	}

	key := entities.QuestKey(q.QuestID)
	_, err = o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			p.Quests.Side[key] = &entities.QuestProgress{}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign quest %d to player %d", q.QuestID, input.PlayerID)
	}

	slog.InfoContext(ctx, "quest assigned", "player_id", input.PlayerID, "quest_id", q.QuestID, "quest_name", q.QuestName)
	gameevents.Publish(ctx, o.bus, gameevents.QuestAssigned, gameevents.Player(input.PlayerID), gameevents.Quest(q.QuestID), nil)

	return &AssignOutput{Quest: q}, nil
}

func (o *orchestrator) TrackProgress(ctx context.Context, input *TrackProgressInput) (*TrackProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	q, err := o.catalog.Quest(ctx, input.Quest)
	if err != nil {
		return nil, err
	}

	var progress entities.QuestProgress
	_, err = o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			entry := p.Quests.SideProgress(q.QuestID)
			entry.Progress++
			progress = *entry
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to track quest %d for player %d", q.QuestID, input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.QuestProgressed, gameevents.Player(input.PlayerID), gameevents.Quest(q.QuestID), nil)
	return &TrackProgressOutput{Progress: progress}, nil
}

func (o *orchestrator) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.grant(ctx, input.PlayerID, input.Quest, true)
	if err != nil {
		return nil, err
	}
	return &CompleteOutput{Player: out.Player, Rewards: out.Rewards, LevelsGained: out.LevelsGained}, nil
}

func (o *orchestrator) Reward(ctx context.Context, input *RewardInput) (*RewardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.grant(ctx, input.PlayerID, input.Quest, false)
}

// grant applies a quest's rewards, and its completion flag when complete is set.
func (o *orchestrator) grant(ctx context.Context, playerID int, ref assets.Ref, complete bool) (*RewardOutput, error) {
	q, err := o.catalog.Quest(ctx, ref)
	if err != nil {
		return nil, err
	}

	var rewards entities.QuestRewards
	if q.Rewards != nil {
		rewards = *q.Rewards
	}

	var gained int
	mutOut, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: playerID,
		Mutation: func(p *entities.Player) error {
			if complete {
				p.Quests.SideProgress(q.QuestID).Completed = true
			}
			if rewards.EXP > 0 {
				gained = p.ApplyExperience(rewards.EXP)
			}
			for _, name := range rewards.Items {
				p.Inventory.AddItem(name, 1)
			}
			p.Inventory.Gold += rewards.Gold
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reward quest %d to player %d", q.QuestID, playerID)
	}

	slog.InfoContext(ctx, "quest rewarded",
		"player_id", playerID,
		"quest_id", q.QuestID,
		"completed", complete,
		"exp", rewards.EXP,
		"items", len(rewards.Items))

	if complete {
		gameevents.Publish(ctx, o.bus, gameevents.QuestCompleted, gameevents.Player(playerID), gameevents.Quest(q.QuestID), nil)
	}
	for _, name := range rewards.Items {
		gameevents.Publish(ctx, o.bus, gameevents.ItemAdded, gameevents.Player(playerID), nil,
			map[string]any{gameevents.KeyItem: name, gameevents.KeyQuantity: 1})
	}
	if gained > 0 {
		gameevents.Publish(ctx, o.bus, gameevents.PlayerLevelUp, gameevents.Player(playerID), nil,
			map[string]any{gameevents.KeyLevel: mutOut.Player.Level()})
	}

	return &RewardOutput{Player: mutOut.Player, Rewards: rewards, LevelsGained: gained}, nil
}

func (o *orchestrator) Objectives(ctx context.Context, input *ObjectivesInput) (*ObjectivesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	q, err := o.catalog.Quest(ctx, input.Quest)
	if err != nil {
		return nil, err
	}
	return &ObjectivesOutput{Objectives: append([]string{}, q.Objectives...)}, nil
}

func (o *orchestrator) ValidateState(ctx context.Context, input *ValidateStateInput) (*ValidateStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entry, err := o.progress(ctx, input.PlayerID, input.Quest)
	if err != nil {
		return nil, err
	}
	return &ValidateStateOutput{Valid: entry != nil}, nil
}

func (o *orchestrator) CheckCompletion(ctx context.Context, input *CheckCompletionInput) (*CheckCompletionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entry, err := o.progress(ctx, input.PlayerID, input.Quest)
	if err != nil {
		return nil, err
	}
	return &CheckCompletionOutput{Completed: entry != nil && entry.Completed}, nil
}

// progress returns the player's side entry for the quest, nil when absent.
func (o *orchestrator) progress(ctx context.Context, playerID int, ref assets.Ref) (*entities.QuestProgress, error) {
	q, err := o.catalog.Quest(ctx, ref)
	if err != nil {
		return nil, err
	}
	out, err := o.players.Get(ctx, &player.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	return out.Player.Quests.Side[entities.QuestKey(q.QuestID)], nil
}
