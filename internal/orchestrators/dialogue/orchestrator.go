// Package dialogue serves NPC dialogue trees and hands out NPC quests.
package dialogue

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/quest"
)

// Service defines the interface for dialogue operations
type Service interface {
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
	End(ctx context.Context, input *EndInput) (*EndOutput, error)
	IsActive(ctx context.Context, input *IsActiveInput) (*IsActiveOutput, error)
	Tree(ctx context.Context, input *TreeInput) (*TreeOutput, error)

	// AssignQuest gives the player the first quest whose relatedNPCs names the NPC
	AssignQuest(ctx context.Context, input *AssignQuestInput) (*AssignQuestOutput, error)
}

// Config holds the dependencies for the dialogue orchestrator
type Config struct {
	Catalog      assets.Catalog
	QuestService quest.Service
	EventBus     events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.QuestService == nil {
		vb.RequiredField("QuestService")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog assets.Catalog
	quests  quest.Service
	bus     events.EventBus

	mu     sync.Mutex
	active map[int]int
}

// NewOrchestrator creates a new dialogue orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		quests:  cfg.QuestService,
		bus:     cfg.EventBus,
		active:  make(map[int]int),
	}, nil
}

func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	npc, err := o.catalog.NPC(ctx, input.NPCID)
	if err != nil {
		return nil, err
	}
	tree, err := o.tree(ctx, npc.NPCName)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.active[input.PlayerID] = npc.NPCID
	o.mu.Unlock()

	slog.DebugContext(ctx, "dialogue started", "player_id", input.PlayerID, "npc_id", npc.NPCID, "npc_name", npc.NPCName)
	gameevents.Publish(ctx, o.bus, gameevents.DialogueStarted, gameevents.Player(input.PlayerID), gameevents.NPC(npc.NPCID), nil)

	return &StartOutput{NPC: npc, Tree: tree}, nil
}

func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DialogueID == "" {
		return nil, errors.InvalidArgument("dialogue ID is required")
	}

	doc, err := o.catalog.Dialogue(ctx)
	if err != nil {
		return nil, err
	}

	path := strings.Split(input.DialogueID, ".")
	if input.Choice != "" {
		path = append(path, input.Choice)
	}

	var node any = map[string]any(doc)
	for _, step := range path {
		next, ok := descend(node, step)
		if !ok {
			return nil, errors.NotFoundf("dialogue node %s not found", strings.Join(path, "."))
		}
		node = next
	}

	return &AdvanceOutput{Node: node}, nil
}

func descend(node any, step string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[step]
		return v, ok
	case []any:
		i, err := strconv.Atoi(step)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}
		return n[i], true
	}
	return nil, false
}

func (o *orchestrator) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	npcID, was := o.active[input.PlayerID]
	delete(o.active, input.PlayerID)
	o.mu.Unlock()

	if was {
		gameevents.Publish(ctx, o.bus, gameevents.DialogueEnded, gameevents.Player(input.PlayerID), gameevents.NPC(npcID), nil)
	}
	return &EndOutput{Ended: true}, nil
}

func (o *orchestrator) IsActive(_ context.Context, input *IsActiveInput) (*IsActiveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	npcID, ok := o.active[input.PlayerID]
	return &IsActiveOutput{Active: ok, NPCID: npcID}, nil
}

func (o *orchestrator) Tree(ctx context.Context, input *TreeInput) (*TreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	npc, err := o.catalog.NPC(ctx, input.NPCID)
	if err != nil {
		return nil, err
	}
	tree, err := o.tree(ctx, npc.NPCName)
	if err != nil {
		return nil, err
	}
	return &TreeOutput{Tree: tree}, nil
}

// tree returns the subtree for npcName. A missing dialogue file is an empty document.
func (o *orchestrator) tree(ctx context.Context, npcName string) (any, error) {
	doc, err := o.catalog.Dialogue(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc[npcName], nil
}

func (o *orchestrator) AssignQuest(ctx context.Context, input *AssignQuestInput) (*AssignQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	npc, err := o.catalog.NPC(ctx, input.NPCID)
	if err != nil {
		return nil, err
	}
	quests, err := o.catalog.Quests(ctx)
	if err != nil {
		return nil, err
	}

	for i := range quests {
		if !quests[i].RelatesTo(npc.NPCName) {
			continue
		}
		if _, err := o.quests.Assign(ctx, &quest.AssignInput{
			PlayerID: input.PlayerID,
			Quest:    assets.ByID(quests[i].QuestID),
		}); err != nil {
			return nil, err
		}
		return &AssignQuestOutput{Assigned: true, QuestID: quests[i].QuestID}, nil
	}

	slog.DebugContext(ctx, "npc offers no quest", "npc_id", npc.NPCID, "npc_name", npc.NPCName)
	return &AssignQuestOutput{Assigned: false}, nil
}
