// Package inventory implements item lookups and the inventory and equipment
// mutations of a player record.
package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
)

// Service defines the interface for inventory operations
type Service interface {
	LoadItem(ctx context.Context, input *LoadItemInput) (*LoadItemOutput, error)
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// Equip consumes one of the item from the stack map and places it in the slot
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	ItemStats(ctx context.Context, input *ItemStatsInput) (*ItemStatsOutput, error)
	ModdedItemStats(ctx context.Context, input *ModdedItemStatsInput) (*ModdedItemStatsOutput, error)
	CheckRequirements(ctx context.Context, input *CheckRequirementsInput) (*CheckRequirementsOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
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

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
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

func (o *orchestrator) LoadItem(ctx context.Context, input *LoadItemInput) (*LoadItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(ctx, input.Item)
	if err != nil {
		return nil, err
	}
	return &LoadItemOutput{Item: item.Clone()}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	qty, err := validateStack(input.ItemKey, input.Quantity)
	if err != nil {
		return nil, err
	}

	out, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			p.Inventory.AddItem(input.ItemKey, qty)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add item %s to player %d", input.ItemKey, input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.ItemAdded, gameevents.Player(input.PlayerID), nil,
		map[string]any{gameevents.KeyItem: input.ItemKey, gameevents.KeyQuantity: qty})

	return &AddItemOutput{Player: out.Player, Quantity: out.Player.Inventory.Quantity(input.ItemKey)}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	qty, err := validateStack(input.ItemKey, input.Quantity)
	if err != nil {
		return nil, err
	}

	out, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			if !p.Inventory.RemoveItem(input.ItemKey, qty) {
				return errors.FailedPreconditionf("player %d holds %d of %s, need %d",
					p.PlayerID, p.Inventory.Quantity(input.ItemKey), input.ItemKey, qty)
			}
			return nil
		},
	})
	if err != nil {
		if errors.IsFailedPrecondition(err) {
			slog.DebugContext(ctx, "item removal refused", "player_id", input.PlayerID, "item", input.ItemKey, "error", err)
			return &RemoveItemOutput{Removed: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to remove item %s from player %d", input.ItemKey, input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.ItemRemoved, gameevents.Player(input.PlayerID), nil,
		map[string]any{gameevents.KeyItem: input.ItemKey, gameevents.KeyQuantity: qty})

	return &RemoveItemOutput{Removed: true, Quantity: out.Player.Inventory.Quantity(input.ItemKey)}, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(ctx, input.Item)
	if err != nil {
		return nil, err
	}
	slot := input.Slot
	if slot == "" {
		slot = item.Slot
	}
	if slot == "" {
		return nil, errors.InvalidArgumentf("item %s has no slot and none was given", item.Key())
	}

	var displaced string
	out, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			// equipping an item the player does not hold is allowed
			p.Inventory.RemoveItem(item.Key(), 1)
			prev, had := p.Inventory.Equip(slot, *item.Clone())
			if had {
				if key, ok := entities.EquippedKey(prev); ok {
					p.Inventory.AddItem(key, 1)
					displaced = key
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to equip item %s on player %d", item.Key(), input.PlayerID)
	}

	slog.InfoContext(ctx, "item equipped", "player_id", input.PlayerID, "item", item.Key(), "slot", slot)
	gameevents.Publish(ctx, o.bus, gameevents.ItemEquipped, gameevents.Player(input.PlayerID), nil,
		map[string]any{gameevents.KeyItem: item.Key(), gameevents.KeySlot: slot})

	return &EquipOutput{Player: out.Player, Item: item, Slot: slot, Displaced: displaced}, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Slot == "" {
		return nil, errors.InvalidArgument("slot is required")
	}

	var key string
	out, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			var ok bool
			key, ok = p.Inventory.Unequip(input.Slot)
			if !ok {
				return errors.FailedPreconditionf("slot %s is empty", input.Slot)
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unequip slot %s on player %d", input.Slot, input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.ItemUnequipped, gameevents.Player(input.PlayerID), nil,
		map[string]any{gameevents.KeyItem: key, gameevents.KeySlot: input.Slot})

	return &UnequipOutput{Player: out.Player, ItemKey: key}, nil
}

func (o *orchestrator) ItemStats(ctx context.Context, input *ItemStatsInput) (*ItemStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(ctx, input.Item)
	if err != nil {
		return nil, err
	}
	return &ItemStatsOutput{Stats: entities.Stats(nil).Merge(item.ItemStats)}, nil
}

func (o *orchestrator) ModdedItemStats(ctx context.Context, input *ModdedItemStatsInput) (*ModdedItemStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(ctx, input.Item)
	if err != nil {
		return nil, err
	}

	modIDs := input.ModIDs
	if len(modIDs) == 0 {
		modIDs = item.Mods
	}

	stats := entities.Stats(nil).Merge(item.ItemStats)
	var missing []int
	for _, id := range modIDs {
		mod, err := o.catalog.Mod(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				missing = append(missing, id)
				continue
			}
			return nil, err
		}
		stats = engine.ApplyModifiers(stats, mod.ModStats)
	}

	return &ModdedItemStatsOutput{Stats: stats, Missing: missing}, nil
}

func (o *orchestrator) CheckRequirements(ctx context.Context, input *CheckRequirementsInput) (*CheckRequirementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.catalog.Item(ctx, input.Item)
	if err != nil {
		return nil, err
	}
	if item.ItemReqs == nil || item.ItemReqs.Level == 0 {
		return &CheckRequirementsOutput{Met: true}, nil
	}

	out, err := o.players.Get(ctx, &player.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &CheckRequirementsOutput{
		Met:           out.Player.Level() >= item.ItemReqs.Level,
		RequiredLevel: item.ItemReqs.Level,
	}, nil
}

func validateStack(key string, qty int) (int, error) {
	if key == "" {
		return 0, errors.InvalidArgument("item key is required")
	}
	if qty < 0 {
		return 0, errors.InvalidArgumentf("quantity cannot be negative, got %d", qty)
	}
	if qty == 0 {
		qty = 1
	}
	return qty, nil
}
