package inventory

import (
	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// LoadItemInput defines the request for looking up an item definition
type LoadItemInput struct {
	Item assets.Ref
}

// LoadItemOutput defines the response for looking up an item definition
type LoadItemOutput struct {
	Item *entities.Item
}

// AddItemInput defines the request for adding to a player's stack
type AddItemInput struct {
	PlayerID int
	// ItemKey is the inventory key, an item ID or name
	ItemKey string
	// Quantity defaults to 1
	Quantity int
}

// AddItemOutput defines the response for adding items
type AddItemOutput struct {
	Player   *entities.Player
	Quantity int
}

// RemoveItemInput defines the request for removing from a player's stack
type RemoveItemInput struct {
	PlayerID int
	ItemKey  string
	// Quantity defaults to 1
	Quantity int
}

// RemoveItemOutput defines the response for removing items.
// Removed is false, and nothing was written, when too few were held.
type RemoveItemOutput struct {
	Removed  bool
	Quantity int
}

// EquipInput defines the request for equipping an item
type EquipInput struct {
	PlayerID int
	Item     assets.Ref
	// Slot defaults to the item's own slot
	Slot string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Player *entities.Player
	Item   *entities.Item
	Slot   string
	// Displaced is the inventory key of the item previously in the slot,
	// already returned to the stack map
	Displaced string
}

// UnequipInput defines the request for clearing an equipment slot
type UnequipInput struct {
	PlayerID int
	Slot     string
}

// UnequipOutput defines the response for clearing an equipment slot
type UnequipOutput struct {
	Player  *entities.Player
	ItemKey string
}

// ItemStatsInput defines the request for an item's flat bonuses
type ItemStatsInput struct {
	Item assets.Ref
}

// ItemStatsOutput defines the response for an item's flat bonuses
type ItemStatsOutput struct {
	Stats entities.Stats
}

// ModdedItemStatsInput defines the request for an item's bonuses with mods applied
type ModdedItemStatsInput struct {
	Item assets.Ref
	// ModIDs defaults to the mods listed on the item
	ModIDs []int
}

// ModdedItemStatsOutput defines the response for modded item bonuses
type ModdedItemStatsOutput struct {
	Stats entities.Stats
	// Missing lists mod IDs that are not in the mod catalog
	Missing []int
}

// CheckRequirementsInput defines the request for checking item requirements
type CheckRequirementsInput struct {
	PlayerID int
	Item     assets.Ref
}

// CheckRequirementsOutput defines the response for checking item requirements
type CheckRequirementsOutput struct {
	Met bool
	// RequiredLevel is zero when the item has no level requirement
	RequiredLevel int
}
