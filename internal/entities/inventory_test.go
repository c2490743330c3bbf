package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

func TestRemoveItem(t *testing.T) {
	t.Run("fails without mutation when short", func(t *testing.T) {
		inv := entities.Inventory{Items: map[string]int{"3": 2}}
		assert.False(t, inv.RemoveItem("3", 3))
		assert.Equal(t, 2, inv.Quantity("3"))
	})

	t.Run("partial removal keeps the stack", func(t *testing.T) {
		inv := entities.Inventory{Items: map[string]int{"3": 2}}
		assert.True(t, inv.RemoveItem("3", 1))
		assert.Equal(t, 1, inv.Quantity("3"))
	})

	t.Run("exhausted stack is deleted", func(t *testing.T) {
		inv := entities.Inventory{Items: map[string]int{"3": 2}}
		assert.True(t, inv.RemoveItem("3", 2))
		_, ok := inv.Items["3"]
		assert.False(t, ok)
	})

	t.Run("missing key fails", func(t *testing.T) {
		inv := entities.Inventory{}
		assert.False(t, inv.RemoveItem("Potion", 1))
	})
}

func TestEquipAndUnequip(t *testing.T) {
	inv := entities.Inventory{}
	sword := entities.Item{ItemID: 7, ItemName: "Sword"}

	_, had := inv.Equip("weapon", sword)
	assert.False(t, had)

	prev, had := inv.Equip("weapon", entities.Item{ItemID: 8, ItemName: "Axe"})
	assert.True(t, had)
	assert.Equal(t, sword, prev)

	key, ok := inv.Unequip("weapon")
	assert.True(t, ok)
	assert.Equal(t, "8", key)
	assert.Equal(t, 1, inv.Quantity("8"))
	assert.NotContains(t, inv.Equipment, "weapon")

	_, ok = inv.Unequip("weapon")
	assert.False(t, ok)
}

func TestEquippedKeyFromDecodedJSON(t *testing.T) {
	key, ok := entities.EquippedKey(map[string]any{"itemID": float64(0), "itemName": "Stick"})
	assert.True(t, ok)
	assert.Equal(t, "Stick", key)

	key, ok = entities.EquippedKey(map[string]any{"itemID": float64(12)})
	assert.True(t, ok)
	assert.Equal(t, "12", key)

	id, ok := entities.EquippedItemID(&entities.Item{ItemID: 4})
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	_, ok = entities.EquippedItemID("nothing")
	assert.False(t, ok)
}
