package entities

import (
	"encoding/json"
	"strconv"
)

// Inventory is the player's stack map, equipment slots and gold.
type Inventory struct {
	Equipment Equipment      `json:"equipment"`
	Items     map[string]int `json:"items"`
	Gold      int            `json:"gold"`
}

// Equipment maps a slot name to the equipped item. Values are Item records
// when equipped in-process and decoded JSON objects after a reload, and may
// be nested arbitrarily.
type Equipment map[string]any

// Quantity returns the held quantity for key.
func (inv *Inventory) Quantity(key string) int {
	return inv.Items[key]
}

// AddItem increases the stack for key by qty.
func (inv *Inventory) AddItem(key string, qty int) {
	if inv.Items == nil {
		inv.Items = make(map[string]int)
	}
	inv.Items[key] += qty
}

// RemoveItem decreases the stack for key by qty. It reports false without
// mutating when fewer than qty are held. An emptied stack is deleted.
func (inv *Inventory) RemoveItem(key string, qty int) bool {
	have := inv.Items[key]
	if have < qty {
		return false
	}
	inv.Items[key] = have - qty
	if inv.Items[key] <= 0 {
		delete(inv.Items, key)
	}
	return true
}

// Equip places item in slot and returns whatever was there before.
func (inv *Inventory) Equip(slot string, item Item) (any, bool) {
	if inv.Equipment == nil {
		inv.Equipment = make(Equipment)
	}
	prev, had := inv.Equipment[slot]
	inv.Equipment[slot] = item
	return prev, had
}

// Unequip clears slot, returns the item to the stack map and reports its key.
func (inv *Inventory) Unequip(slot string) (string, bool) {
	v, ok := inv.Equipment[slot]
	if !ok || v == nil {
		return "", false
	}
	key, ok := EquippedKey(v)
	if !ok {
		return "", false
	}
	inv.AddItem(key, 1)
	delete(inv.Equipment, slot)
	return key, true
}

// EquippedItemID extracts the itemID of an equipped value.
func EquippedItemID(v any) (int, bool) {
	switch it := v.(type) {
	case Item:
		return it.ItemID, true
	case *Item:
		if it == nil {
			return 0, false
		}
		return it.ItemID, true
	case map[string]any:
		return numberField(it, "itemID")
	}
	return 0, false
}

// EquippedKey returns the inventory key of an equipped value.
func EquippedKey(v any) (string, bool) {
	switch it := v.(type) {
	case Item:
		return it.Key(), true
	case *Item:
		if it == nil {
			return "", false
		}
		return it.Key(), true
	case map[string]any:
		if id, ok := numberField(it, "itemID"); ok && id != 0 {
			return strconv.Itoa(id), true
		}
		if name, ok := it["itemName"].(string); ok && name != "" {
			return name, true
		}
		if id, ok := numberField(it, "itemID"); ok {
			return strconv.Itoa(id), true
		}
	}
	return "", false
}

func numberField(m map[string]any, key string) (int, bool) {
	switch n := m[key].(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

// Clone returns a deep copy.
func (inv Inventory) Clone() Inventory {
	out := Inventory{Gold: inv.Gold, Items: cloneIntMap(inv.Items)}
	if inv.Equipment != nil {
		out.Equipment = cloneValue(map[string]any(inv.Equipment)).(map[string]any)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case Equipment:
		return Equipment(cloneValue(map[string]any(t)).(map[string]any))
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	case Item:
		return *t.Clone()
	case *Item:
		return t.Clone()
	}
	return v
}
