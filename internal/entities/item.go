package entities

import "strconv"

// Item is an entry of ITEM/items.json.
type Item struct {
	ItemID      int            `json:"itemID"`
	ItemName    string         `json:"itemName"`
	ItemType    string         `json:"itemType,omitempty"`
	Slot        string         `json:"slot,omitempty"`
	Description string         `json:"description,omitempty"`
	ItemStats   map[string]int `json:"itemStats,omitempty"`
	ItemReqs    *ItemReqs      `json:"itemReqs,omitempty"`
	Mods        []int          `json:"mods,omitempty"`
}

// ItemReqs are the requirements to use an item.
type ItemReqs struct {
	Level int `json:"level,omitempty"`
}

// Key returns the inventory key for the item: its ID, or its name when the ID is zero.
func (i *Item) Key() string {
	if i.ItemID != 0 || i.ItemName == "" {
		return strconv.Itoa(i.ItemID)
	}
	return i.ItemName
}

// Clone returns an independent copy.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	out.ItemStats = cloneIntMap(i.ItemStats)
	if i.ItemReqs != nil {
		reqs := *i.ItemReqs
		out.ItemReqs = &reqs
	}
	if i.Mods != nil {
		out.Mods = append([]int(nil), i.Mods...)
	}
	return &out
}

// Mod is an entry of ITEM/mods.json.
type Mod struct {
	ModID    int            `json:"modID"`
	ModName  string         `json:"modName"`
	ModStats map[string]int `json:"modStats,omitempty"`
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
