package entities

// Room is one room of a dungeon layout. Room content is free-form.
type Room map[string]any

// Dungeon is an entry of ROOMS/dungeon.json, or a generated instance of one.
type Dungeon struct {
	DungeonID   int    `json:"dungeonID"`
	DungeonName string `json:"dungeonName,omitempty"`
	Rooms       []Room `json:"rooms"`
	Seed        int64  `json:"seed,omitempty"`
	InstanceID  string `json:"instanceID,omitempty"`
}

// Clone returns a deep copy.
func (d *Dungeon) Clone() *Dungeon {
	if d == nil {
		return nil
	}
	out := *d
	if d.Rooms != nil {
		out.Rooms = make([]Room, len(d.Rooms))
		for i, r := range d.Rooms {
			out.Rooms[i] = r.Clone()
		}
	}
	return &out
}

// Clone returns a deep copy.
func (r Room) Clone() Room {
	if r == nil {
		return nil
	}
	return Room(cloneValue(map[string]any(r)).(map[string]any))
}
