package entities

// AIState is an enemy instance's behaviour state.
type AIState string

const (
	AIStateIdle   AIState = "idle"
	AIStateEngage AIState = "engage"
	AIStateFlee   AIState = "flee"
	AIStateDead   AIState = "dead"
)

// EnemyTemplate is an entry of PLAY/enemies.json.
type EnemyTemplate struct {
	EnemyID    int            `json:"enemyID"`
	EnemyName  string         `json:"enemyName"`
	Stats      Stats          `json:"stats"`
	Position   *EnemyPosition `json:"position,omitempty"`
	DeathDrops *Drops         `json:"deathDrops,omitempty"`
}

// EnemyPosition is where an enemy spawns. Coords, when present, override X/Y.
type EnemyPosition struct {
	MapID  int     `json:"mapID,omitempty"`
	X      float64 `json:"X,omitempty"`
	Y      float64 `json:"Y,omitempty"`
	Z      float64 `json:"Z,omitempty"`
	Coords *Coords `json:"coords,omitempty"`
}

// Coords is an explicit spawn point.
type Coords struct {
	X float64 `json:"X,omitempty"`
	Y float64 `json:"Y,omitempty"`
}

// Drops lists what an enemy leaves behind.
type Drops struct {
	Items []string `json:"items,omitempty"`
	Gold  int      `json:"gold,omitempty"`
}

// Enemy is a live instance of an EnemyTemplate.
type Enemy struct {
	EnemyTemplate
	InstanceID   string  `json:"instanceID"`
	State        AIState `json:"state"`
	TargetPlayer *int    `json:"targetPlayer"`
	MaxHP        int     `json:"maxHP"`
}

// NewEnemy deep-copies tpl into an idle instance. Location fields that are
// set override the template position.
func NewEnemy(tpl *EnemyTemplate, instanceID string, location *EnemyPosition) *Enemy {
	e := &Enemy{
		EnemyTemplate: *tpl.Clone(),
		InstanceID:    instanceID,
		State:         AIStateIdle,
	}
	if e.Stats == nil {
		e.Stats = make(Stats)
	}
	e.Position = mergePosition(e.Position, location)
	e.MaxHP = e.Stats.Get(StatHP)
	return e
}

// HP returns the instance's current hit points.
func (e *Enemy) HP() int {
	return e.Stats.Get(StatHP)
}

// HealthFraction returns HP relative to the HP captured at spawn.
func (e *Enemy) HealthFraction() float64 {
	maxHP := e.MaxHP
	if maxHP < 1 {
		maxHP = 1
	}
	return float64(e.HP()) / float64(maxHP)
}

// TakeDamage lowers HP by amount, never below zero, and returns the new HP.
func (e *Enemy) TakeDamage(amount int) int {
	if e.Stats == nil {
		e.Stats = make(Stats)
	}
	hp := e.HP() - amount
	if hp < 0 {
		hp = 0
	}
	e.Stats[StatHP] = hp
	return hp
}

// Loot returns the item names dropped on death.
func (t *EnemyTemplate) Loot() []string {
	if t.DeathDrops == nil {
		return []string{}
	}
	return append([]string{}, t.DeathDrops.Items...)
}

// Clone returns a deep copy.
func (t *EnemyTemplate) Clone() *EnemyTemplate {
	out := *t
	out.Stats = t.Stats.Clone()
	if t.Position != nil {
		pos := *t.Position
		if t.Position.Coords != nil {
			c := *t.Position.Coords
			pos.Coords = &c
		}
		out.Position = &pos
	}
	if t.DeathDrops != nil {
		d := *t.DeathDrops
		d.Items = append([]string(nil), t.DeathDrops.Items...)
		out.DeathDrops = &d
	}
	return &out
}

// Clone returns a deep copy.
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}
	out := *e
	out.EnemyTemplate = *e.EnemyTemplate.Clone()
	if e.TargetPlayer != nil {
		id := *e.TargetPlayer
		out.TargetPlayer = &id
	}
	return &out
}

func mergePosition(base, location *EnemyPosition) *EnemyPosition {
	if location == nil {
		return base
	}
	if base == nil {
		loc := *location
		return &loc
	}
	out := *base
	if location.MapID != 0 {
		out.MapID = location.MapID
	}
	if location.X != 0 {
		out.X = location.X
	}
	if location.Y != 0 {
		out.Y = location.Y
	}
	if location.Z != 0 {
		out.Z = location.Z
	}
	if location.Coords != nil {
		c := *location.Coords
		out.Coords = &c
	}
	return &out
}
