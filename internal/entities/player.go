package entities

import (
	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

// Defaults applied by LevelUp when a stat is unset.
const (
	DefaultHP       = 100
	DefaultStat     = 1
	DefaultEffectMS = 10000
)

// Player is one persisted player record.
type Player struct {
	PlayerID      int              `json:"playerID"`
	DisplayName   string           `json:"displayName,omitempty"`
	Username      string           `json:"username,omitempty"`
	Stats         Stats            `json:"stats"`
	DerivedStats  Stats            `json:"derivedStats,omitempty"`
	Inventory     Inventory        `json:"inventory"`
	Skills        []Skill          `json:"skills,omitempty"`
	Quests        QuestLog         `json:"quests"`
	Position      *Position        `json:"position,omitempty"`
	Cooldowns     map[string]int64 `json:"cooldowns,omitempty"`
	StatusEffects []StatusEffect   `json:"statusEffects,omitempty"`
}

// Position locates an entity on a map.
type Position struct {
	MapID int     `json:"mapID"`
	X     float64 `json:"X"`
	Y     float64 `json:"Y"`
	Z     float64 `json:"Z"`
}

// StatusEffect is an effect applied to a player at AppliedAt (unix ms).
type StatusEffect struct {
	Name       string         `json:"name"`
	DurationMS int64          `json:"durationMS,omitempty"`
	AppliedAt  int64          `json:"appliedAt"`
	Data       map[string]any `json:"data,omitempty"`
}

// Lifetime returns the effect duration, defaulting when unset.
func (e StatusEffect) Lifetime() int64 {
	if e.DurationMS <= 0 {
		return DefaultEffectMS
	}
	return e.DurationMS
}

// Normalize allocates every nil map so mutators can write without checks.
func (p *Player) Normalize() {
	if p.Stats == nil {
		p.Stats = make(Stats)
	}
	if p.Inventory.Items == nil {
		p.Inventory.Items = make(map[string]int)
	}
	if p.Inventory.Equipment == nil {
		p.Inventory.Equipment = make(Equipment)
	}
	p.Quests.normalize()
	if p.Cooldowns == nil {
		p.Cooldowns = make(map[string]int64)
	}
}

// HP returns the current hit points.
func (p *Player) HP() int {
	return p.Stats.Get(StatHP)
}

// IsAlive reports whether HP is above zero.
func (p *Player) IsAlive() bool {
	return p.HP() > 0
}

// Level returns LVL, treating an unset level as 1.
func (p *Player) Level() int {
	return p.Stats.GetOr(StatLVL, 1)
}

// TakeDamage lowers HP by amount, never below zero, and returns the new HP.
func (p *Player) TakeDamage(amount int) int {
	p.Normalize()
	hp := p.HP() - amount
	if hp < 0 {
		hp = 0
	}
	p.Stats[StatHP] = hp
	return hp
}

// ExperienceThreshold is the EXP needed to advance from level.
func ExperienceThreshold(level int) int {
	return level * 100
}

// ApplyExperience adds amount EXP and levels up once per threshold crossed.
// The threshold is recomputed from the current level each iteration.
// It returns the number of levels gained.
func (p *Player) ApplyExperience(amount int) int {
	p.Normalize()
	p.Stats[StatLVL] = p.Level()
	p.Stats[StatEXP] += amount

	gained := 0
	for p.Stats[StatEXP] >= ExperienceThreshold(p.Stats[StatLVL]) {
		p.Stats[StatEXP] -= ExperienceThreshold(p.Stats[StatLVL])
		p.Stats[StatLVL]++
		p.LevelUp()
		gained++
	}
	return gained
}

// LevelUp applies the fixed per-level stat increases.
func (p *Player) LevelUp() {
	p.Normalize()
	p.Stats[StatLVL] = p.Level()
	p.Stats[StatHP] = p.Stats.GetOr(StatHP, DefaultHP) + 10
	p.Stats[StatSTR] = p.Stats.GetOr(StatSTR, DefaultStat) + 2
	p.Stats[StatDEX] = p.Stats.GetOr(StatDEX, DefaultStat) + 1
	p.Stats[StatCON] = p.Stats.GetOr(StatCON, DefaultStat) + 1
	p.Stats[StatSTA] = p.Stats.GetOr(StatSTA, DefaultStat) + 1
}

// ExpireStatusEffects drops effects whose lifetime has elapsed at nowMS and
// returns the removed ones.
func (p *Player) ExpireStatusEffects(nowMS int64) []StatusEffect {
	var kept, removed []StatusEffect
	for _, e := range p.StatusEffects {
		if nowMS-e.AppliedAt < e.Lifetime() {
			kept = append(kept, e)
		} else {
			removed = append(removed, e)
		}
	}
	p.StatusEffects = kept
	return removed
}

// OnCooldown reports whether the named skill is still cooling down at nowMS.
func (p *Player) OnCooldown(name string, nowMS int64) bool {
	expiry, ok := p.Cooldowns[name]
	return ok && expiry > nowMS
}

// Validate checks the minimum shape of a player record.
func (p *Player) Validate() error {
	if p == nil {
		return errors.InvalidArgument("player is nil")
	}
	if p.PlayerID < 0 {
		return errors.InvalidArgumentf("playerID must not be negative, got %d", p.PlayerID)
	}
	if p.Stats == nil {
		return errors.InvalidArgumentf("player %d has no stats", p.PlayerID)
	}
	return nil
}

// Clone returns a deep copy.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Stats = p.Stats.Clone()
	out.DerivedStats = p.DerivedStats.Clone()
	out.Inventory = p.Inventory.Clone()
	if p.Skills != nil {
		out.Skills = make([]Skill, len(p.Skills))
		for i, s := range p.Skills {
			s.EffectBonus = append([]byte(nil), s.EffectBonus...)
			out.Skills[i] = s
		}
	}
	out.Quests = p.Quests.Clone()
	if p.Position != nil {
		pos := *p.Position
		out.Position = &pos
	}
	if p.Cooldowns != nil {
		out.Cooldowns = make(map[string]int64, len(p.Cooldowns))
		for k, v := range p.Cooldowns {
			out.Cooldowns[k] = v
		}
	}
	if p.StatusEffects != nil {
		out.StatusEffects = make([]StatusEffect, len(p.StatusEffects))
		for i, e := range p.StatusEffects {
			if e.Data != nil {
				e.Data = cloneValue(e.Data).(map[string]any)
			}
			out.StatusEffects[i] = e
		}
	}
	return &out
}
