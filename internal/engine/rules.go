package engine

import (
	"math"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

const (
	// BaseCooldownSeconds is the cooldown of every skill before CDR.
	BaseCooldownSeconds = 5.0
	// MinCooldownSeconds is the floor applied after CDR.
	MinCooldownSeconds = 0.1
	// CritMultiplier scales damage on a critical hit.
	CritMultiplier = 1.5
	// MaxCritChance caps the crit threshold.
	MaxCritChance = 50
)

var (
	percentBonus = regexp.MustCompile(`([0-9]+)%`)
	rawBonus     = regexp.MustCompile(`([0-9]+)x|([0-9]+)\s*normal`)
)

// ParseMultiplier reads a damage multiplier from a skill's effect bonus text.
// "N%" yields 1+N/100; "Nx" or "N normal" yields N and wins over a percentage.
// Anything else yields 1.
func ParseMultiplier(effectBonus string) float64 {
	multiplier := 1.0
	if m := percentBonus.FindStringSubmatch(effectBonus); m != nil {
		n, _ := strconv.Atoi(m[1])
		multiplier = 1 + float64(n)/100
	}
	if m := rawBonus.FindStringSubmatch(effectBonus); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		n, _ := strconv.Atoi(raw)
		multiplier = float64(n)
	}
	return multiplier
}

// BaseDamage is max(0, round((STR+ATKPOW)*multiplier) - DEF).
func BaseDamage(attacker, defender Combatant, multiplier float64) int {
	raw := attacker.Stats.Get(entities.StatSTR) + attacker.AttackPower()
	dmg := RoundHalfUp(float64(raw)*multiplier) - defender.Stats.Get(entities.StatDEF)
	if dmg < 0 {
		return 0
	}
	return dmg
}

// VarianceSpread is the ± bound of the integer variance applied to dmg.
func VarianceSpread(dmg int) int {
	if dmg < 1 {
		dmg = 1
	}
	return int(math.Floor(float64(dmg) * 0.1))
}

// CritChance is min(50, CRT), falling back to CRC when CRT is unset.
func CritChance(stats entities.Stats) int {
	chance := stats.Get(entities.StatCRT)
	if chance == 0 {
		chance = stats.Get(entities.StatCRC)
	}
	if chance > MaxCritChance {
		return MaxCritChance
	}
	return chance
}

// ApplyCrit scales dmg by 1.5, rounded.
func ApplyCrit(dmg int) int {
	return RoundHalfUp(float64(dmg) * CritMultiplier)
}

// CalculateCooldown returns the cooldown in seconds: max(0.1, 5*(1-CDR/100)).
func CalculateCooldown(stats entities.Stats) float64 {
	cd := BaseCooldownSeconds * (1 - float64(stats.Get(entities.StatCDR))/100)
	return math.Max(MinCooldownSeconds, cd)
}

// CooldownMillis is the cooldown truncated to whole milliseconds.
func CooldownMillis(stats entities.Stats) int64 {
	return int64(math.Floor(CalculateCooldown(stats) * 1000))
}

// ApplyModifiers adds every modifier onto a copy of base.
func ApplyModifiers(base entities.Stats, mods map[string]int) entities.Stats {
	return base.Merge(mods)
}

// CalculateDerivedStats sums the itemStats of every equipped item onto a copy
// of base. Equipment is walked recursively; a value carrying an itemID is
// looked up in items and anything else is descended into.
func CalculateDerivedStats(base entities.Stats, equipment entities.Equipment, items []entities.Item) entities.Stats {
	out := base.Clone()
	if out == nil {
		out = make(entities.Stats)
	}

	byID := make(map[int]*entities.Item, len(items))
	for i := range items {
		if _, seen := byID[items[i].ItemID]; !seen {
			byID[items[i].ItemID] = &items[i]
		}
	}

	var walk func(v any)
	walk = func(v any) {
		if v == nil {
			return
		}
		if id, ok := entities.EquippedItemID(v); ok {
			if it, found := byID[id]; found {
				for k, bonus := range it.ItemStats {
					out[k] += bonus
				}
			}
			return
		}
		switch t := v.(type) {
		case entities.Equipment:
			for _, child := range t {
				walk(child)
			}
		case map[string]any:
			for _, child := range t {
				walk(child)
			}
		case []any:
			for _, child := range t {
				walk(child)
			}
		}
	}
	walk(equipment)

	return out
}

// RoundHalfUp rounds to the nearest integer with halves rounded toward +Inf.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
