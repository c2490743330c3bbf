// Package entities holds the game records shared by every subsystem: players,
// items, skills, enemy instances, quests, NPCs, maps and dungeons.
package entities

// Well-known stat keys. Stats may also carry ad hoc keys from asset files.
const (
	StatHP     = "HP"
	StatSTA    = "STA"
	StatSTR    = "STR"
	StatDEX    = "DEX"
	StatCON    = "CON"
	StatAGI    = "AGI"
	StatVIT    = "VIT"
	StatINT    = "INT"
	StatMIND   = "MIND"
	StatLUK    = "LUK"
	StatATKPOW = "ATKPOW"
	StatDEF    = "DEF"
	StatCRT    = "CRT"
	StatCRC    = "CRC"
	StatEVA    = "EVA"
	StatCDR    = "CDR"
	StatLVL    = "LVL"
	StatEXP    = "EXP"
)

// Stats maps a stat key to its value.
type Stats map[string]int

// Get returns the value for key, zero when unset.
func (s Stats) Get(key string) int {
	return s[key]
}

// GetOr returns the value for key, or def when the stat is unset or zero.
func (s Stats) GetOr(key string, def int) int {
	if v := s[key]; v != 0 {
		return v
	}
	return def
}

// Add adds delta to key. The map must be non-nil.
func (s Stats) Add(key string, delta int) {
	s[key] += delta
}

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	if s == nil {
		return nil
	}
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge adds every value of other onto a copy of s.
func (s Stats) Merge(other map[string]int) Stats {
	out := s.Clone()
	if out == nil {
		out = make(Stats, len(other))
	}
	for k, v := range other {
		out[k] += v
	}
	return out
}
