package entities

import "encoding/json"

// PassiveActiveActive marks a skill that costs stamina and has a cooldown.
const PassiveActiveActive = "Active"

// DefaultStaminaCost applies to active skills that declare no cost.
const DefaultStaminaCost = 5

// Skill is an entry of ITEM/skills.json or of a player's skill list.
type Skill struct {
	SkillName        string          `json:"skillName"`
	Type             string          `json:"type,omitempty"`
	LevelRequirement int             `json:"levelRequirement,omitempty"`
	PassiveActive    string          `json:"passiveActive,omitempty"`
	StaminaCost      int             `json:"staminaCost,omitempty"`
	EffectBonus      json.RawMessage `json:"effectBonus,omitempty"`
	Description      string          `json:"description,omitempty"`
}

// IsActive reports whether the skill is an active skill.
func (s *Skill) IsActive() bool {
	return s != nil && s.PassiveActive == PassiveActiveActive
}

// Cost returns the stamina cost, defaulting when unset.
func (s *Skill) Cost() int {
	if s.StaminaCost == 0 {
		return DefaultStaminaCost
	}
	return s.StaminaCost
}

// EffectBonusText returns the effect bonus when it is a JSON string, empty otherwise.
func (s *Skill) EffectBonusText() string {
	if s == nil || len(s.EffectBonus) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(s.EffectBonus, &text); err != nil {
		return ""
	}
	return text
}
