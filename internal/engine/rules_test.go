package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

func TestParseMultiplier(t *testing.T) {
	testCases := []struct {
		bonus    string
		expected float64
	}{
		{bonus: "", expected: 1},
		{bonus: "heals a bit", expected: 1},
		{bonus: "150%", expected: 2.5},
		{bonus: "20% more damage", expected: 1.2},
		{bonus: "3x", expected: 3},
		{bonus: "2 normal attacks", expected: 2},
		{bonus: "2normal", expected: 2},
		{bonus: "50% then 2x", expected: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.bonus, func(t *testing.T) {
			assert.InDelta(t, tc.expected, engine.ParseMultiplier(tc.bonus), 1e-9)
		})
	}
}

func TestCalculateCooldown(t *testing.T) {
	assert.InDelta(t, 5.0, engine.CalculateCooldown(entities.Stats{}), 1e-9)
	assert.InDelta(t, 2.5, engine.CalculateCooldown(entities.Stats{entities.StatCDR: 50}), 1e-9)
	assert.InDelta(t, 0.1, engine.CalculateCooldown(entities.Stats{entities.StatCDR: 100}), 1e-9)
	assert.InDelta(t, 0.1, engine.CalculateCooldown(entities.Stats{entities.StatCDR: 150}), 1e-9)

	assert.Equal(t, int64(5000), engine.CooldownMillis(entities.Stats{}))
	assert.Equal(t, int64(100), engine.CooldownMillis(entities.Stats{entities.StatCDR: 99}))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, engine.RoundHalfUp(2.5))
	assert.Equal(t, 2, engine.RoundHalfUp(2.49))
	assert.Equal(t, -2, engine.RoundHalfUp(-2.5))
}

func TestVarianceSpread(t *testing.T) {
	assert.Equal(t, 0, engine.VarianceSpread(0))
	assert.Equal(t, 0, engine.VarianceSpread(9))
	assert.Equal(t, 1, engine.VarianceSpread(10))
	assert.Equal(t, 5, engine.VarianceSpread(59))
}

func TestApplyModifiers(t *testing.T) {
	base := entities.Stats{entities.StatSTR: 3}
	out := engine.ApplyModifiers(base, map[string]int{entities.StatSTR: 2, entities.StatDEF: 1})

	assert.Equal(t, 5, out[entities.StatSTR])
	assert.Equal(t, 1, out[entities.StatDEF])
	assert.Equal(t, 3, base[entities.StatSTR])
}

func TestCalculateDerivedStats(t *testing.T) {
	items := []entities.Item{
		{ItemID: 1, ItemName: "Sword", ItemStats: map[string]int{entities.StatATKPOW: 5}},
		{ItemID: 2, ItemName: "Ring", ItemStats: map[string]int{entities.StatCRT: 3, entities.StatDEF: 1}},
		{ItemID: 3, ItemName: "Shield", ItemStats: map[string]int{entities.StatDEF: 4}},
	}
	equipment := entities.Equipment{
		"weapon": entities.Item{ItemID: 1},
		"hands": map[string]any{
			"left":  map[string]any{"itemID": float64(2), "itemName": "Ring"},
			"right": []any{map[string]any{"itemID": float64(2)}},
		},
		"offhand": &entities.Item{ItemID: 3},
		"unknown": map[string]any{"itemID": float64(99)},
	}
	base := entities.Stats{entities.StatSTR: 10}

	out := engine.CalculateDerivedStats(base, equipment, items)

	assert.Equal(t, 10, out[entities.StatSTR])
	assert.Equal(t, 5, out[entities.StatATKPOW])
	assert.Equal(t, 6, out[entities.StatCRT])
	assert.Equal(t, 6, out[entities.StatDEF])
	assert.NotContains(t, base, entities.StatATKPOW)
}
