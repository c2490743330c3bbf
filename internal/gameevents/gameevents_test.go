package gameevents_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
)

func TestPublishDeliversContextData(t *testing.T) {
	bus := events.NewBus()

	var gotDamage any
	var gotTarget int
	bus.SubscribeFunc(gameevents.PlayerDamaged, 0, func(_ context.Context, e events.Event) error {
		gotDamage, _ = e.Context().Get(gameevents.KeyDamage)
		gotTarget, _ = gameevents.PlayerID(e.Target())
		return nil
	})

	gameevents.Publish(context.Background(), bus, gameevents.PlayerDamaged,
		gameevents.Enemy("enemy_1"), gameevents.Player(3), map[string]any{gameevents.KeyDamage: 10})

	assert.Equal(t, 10, gotDamage)
	assert.Equal(t, 3, gotTarget)
}

func TestPublishNilBusIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		gameevents.Publish(context.Background(), nil, gameevents.PlayerDamaged, nil, nil, nil)
	})
}

func TestPlayerID(t *testing.T) {
	id, ok := gameevents.PlayerID(gameevents.Player(12))
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	_, ok = gameevents.PlayerID(gameevents.Enemy("12"))
	assert.False(t, ok)
}
