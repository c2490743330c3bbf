package network_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sim/internal/network"
)

func TestDiffState(t *testing.T) {
	prev := map[string]any{
		"hp":    100,
		"pos":   map[string]any{"X": 1, "Y": 2},
		"gone":  true,
		"level": 3,
	}
	next := map[string]any{
		"hp":    90,
		"pos":   map[string]any{"X": 1, "Y": 2},
		"level": 3,
		"gold":  5,
	}

	assert.Equal(t, map[string]any{"hp": 90, "gold": 5}, network.DiffState(prev, next))
	assert.Empty(t, network.DiffState(next, next))
	assert.Equal(t, next, network.DiffState(nil, next))
}

func TestCompressPayload(t *testing.T) {
	b, err := network.CompressPayload(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, string(b))

	_, err = network.CompressPayload(make(chan int))
	assert.Error(t, err)
}

func TestPacketEnvelope(t *testing.T) {
	pkt := network.Packet{Type: network.TypeSyncPlayer, Payload: []byte(`{"playerID":2}`), Timestamp: 1234}
	b, err := json.Marshal(pkt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"syncPlayer","payload":{"playerID":2},"timestamp":1234}`, string(b))
}
