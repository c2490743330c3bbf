package network

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/world"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/clock"
)

// Broadcaster fans a packet out to connected clients.
type Broadcaster interface {
	Broadcast(pkt *Packet)
}

// DispatcherConfig holds the dependencies for the packet dispatcher
type DispatcherConfig struct {
	PlayerService player.Service
	EnemyService  enemy.Service
	WorldService  world.Service
	Clock         clock.Clock
	// Broadcaster is optional; without one Send only logs
	Broadcaster Broadcaster
}

// Validate ensures all required dependencies are provided
func (c *DispatcherConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.EnemyService == nil {
		vb.RequiredField("EnemyService")
	}
	if c.WorldService == nil {
		vb.RequiredField("WorldService")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Dispatcher builds outbound packets and answers inbound sync requests.
type Dispatcher struct {
	players     player.Service
	enemies     enemy.Service
	world       world.Service
	clock       clock.Clock
	broadcaster Broadcaster
}

// NewDispatcher creates a dispatcher with the provided dependencies
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Dispatcher{
		players:     cfg.PlayerService,
		enemies:     cfg.EnemyService,
		world:       cfg.WorldService,
		clock:       cfg.Clock,
		broadcaster: cfg.Broadcaster,
	}, nil
}

// SetBroadcaster replaces the broadcaster used by Send.
func (d *Dispatcher) SetBroadcaster(b Broadcaster) {
	d.broadcaster = b
}

// Send builds a packet around payload and broadcasts it.
func (d *Dispatcher) Send(ctx context.Context, packetType string, payload any) (*Packet, error) {
	pkt, err := d.build(packetType, payload)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "packet sent", "type", pkt.Type, "bytes", len(pkt.Payload))
	if d.broadcaster != nil {
		d.broadcaster.Broadcast(pkt)
	}
	return pkt, nil
}

// Receive answers an inbound packet with the requested state.
func (d *Dispatcher) Receive(ctx context.Context, pkt *Packet) (*Packet, error) {
	if pkt == nil {
		return nil, errors.InvalidArgument("packet is required")
	}
	slog.DebugContext(ctx, "packet received", "type", pkt.Type)

	switch pkt.Type {
	case TypeSyncPlayer:
		var req SyncPlayerRequest
		if err := pkt.Decode(&req); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid syncPlayer payload")
		}
		return d.SyncPlayer(ctx, req.PlayerID)
	case TypeSyncEnemy:
		var req SyncEnemyRequest
		if err := pkt.Decode(&req); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid syncEnemy payload")
		}
		return d.SyncEnemy(ctx, req.InstanceID)
	case TypeSyncWorld:
		return d.SyncWorld(ctx)
	default:
		return nil, errors.Unimplementedf("unknown packet type %q", pkt.Type)
	}
}

// SyncPlayer returns the stored record of playerID.
func (d *Dispatcher) SyncPlayer(ctx context.Context, playerID int) (*Packet, error) {
	out, err := d.players.Get(ctx, &player.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	return d.build(TypeSyncPlayer, out.Player)
}

// SyncEnemy returns a live enemy instance.
func (d *Dispatcher) SyncEnemy(ctx context.Context, instanceID string) (*Packet, error) {
	if instanceID == "" {
		return nil, errors.InvalidArgument("instanceID is required")
	}
	out, err := d.enemies.Get(ctx, &enemy.GetInput{InstanceID: instanceID})
	if err != nil {
		return nil, err
	}
	return d.build(TypeSyncEnemy, out.Enemy)
}

// SyncWorld returns the loaded maps and the world clock.
func (d *Dispatcher) SyncWorld(ctx context.Context) (*Packet, error) {
	out, err := d.world.Snapshot(ctx, &world.SnapshotInput{})
	if err != nil {
		return nil, err
	}
	return d.build(TypeSyncWorld, out)
}

func (d *Dispatcher) build(packetType string, payload any) (*Packet, error) {
	if packetType == "" {
		return nil, errors.InvalidArgument("packet type is required")
	}
	pkt := &Packet{Type: packetType, Timestamp: clock.UnixMilli(d.clock)}
	if payload != nil {
		b, err := CompressPayload(payload)
		if err != nil {
			return nil, err
		}
		pkt.Payload = b
	}
	return pkt, nil
}
