package network

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks websocket clients and pushes packets to them.
type Hub struct {
	dispatcher *Dispatcher

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan *Packet

	mu     sync.Mutex
	closed bool
}

// enqueue queues pkt without blocking. It reports false when the queue is
// full or closed.
func (c *client) enqueue(pkt *Packet) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- pkt:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// NewHub creates a hub answering inbound packets through dispatcher.
// The dispatcher's broadcaster is pointed at the hub.
func NewHub(dispatcher *Dispatcher) (*Hub, error) {
	if dispatcher == nil {
		return nil, errors.InvalidArgument("dispatcher is required")
	}
	h := &Hub{
		dispatcher: dispatcher,
		clients:    make(map[*client]struct{}),
	}
	dispatcher.SetBroadcaster(h)
	return h, nil
}

// Subscribe pushes a syncPlayer packet whenever a player is damaged.
// The returned function removes the subscription.
func (h *Hub) Subscribe(bus events.EventBus) func() {
	id := bus.SubscribeFunc(gameevents.PlayerDamaged, 0, func(ctx context.Context, e events.Event) error {
		playerID, ok := gameevents.PlayerID(e.Target())
		if !ok {
			return nil
		}
		pkt, err := h.dispatcher.SyncPlayer(ctx, playerID)
		if err != nil {
			slog.WarnContext(ctx, "failed to build player sync", "player_id", playerID, "error", err)
			return nil
		}
		h.Broadcast(pkt)
		return nil
	})
	return func() {
		if err := bus.Unsubscribe(id); err != nil {
			slog.Warn("failed to unsubscribe hub", "error", err)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues pkt for every client. Clients with a full queue are dropped.
func (h *Hub) Broadcast(pkt *Packet) {
	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		if !c.enqueue(pkt) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		slog.Warn("dropping slow client", "remote_addr", c.conn.RemoteAddr().String())
		h.unregister(c)
	}
}

// ServeHTTP upgrades the request and serves packets until the client leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan *Packet, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("client connected", "remote_addr", conn.RemoteAddr().String())

	go c.writePump()
	c.readPump(r.Context())
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// readPump answers each inbound packet on the client's own queue.
func (c *client) readPump(ctx context.Context) {
	defer func() {
		c.hub.unregister(c)
		if err := c.conn.Close(); err != nil {
			slog.Debug("failed to close websocket connection", "error", err)
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		slog.Warn("failed to set read deadline", "error", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var pkt Packet
		if err := c.conn.ReadJSON(&pkt); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}

		resp, err := c.hub.dispatcher.Receive(ctx, &pkt)
		if err != nil {
			slog.WarnContext(ctx, "packet rejected", "type", pkt.Type, "error", err)
			resp = &Packet{Type: "error", Payload: errorPayload(err), Timestamp: pkt.Timestamp}
		}

		if !c.enqueue(resp) {
			slog.Warn("client queue unavailable, dropping response", "type", resp.Type)
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			slog.Debug("failed to close websocket connection in writePump", "error", err)
		}
	}()

	for {
		select {
		case pkt, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				slog.Warn("failed to set write deadline", "error", err)
			}
			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					slog.Debug("write close message failed", "error", err)
				}
				return
			}
			if err := c.conn.WriteJSON(pkt); err != nil {
				slog.Debug("write packet failed", "error", err)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				slog.Warn("failed to set ping write deadline", "error", err)
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("ping failed", "error", err)
				return
			}
		}
	}
}

func errorPayload(err error) []byte {
	b, encErr := CompressPayload(map[string]string{
		"code":    string(errors.GetCode(err)),
		"message": errors.GetMessage(err),
	})
	if encErr != nil {
		return nil
	}
	return b
}
