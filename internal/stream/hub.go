package stream

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
)

const broadcastBufferSize = 256

// ErrBroadcastFull is returned by Publish when the hub cannot keep up.
var ErrBroadcastFull = errors.New("stream: broadcast buffer full")

// Hub tracks connected dashboards and pushes every published card to them.
type Hub struct {
	clients   map[*Client]struct{}
	clientsMu sync.RWMutex

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	doneOnce   sync.Once

	snapshot func() []cards.Card
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates a hub. snapshot, when set, supplies the current cards sent
// to each client on connect.
func NewHub(logger *slog.Logger, snapshot func() []cards.Card) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan Message, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		snapshot:   snapshot,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is enforced by the CORS layer in front of the router.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer h.doneOnce.Do(func() { close(h.done) })
	logging.Info(h.logger, "stream hub started")

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// Register adds a client. It is a no-op once the hub has stopped.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

// Unregister removes a client. It is a no-op once the hub has stopped.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues a card for every connected client.
func (h *Hub) Publish(ctx context.Context, card cards.Card) error {
	_ = ctx
	select {
	case h.broadcast <- cardMessage(card):
		return nil
	default:
		return ErrBroadcastFull
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and attaches a new client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Warn(logging.FromContext(r.Context(), h.logger), "websocket upgrade failed", logging.FieldError, err)
		return
	}

	c := NewClient(uuid.NewString(), conn, h, h.logger)
	h.Register(c)

	go c.WritePump()
	go c.ReadPump()
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.clientsMu.Unlock()

	logging.Info(h.logger, "websocket client connected", logging.FieldClientID, c.ID, logging.FieldCount, total)

	if h.snapshot == nil {
		return
	}
	for _, card := range h.snapshot() {
		if !c.trySend(cardMessage(card)) {
			break
		}
	}
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	total := len(h.clients)
	h.clientsMu.Unlock()

	if ok {
		logging.Info(h.logger, "websocket client disconnected", logging.FieldClientID, c.ID, logging.FieldCount, total)
	}
}

func (h *Hub) broadcastMessage(msg Message) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.trySend(msg) {
			// Slow consumer; drop it rather than stall the other dashboards.
			logging.Warn(h.logger, "websocket client too slow, disconnecting", logging.FieldClientID, c.ID)
			h.unregisterClient(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
	logging.Info(h.logger, "stream hub stopped")
}
