// Package broadcast pushes lifecycle events to realtime observers over websockets.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/errors"
	"lifeflow/internal/infra/metrics"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Message is the frame written to observers
type Message struct {
	Event     entity.EventName `json:"event"`
	Data      any              `json:"data"`
	Timestamp int64            `json:"timestamp"`
}

type observer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps the process-local set of observers and fans events out to them.
// Each observer has a bounded queue; when it is full the event is dropped for that observer only.
type Hub struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	upgrader     websocket.Upgrader
	sendBuffer   int
	pingInterval time.Duration

	mu        sync.RWMutex
	observers map[*observer]struct{}
	closed    bool
}

// NewHub creates an empty hub
func NewHub(logger *slog.Logger, m *metrics.Metrics, sendBuffer int, pingInterval time.Duration) *Hub {
	return &Hub{
		logger:  logger,
		metrics: m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		sendBuffer:   sendBuffer,
		pingInterval: pingInterval,
		observers:    make(map[*observer]struct{}),
	}
}

// Broadcast enqueues the event for every connected observer. It never blocks on a slow observer.
func (h *Hub) Broadcast(_ context.Context, event entity.EventName, payload any) error {
	frame, err := json.Marshal(Message{
		Event:     event,
		Data:      payload,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode broadcast message")
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for o := range h.observers {
		select {
		case o.send <- frame:
		default:
			h.metrics.IncDroppedEvent()
			h.logger.Warn("Dropped event for slow observer", slog.String("event", event.String()))
		}
	}

	return nil
}

// Close disconnects every observer. Later connections are refused.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for o := range h.observers {
		delete(h.observers, o)
		close(o.send)
	}
	h.metrics.SetObservers(0)

	return nil
}

// ObserverCount returns the number of connected observers
func (h *Hub) ObserverCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.observers)
}

// ServeHTTP upgrades the connection and holds it until the observer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade websocket", slog.Any("error", err))

		return
	}

	o := &observer{conn: conn, send: make(chan []byte, h.sendBuffer)}
	if !h.register(o) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()

		return
	}

	go h.writeLoop(o)
	h.readLoop(o)
}

func (h *Hub) register(o *observer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.observers[o] = struct{}{}
	h.metrics.SetObservers(len(h.observers))
	h.logger.Debug("Observer connected", slog.Int("observers", len(h.observers)))

	return true
}

func (h *Hub) unregister(o *observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.observers[o]; !ok {
		return
	}
	delete(h.observers, o)
	close(o.send)
	h.metrics.SetObservers(len(h.observers))
	h.logger.Debug("Observer disconnected", slog.Int("observers", len(h.observers)))
}

// readLoop discards inbound frames and keeps the read deadline fresh on pongs.
func (h *Hub) readLoop(o *observer) {
	defer h.unregister(o)

	pongWait := 2 * h.pingInterval
	_ = o.conn.SetReadDeadline(time.Now().Add(pongWait))
	o.conn.SetPongHandler(func(string) error {
		return o.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := o.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("Observer read failed", slog.Any("error", err))
			}

			return
		}
	}
}

// writeLoop is the only writer on the connection.
func (h *Hub) writeLoop(o *observer) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = o.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-o.send:
			_ = o.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = o.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))

				return
			}
			if err := o.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = o.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := o.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
