// Package monitor exposes a small live dashboard over the navigation
// core: the latest per-category state as JSON, plus a websocket feed of
// tick snapshots. It is purely observational — Publish never blocks the
// control tick, and slow websocket clients are dropped rather than waited
// on.
package monitor

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/quillon/waymark/pkg/nav"
)

// Server serves the dashboard and fans tick snapshots out to websocket
// subscribers.
type Server struct {
	app    *fiber.App
	logger *slog.Logger

	mu      sync.RWMutex
	last    nav.State
	clients map[chan []byte]struct{}
}

// NewServer creates a monitor server. Call Listen to serve and Publish to
// feed it.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:  logger,
		clients: make(map[chan []byte]struct{}),
	}

	app := fiber.New(fiber.Config{
		AppName:               "waymark monitor",
		DisableStartupMessage: true,
	})

	app.Get("/api/state", func(c *fiber.Ctx) error {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return c.JSON(s.last)
	})

	app.Get("/ws", websocket.New(s.serveWS))

	s.app = app
	return s
}

// Publish implements nav.StateSink. The snapshot is marshaled once and
// broadcast; clients whose buffers are full miss this frame.
func (s *Server) Publish(state nav.State) {
	data, err := json.Marshal(state)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.last = state
	for ch := range s.clients {
		select {
		case ch <- data:
		default:
			// Client too slow for the tick rate; skip this frame for it.
		}
	}
	s.mu.Unlock()
}

func (s *Server) serveWS(c *websocket.Conn) {
	ch := make(chan []byte, 16)

	s.mu.Lock()
	s.clients[ch] = struct{}{}
	count := len(s.clients)
	s.mu.Unlock()
	s.logger.Info("monitor client connected", "clients", count)

	defer func() {
		s.mu.Lock()
		delete(s.clients, ch)
		s.mu.Unlock()
		c.Close()
	}()

	for data := range ch {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			s.logger.Debug("monitor client write failed", "err", err)
			return
		}
	}
}

// Listen serves on addr (e.g. ":7717"), blocking until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("monitor listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
