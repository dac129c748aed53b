package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"chessmaster/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client is one websocket connection subscribed to a game. Outbound
// messages go through send so only the writer goroutine touches conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn, send: make(chan []byte, 16)}
}

// writePump drains the send channel onto the connection.
func (cl *client) writePump() {
	for msg := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (cl *client) sendJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal websocket message")
		return
	}
	select {
	case cl.send <- data:
	default:
		// slow client, drop the message
	}
}

// hub tracks which clients watch which game.
type hub struct {
	mu    sync.Mutex
	games map[string]map[*client]struct{}
}

func newHub() *hub {
	return &hub{games: make(map[string]map[*client]struct{})}
}

func (h *hub) register(gameID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.games[gameID] == nil {
		h.games[gameID] = make(map[*client]struct{})
	}
	h.games[gameID][cl] = struct{}{}
}

func (h *hub) unregister(gameID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.games[gameID]; ok {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.games, gameID)
		}
	}
	close(cl.send)
}

func (h *hub) broadcast(gameID string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal broadcast message")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.games[gameID] {
		select {
		case cl.send <- data:
		default:
		}
	}
}

type wsMessage struct {
	Type  string  `json:"type"`
	Move  string  `json:"move,omitempty"`
	Speed float64 `json:"speed,omitempty"`
}

// gameSocket serves live human-vs-AI games. The client sends "move" and
// "get_state" messages; updates are broadcast to every watcher.
func (s *Server) gameSocket(c *gin.Context) {
	id := c.Param("id")
	state, err := s.manager.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	cl := newClient(conn)
	s.hub.register(id, cl)
	go cl.writePump()
	defer func() {
		s.hub.unregister(id, cl)
		conn.Close()
	}()

	cl.sendJSON(gin.H{"type": "connected", "game": state})

	// The engine may already be on turn, e.g. when the human plays black.
	if s.manager.AITurn(id) {
		if result, err := s.manager.Step(id); err == nil {
			s.hub.broadcast(id, gin.H{"type": "move", "data": moveResponse{
				Success: true,
				Game:    result.Game,
				AIMove:  &moveDetail{UCI: result.UCI, SAN: result.SAN},
			}})
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			cl.sendJSON(gin.H{"type": "error", "message": "invalid message"})
			continue
		}

		switch msg.Type {
		case "move":
			resp, err := s.playHumanMove(id, msg.Move)
			if err != nil {
				cl.sendJSON(gin.H{"type": "error", "message": err.Error()})
				continue
			}
			s.hub.broadcast(id, gin.H{"type": "move", "data": resp})
		case "get_state":
			state, err := s.manager.Get(id)
			if err != nil {
				cl.sendJSON(gin.H{"type": "error", "message": err.Error()})
				continue
			}
			cl.sendJSON(gin.H{"type": "state", "game": state})
		default:
			cl.sendJSON(gin.H{"type": "error", "message": "unknown message type"})
		}
	}
}

const (
	minStepDelay     = 300 * time.Millisecond
	maxStepDelay     = 5 * time.Second
	defaultStepDelay = 1500 * time.Millisecond
)

// aiGameSocket drives an AI-vs-AI game, playing one move per tick and
// streaming the results. The client can pause, resume, single-step, and
// change the playback speed.
func (s *Server) aiGameSocket(c *gin.Context) {
	id := c.Param("id")
	state, err := s.manager.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	cl := newClient(conn)
	s.hub.register(id, cl)
	go cl.writePump()
	defer func() {
		s.hub.unregister(id, cl)
		conn.Close()
	}()

	cl.sendJSON(gin.H{"type": "connected", "game": state})

	ctrl := make(chan wsMessage)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg wsMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			select {
			case ctrl <- msg:
			case <-done:
				return
			}
		}
	}()

	playing := true
	delay := defaultStepDelay
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-done:
			return
		case msg := <-ctrl:
			switch msg.Type {
			case "pause":
				playing = false
			case "resume":
				playing = true
				timer.Reset(delay)
			case "step":
				if !s.step(id, cl) {
					playing = false
				}
			case "speed":
				d := time.Duration(msg.Speed * float64(time.Second))
				if d < minStepDelay {
					d = minStepDelay
				}
				if d > maxStepDelay {
					d = maxStepDelay
				}
				delay = d
			}
		case <-timer.C:
			if playing {
				if !s.step(id, cl) {
					playing = false
				}
			}
			timer.Reset(delay)
		}
	}
}

// step plays one engine move and broadcasts it. It reports false once
// the game is finished.
func (s *Server) step(id string, cl *client) bool {
	result, err := s.manager.Step(id)
	if err != nil {
		if errors.Is(err, game.ErrGameOver) {
			state, stateErr := s.manager.Get(id)
			if stateErr == nil {
				s.hub.broadcast(id, gin.H{"type": "game_over", "game": state})
			}
			return false
		}
		cl.sendJSON(gin.H{"type": "error", "message": err.Error()})
		return false
	}
	s.hub.broadcast(id, gin.H{"type": "move", "data": moveResponse{
		Success: true,
		Game:    result.Game,
		AIMove:  &moveDetail{UCI: result.UCI, SAN: result.SAN},
	}})
	if result.Game.Status == game.StatusCompleted {
		s.hub.broadcast(id, gin.H{"type": "game_over", "game": result.Game})
		return false
	}
	return true
}
