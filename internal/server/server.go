// Package server exposes the REST and WebSocket API over the game
// manager, the opening explorer, and the lesson curriculum.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"chessmaster/internal/engine"
	"chessmaster/internal/game"
	"chessmaster/internal/lesson"
	"chessmaster/internal/opening"
	"chessmaster/internal/storage"
)

const (
	apiName    = "Chess Master API"
	apiVersion = "1.0.0"
)

// Server wires the HTTP handlers to their collaborators.
type Server struct {
	manager  *game.Manager
	openings *opening.Explorer
	store    *storage.Store // nil disables the stats endpoint's data
	hub      *hub
}

// New creates a server around an existing manager and store.
func New(manager *game.Manager, openings *opening.Explorer, store *storage.Store) *Server {
	return &Server{
		manager:  manager,
		openings: openings,
		store:    store,
		hub:      newHub(),
	}
}

// Router builds the HTTP router with all REST and WebSocket routes.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/", s.root)
	router.GET("/api/health", s.health)

	router.POST("/api/games", s.createGame)
	router.GET("/api/games", s.listGames)
	router.GET("/api/games/:id", s.getGame)
	router.DELETE("/api/games/:id", s.deleteGame)
	router.POST("/api/games/:id/move", s.makeMove)
	router.POST("/api/games/:id/pause", s.pauseGame)
	router.POST("/api/games/:id/resume", s.resumeGame)
	router.GET("/api/games/:id/legal-moves", s.legalMoves)
	router.GET("/api/games/:id/legal-moves/:square", s.movesForSquare)

	router.POST("/api/analyze", s.analyze)
	router.GET("/api/difficulties", s.difficulties)
	router.GET("/api/stats", s.stats)

	router.GET("/api/openings", s.allOpenings)
	router.GET("/api/openings/categories", s.openingCategories)
	router.GET("/api/openings/popular", s.popularOpenings)
	router.GET("/api/openings/category/:category", s.openingsByCategory)
	router.GET("/api/openings/eco/:eco", s.openingByECO)
	router.GET("/api/openings/search", s.searchOpening)

	router.GET("/api/lessons", s.allLessons)
	router.GET("/api/lessons/:id", s.lessonByID)
	router.GET("/api/lessons/difficulty/:level", s.lessonsByDifficulty)

	router.GET("/ws/game/:id", s.gameSocket)
	router.GET("/ws/ai-game/:id", s.aiGameSocket)

	return router
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    apiName,
		"version": apiVersion,
		"status":  "running",
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type createGameRequest struct {
	Mode            string `json:"mode"`
	Difficulty      string `json:"difficulty"`
	PlayerColor     string `json:"playerColor"`
	WhiteDifficulty string `json:"whiteDifficulty"`
	BlackDifficulty string `json:"blackDifficulty"`
	OpeningECO      string `json:"openingEco"`
}

func (s *Server) createGame(c *gin.Context) {
	req := createGameRequest{
		Difficulty:      "MEDIUM",
		PlayerColor:     "white",
		WhiteDifficulty: "MEDIUM",
		BlackDifficulty: "MEDIUM",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		state game.State
		err   error
	)
	switch req.Mode {
	case game.ModeHumanVsAI:
		var difficulty engine.Difficulty
		if difficulty, err = engine.ParseDifficulty(req.Difficulty); err == nil {
			state, err = s.manager.CreateHumanVsAI(difficulty, req.PlayerColor, req.OpeningECO)
		}
	case game.ModeAIvsAI:
		var white, black engine.Difficulty
		if white, err = engine.ParseDifficulty(req.WhiteDifficulty); err == nil {
			if black, err = engine.ParseDifficulty(req.BlackDifficulty); err == nil {
				state, err = s.manager.CreateAIvsAI(white, black, req.OpeningECO)
			}
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game mode"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "game": state})
}

func (s *Server) listGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": s.manager.List()})
}

func (s *Server) getGame(c *gin.Context) {
	state, err := s.manager.Get(c.Param("id"))
	if err != nil {
		s.gameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": state})
}

func (s *Server) deleteGame(c *gin.Context) {
	id := c.Param("id")
	if err := s.manager.Delete(id); err != nil {
		s.gameError(c, err)
		return
	}
	s.hub.broadcast(id, gin.H{"type": "deleted"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type makeMoveRequest struct {
	Move string `json:"move"` // UCI, e.g. "e2e4"
}

// moveResponse is the move endpoint's payload, also broadcast to the
// game's websocket clients.
type moveResponse struct {
	Success bool        `json:"success"`
	Game    game.State  `json:"game"`
	AIMove  *moveDetail `json:"aiMove"`
}

type moveDetail struct {
	UCI string `json:"uci"`
	SAN string `json:"san"`
}

func (s *Server) makeMove(c *gin.Context) {
	var req makeMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id := c.Param("id")

	resp, err := s.playHumanMove(id, req.Move)
	if err != nil {
		s.gameError(c, err)
		return
	}

	s.hub.broadcast(id, gin.H{"type": "move", "data": resp})
	c.JSON(http.StatusOK, resp)
}

// playHumanMove applies the human move and, when the engine is then on
// turn, its reply.
func (s *Server) playHumanMove(id, uci string) (moveResponse, error) {
	state, err := s.manager.HumanMove(id, uci)
	if err != nil {
		return moveResponse{}, err
	}
	resp := moveResponse{Success: true, Game: state}

	if s.manager.AITurn(id) {
		result, err := s.manager.Step(id)
		if err != nil {
			if errors.Is(err, game.ErrGameOver) {
				return resp, nil
			}
			return moveResponse{}, err
		}
		resp.Game = result.Game
		resp.AIMove = &moveDetail{UCI: result.UCI, SAN: result.SAN}
	}
	return resp, nil
}

func (s *Server) pauseGame(c *gin.Context) {
	id := c.Param("id")
	if err := s.manager.Pause(id); err != nil {
		s.gameError(c, err)
		return
	}
	s.hub.broadcast(id, gin.H{"type": "paused"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) resumeGame(c *gin.Context) {
	id := c.Param("id")
	if err := s.manager.Resume(id); err != nil {
		s.gameError(c, err)
		return
	}
	s.hub.broadcast(id, gin.H{"type": "resumed"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) legalMoves(c *gin.Context) {
	moves, err := s.manager.LegalMoves(c.Param("id"))
	if err != nil {
		s.gameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moves": moves})
}

func (s *Server) movesForSquare(c *gin.Context) {
	id, square := c.Param("id"), c.Param("square")

	moves, err := s.manager.MovesForSquare(id, square)
	if err != nil {
		s.gameError(c, err)
		return
	}
	piece, err := s.manager.PieceAt(id, square)
	if err != nil {
		s.gameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"square": square, "piece": piece, "moves": moves})
}

type analyzeRequest struct {
	FEN string `json:"fen"`
}

// analyze evaluates an arbitrary position at master strength.
func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fenOpt, err := chess.FEN(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid FEN string"})
		return
	}
	pos := chess.NewGame(fenOpt).Position()

	eng := engine.NewEngine(engine.Master)
	evaluation := eng.EvaluatePawns(pos)
	best := eng.SelectMove(pos)

	var bestUCI *string
	if best != nil {
		uci := best.String()
		bestUCI = &uci
	}
	log.Info().Str("fen", req.FEN).Float64("eval", evaluation).
		Int("nodes", eng.NodesEvaluated()).Msg("position analyzed")

	c.JSON(http.StatusOK, gin.H{
		"fen":        req.FEN,
		"evaluation": evaluation,
		"bestMove":   bestUCI,
		"depth":      engine.Master.Profile().Depth,
	})
}

func (s *Server) difficulties(c *gin.Context) {
	type entry struct {
		Name        string `json:"name"`
		Depth       int    `json:"depth"`
		Description string `json:"description"`
	}
	var out []entry
	for _, d := range engine.Difficulties() {
		out = append(out, entry{
			Name:        d.String(),
			Depth:       d.Profile().Depth,
			Description: d.Description(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"difficulties": out})
}

func (s *Server) stats(c *gin.Context) {
	out := make(map[string]storage.DifficultyStats)
	if s.store != nil {
		for _, d := range engine.Difficulties() {
			stats, err := s.store.Stats(d.String())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			out[d.String()] = stats
		}
	}
	c.JSON(http.StatusOK, gin.H{"stats": out})
}

func (s *Server) allOpenings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"openings": s.openings.All()})
}

func (s *Server) openingCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.openings.Categories()})
}

func (s *Server) popularOpenings(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"openings": s.openings.Popular(limit)})
}

func (s *Server) openingsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"openings": s.openings.ByCategory(c.Param("category"))})
}

func (s *Server) openingByECO(c *gin.Context) {
	o, ok := s.openings.ByECO(c.Param("eco"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "opening not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"opening": o})
}

func (s *Server) searchOpening(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name query"})
		return
	}
	o, ok := s.openings.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "opening not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"opening": o})
}

func (s *Server) allLessons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lessons": lesson.All()})
}

func (s *Server) lessonByID(c *gin.Context) {
	l, ok := lesson.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": l})
}

func (s *Server) lessonsByDifficulty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lessons": lesson.ByDifficulty(c.Param("level"))})
}

// gameError maps manager errors onto HTTP statuses.
func (s *Server) gameError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, game.ErrSessionNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
