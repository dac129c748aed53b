// Package game manages live game sessions: humans against the engine
// and engine-versus-engine exhibitions.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"strings"
	"sync"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"chessmaster/internal/engine"
	"chessmaster/internal/opening"
	"chessmaster/internal/storage"
)

// Sentinel errors mapped to HTTP statuses by the server layer.
var (
	ErrSessionNotFound = errors.New("game not found")
	ErrNotActive       = errors.New("game is not active")
	ErrInvalidMove     = errors.New("invalid move format")
	ErrIllegalMove     = errors.New("illegal move")
	ErrNotHumanTurn    = errors.New("not the human player's turn")
	ErrGameOver        = errors.New("game is over")
	ErrWrongStatus     = errors.New("operation not allowed in current status")
)

// Manager owns every live session. Each session in turn owns its
// engine instances, so nothing here is process-global.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	openings *opening.Explorer
	store    *storage.Store // nil disables archiving
	rng      *mrand.Rand    // guarded by mu
}

// NewManager creates a session manager. The store may be nil, in which
// case completed games are not archived.
func NewManager(openings *opening.Explorer, store *storage.Store) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		openings: openings,
		store:    store,
		rng:      mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}
}

// CreateHumanVsAI starts a game between a human and one engine. The
// human plays playerColor ("white" or "black"); openingECO optionally
// seeds the start position from the opening database.
func (m *Manager) CreateHumanVsAI(difficulty engine.Difficulty, playerColor, openingECO string) (State, error) {
	isWhiteHuman := playerColor != "black"

	s, err := m.newSession(ModeHumanVsAI, openingECO)
	if err != nil {
		return State{}, err
	}
	s.isWhiteHuman = isWhiteHuman

	aiColor := chess.Black
	if !isWhiteHuman {
		aiColor = chess.White
	}
	eng := engine.NewEngine(difficulty)
	s.engines = map[chess.Color]*engine.Engine{aiColor: eng}
	if isWhiteHuman {
		s.blackDifficulty = difficulty
	} else {
		s.whiteDifficulty = difficulty
	}
	s.evaluation = eng.EvaluatePawns(s.game.Position())

	m.register(s)
	log.Info().Str("game", s.id).Str("difficulty", difficulty.String()).
		Str("humanColor", playerColor).Msg("human vs AI game created")
	return m.snapshot(s), nil
}

// CreateAIvsAI starts an engine-versus-engine game with an independent
// engine per side. Passing "random" as the opening picks one from the
// database weighted by popularity.
func (m *Manager) CreateAIvsAI(white, black engine.Difficulty, openingECO string) (State, error) {
	if openingECO == "random" {
		m.mu.Lock()
		openingECO = m.openings.RandomWeighted(m.rng).ECO
		m.mu.Unlock()
	}
	s, err := m.newSession(ModeAIvsAI, openingECO)
	if err != nil {
		return State{}, err
	}
	s.whiteDifficulty = white
	s.blackDifficulty = black
	s.engines = map[chess.Color]*engine.Engine{
		chess.White: engine.NewEngine(white),
		chess.Black: engine.NewEngine(black),
	}

	m.register(s)
	log.Info().Str("game", s.id).Str("white", white.String()).
		Str("black", black.String()).Msg("AI vs AI game created")
	return m.snapshot(s), nil
}

func (m *Manager) newSession(mode, openingECO string) (*Session, error) {
	g := chess.NewGame()
	var eco, name string
	if openingECO != "" {
		o, ok := m.openings.ByECO(openingECO)
		if !ok {
			return nil, fmt.Errorf("unknown opening %q", openingECO)
		}
		fenOpt, err := chess.FEN(o.FEN)
		if err != nil {
			return nil, fmt.Errorf("opening %s position: %w", o.ECO, err)
		}
		g = chess.NewGame(fenOpt)
		eco, name = o.ECO, o.Name
	}

	return &Session{
		id:          newID(),
		mode:        mode,
		status:      StatusActive,
		game:        g,
		openingECO:  eco,
		openingName: name,
		createdAt:   time.Now(),
	}, nil
}

func (m *Manager) register(s *Session) {
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
}

func (m *Manager) session(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) snapshot(s *Session) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// Get returns the current state of a session.
func (m *Manager) Get(id string) (State, error) {
	s, err := m.session(id)
	if err != nil {
		return State{}, err
	}
	return m.snapshot(s), nil
}

// List returns every session that is still in play.
func (m *Manager) List() []State {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	states := make([]State, 0, len(sessions))
	for _, s := range sessions {
		st := m.snapshot(s)
		if st.Status == StatusActive || st.Status == StatusPaused {
			states = append(states, st)
		}
	}
	return states
}

// Delete removes a session and its engines.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Pause suspends an active session.
func (m *Manager) Pause(id string) error {
	return m.setStatus(id, StatusActive, StatusPaused)
}

// Resume reactivates a paused session.
func (m *Manager) Resume(id string) error {
	return m.setStatus(id, StatusPaused, StatusActive)
}

func (m *Manager) setStatus(id, from, to string) error {
	s, err := m.session(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != from {
		return fmt.Errorf("%w: %s", ErrWrongStatus, s.status)
	}
	s.status = to
	return nil
}

// HumanMove validates and applies a human move given in UCI notation.
// It does not compute the AI reply; callers invoke Step when the AI is
// on turn afterwards.
func (m *Manager) HumanMove(id, uci string) (State, error) {
	s, err := m.session(id)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return State{}, ErrNotActive
	}
	humanColor := chess.Black
	if s.isWhiteHuman {
		humanColor = chess.White
	}
	if s.mode != ModeHumanVsAI || s.game.Position().Turn() != humanColor {
		return State{}, ErrNotHumanTurn
	}
	if len(uci) < 4 || len(uci) > 5 {
		return State{}, ErrInvalidMove
	}
	move := s.findLegalMove(uci)
	if move == nil {
		return State{}, ErrIllegalMove
	}

	if _, err := s.applyMove(move); err != nil {
		return State{}, err
	}
	m.noteOpening(s)
	m.maybeArchive(s)
	return s.state(), nil
}

// AITurn reports whether an engine is on move in an active session.
func (m *Manager) AITurn(id string) bool {
	s, err := m.session(id)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusActive && s.aiOnTurn() != nil
}

// Step makes the engine on turn select and play one move. It returns
// ErrGameOver when the game has already ended and ErrNotActive when
// the session is paused.
func (m *Manager) Step(id string) (MoveResult, error) {
	s, err := m.session(id)
	if err != nil {
		return MoveResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusCompleted || s.game.Outcome() != chess.NoOutcome {
		s.status = StatusCompleted
		return MoveResult{}, ErrGameOver
	}
	if s.status != StatusActive {
		return MoveResult{}, ErrNotActive
	}
	eng := s.aiOnTurn()
	if eng == nil {
		return MoveResult{}, ErrNotHumanTurn
	}

	color := s.game.Position().Turn()
	positions := s.game.Positions()
	eng.SetRootHistory(positions[:len(positions)-1])

	move := eng.SelectMove(s.game.Position())
	if move == nil {
		s.status = StatusCompleted
		return MoveResult{}, ErrGameOver
	}

	san, err := s.applyMove(move)
	if err != nil {
		return MoveResult{}, err
	}
	s.evaluation = eng.EvaluatePawns(s.game.Position())
	m.noteOpening(s)
	m.maybeArchive(s)

	return MoveResult{
		UCI:        move.String(),
		SAN:        san,
		Color:      colorName(color),
		Evaluation: s.evaluation,
		Nodes:      eng.NodesEvaluated(),
		Game:       s.state(),
	}, nil
}

// LegalMoves returns every legal move in UCI notation.
func (m *Manager) LegalMoves(id string) ([]string, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	legal := s.game.ValidMoves()
	moves := make([]string, len(legal))
	for i, mv := range legal {
		moves[i] = mv.String()
	}
	return moves, nil
}

// MovesForSquare returns the legal moves of the piece on one square.
func (m *Manager) MovesForSquare(id, square string) ([]string, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	sq, ok := parseSquare(square)
	if !ok {
		return nil, fmt.Errorf("invalid square %q", square)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var moves []string
	for _, mv := range s.game.ValidMoves() {
		if mv.S1() == sq {
			moves = append(moves, mv.String())
		}
	}
	return moves, nil
}

// PieceAt describes the piece on a square, or nil for an empty square.
func (m *Manager) PieceAt(id, square string) (*PieceInfo, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	sq, ok := parseSquare(square)
	if !ok {
		return nil, fmt.Errorf("invalid square %q", square)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	piece := s.game.Position().Board().Piece(sq)
	if piece == chess.NoPiece {
		return nil, nil
	}
	symbol := pieceTypeLetters[piece.Type()]
	if piece.Color() == chess.White {
		symbol = strings.ToUpper(symbol)
	}
	return &PieceInfo{
		Type:   pieceTypeNames[piece.Type()],
		Color:  colorName(piece.Color()),
		Symbol: symbol,
	}, nil
}

// noteOpening records the opening once the game transposes into a
// known line. Caller holds s.mu.
func (m *Manager) noteOpening(s *Session) {
	if s.openingECO != "" {
		return
	}
	matches := m.openings.ForPosition(s.game.Position().String())
	if len(matches) > 0 {
		s.openingECO, s.openingName = matches[0].ECO, matches[0].Name
	}
}

// maybeArchive records a just-completed game. Caller holds s.mu.
func (m *Manager) maybeArchive(s *Session) {
	if s.status != StatusCompleted || m.store == nil {
		return
	}

	rec := storage.GameRecord{
		ID:          s.id,
		Mode:        s.mode,
		Winner:      winnerName(s.game.Outcome()),
		Method:      s.game.Method().String(),
		Moves:       append([]string(nil), s.moveHistory...),
		CreatedAt:   s.createdAt,
		CompletedAt: time.Now(),
	}
	if s.mode == ModeAIvsAI || !s.isWhiteHuman {
		rec.WhiteDifficulty = s.whiteDifficulty.String()
	}
	if s.mode == ModeAIvsAI || s.isWhiteHuman {
		rec.BlackDifficulty = s.blackDifficulty.String()
	}

	if err := m.store.SaveGame(rec); err != nil {
		log.Error().Err(err).Str("game", s.id).Msg("failed to archive game")
		return
	}
	log.Info().Str("game", s.id).Str("winner", rec.Winner).
		Str("method", rec.Method).Int("moves", len(rec.Moves)).Msg("game archived")
}

func winnerName(outcome chess.Outcome) string {
	switch outcome {
	case chess.WhiteWon:
		return storage.WinnerWhite
	case chess.BlackWon:
		return storage.WinnerBlack
	default:
		return storage.WinnerDraw
	}
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
