package game

import (
	"sync"
	"time"

	"github.com/notnil/chess"

	"chessmaster/internal/engine"
)

// Game modes.
const (
	ModeHumanVsAI = "human_vs_ai"
	ModeAIvsAI    = "ai_vs_ai"
)

// Session statuses.
const (
	StatusWaiting   = "waiting"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// Session is one live game. It owns the engine instance for each AI
// side; engines are never shared between sessions, so concurrent games
// search independently.
type Session struct {
	mu sync.Mutex

	id     string
	mode   string
	status string
	game   *chess.Game

	isWhiteHuman    bool
	whiteDifficulty engine.Difficulty
	blackDifficulty engine.Difficulty
	engines         map[chess.Color]*engine.Engine

	moveHistory []string // SAN
	evaluation  float64  // pawns, positive favors White
	openingECO  string
	openingName string
	createdAt   time.Time
}

// OpeningRef names the opening a game was seeded from.
type OpeningRef struct {
	ECO  string `json:"eco,omitempty"`
	Name string `json:"name,omitempty"`
}

// State is the JSON snapshot of a session sent to clients.
type State struct {
	ID              string     `json:"id"`
	Mode            string     `json:"mode"`
	Status          string     `json:"status"`
	FEN             string     `json:"fen"`
	Turn            string     `json:"turn"`
	WhiteDifficulty string     `json:"whiteDifficulty,omitempty"`
	BlackDifficulty string     `json:"blackDifficulty,omitempty"`
	MoveHistory     []string   `json:"moveHistory"`
	MoveCount       int        `json:"moveCount"`
	Evaluation      float64    `json:"evaluation"`
	Opening         OpeningRef `json:"opening"`
	IsCheck         bool       `json:"isCheck"`
	IsCheckmate     bool       `json:"isCheckmate"`
	IsStalemate     bool       `json:"isStalemate"`
	IsDraw          bool       `json:"isDraw"`
	LegalMoves      []string   `json:"legalMoves"`
	IsWhiteHuman    bool       `json:"isWhiteHuman"`
	Result          string     `json:"result,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// PieceInfo describes a piece on a square.
type PieceInfo struct {
	Type   string `json:"type"`
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

// MoveResult reports one applied move together with the search summary
// and the resulting game state.
type MoveResult struct {
	UCI        string  `json:"uci"`
	SAN        string  `json:"san"`
	Color      string  `json:"color"`
	Evaluation float64 `json:"evaluation"`
	Nodes      int     `json:"nodesEvaluated"`
	Game       State   `json:"game"`
}

// state builds the snapshot DTO. Caller holds s.mu.
func (s *Session) state() State {
	pos := s.game.Position()
	outcome := s.game.Outcome()
	method := s.game.Method()

	legal := pos.ValidMoves()
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}

	st := State{
		ID:           s.id,
		Mode:         s.mode,
		Status:       s.status,
		FEN:          pos.String(),
		Turn:         colorName(pos.Turn()),
		MoveHistory:  append([]string(nil), s.moveHistory...),
		MoveCount:    len(s.moveHistory),
		Evaluation:   s.evaluation,
		Opening:      OpeningRef{ECO: s.openingECO, Name: s.openingName},
		IsCheck:      s.inCheck(),
		IsCheckmate:  method == chess.Checkmate,
		IsStalemate:  method == chess.Stalemate,
		IsDraw:       outcome == chess.Draw,
		LegalMoves:   moves,
		IsWhiteHuman: s.isWhiteHuman,
		CreatedAt:    s.createdAt,
	}
	if outcome != chess.NoOutcome {
		st.Result = outcome.String()
	}
	if s.mode == ModeAIvsAI || !s.isWhiteHuman {
		st.WhiteDifficulty = s.whiteDifficulty.String()
	}
	if s.mode == ModeAIvsAI || s.isWhiteHuman {
		st.BlackDifficulty = s.blackDifficulty.String()
	}
	return st
}

// inCheck reports whether the side to move is in check. The rules
// engine tags each applied move that gives check, so the last move in
// the history carries the answer.
func (s *Session) inCheck() bool {
	if s.game.Position().Status() == chess.Checkmate {
		return true
	}
	moves := s.game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// aiOnTurn returns the engine that should move now, or nil when it is
// a human's turn or the game is over. Caller holds s.mu.
func (s *Session) aiOnTurn() *engine.Engine {
	if s.game.Outcome() != chess.NoOutcome {
		return nil
	}
	return s.engines[s.game.Position().Turn()]
}

// applyMove plays one move on the session's game, recording its SAN
// before application. Caller holds s.mu and has validated legality.
func (s *Session) applyMove(move *chess.Move) (san string, err error) {
	san = chess.AlgebraicNotation{}.Encode(s.game.Position(), move)
	if err := s.game.Move(move); err != nil {
		return "", err
	}
	s.moveHistory = append(s.moveHistory, san)
	if s.game.Outcome() != chess.NoOutcome {
		s.status = StatusCompleted
	}
	return san, nil
}

// findLegalMove resolves a UCI string against the current legal moves.
func (s *Session) findLegalMove(uci string) *chess.Move {
	for _, m := range s.game.ValidMoves() {
		if m.String() == uci {
			return m
		}
	}
	return nil
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

var pieceTypeNames = map[chess.PieceType]string{
	chess.King:   "king",
	chess.Queen:  "queen",
	chess.Rook:   "rook",
	chess.Bishop: "bishop",
	chess.Knight: "knight",
	chess.Pawn:   "pawn",
}

var pieceTypeLetters = map[chess.PieceType]string{
	chess.King:   "k",
	chess.Queen:  "q",
	chess.Rook:   "r",
	chess.Bishop: "b",
	chess.Knight: "n",
	chess.Pawn:   "p",
}

// parseSquare converts algebraic square names ("e4") to the rules
// engine's square index.
func parseSquare(name string) (chess.Square, bool) {
	if len(name) != 2 {
		return 0, false
	}
	file := name[0] - 'a'
	rank := name[1] - '1'
	if file > 7 || rank > 7 {
		return 0, false
	}
	return chess.Square(int(rank)*8 + int(file)), true
}
