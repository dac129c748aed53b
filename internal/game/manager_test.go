package game

import (
	"errors"
	"testing"
	"time"

	"github.com/notnil/chess"

	"chessmaster/internal/engine"
	"chessmaster/internal/opening"
	"chessmaster/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(opening.NewExplorer(), nil)
}

// registerSession installs a hand-built session, for scenarios the
// public constructors cannot reach (mid-game positions).
func registerSession(t *testing.T, m *Manager, fen string, s *Session) *Session {
	t.Helper()
	fenOpt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	s.game = chess.NewGame(fenOpt)
	if s.id == "" {
		s.id = newID()
	}
	if s.status == "" {
		s.status = StatusActive
	}
	s.createdAt = time.Now()
	m.register(s)
	return s
}

func TestCreateHumanVsAI(t *testing.T) {
	m := newTestManager(t)

	st, err := m.CreateHumanVsAI(engine.Medium, "white", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if st.Mode != ModeHumanVsAI || st.Status != StatusActive {
		t.Errorf("mode=%q status=%q", st.Mode, st.Status)
	}
	if !st.IsWhiteHuman {
		t.Error("expected white to be human")
	}
	if st.BlackDifficulty != "MEDIUM" {
		t.Errorf("black difficulty = %q, want MEDIUM", st.BlackDifficulty)
	}
	if st.Turn != "white" {
		t.Errorf("turn = %q, want white", st.Turn)
	}
	if len(st.LegalMoves) != 20 {
		t.Errorf("start position has %d legal moves, want 20", len(st.LegalMoves))
	}
}

func TestCreateWithOpening(t *testing.T) {
	m := newTestManager(t)

	st, err := m.CreateHumanVsAI(engine.Easy, "white", "C60")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if st.Opening.ECO != "C60" || st.Opening.Name != "Ruy Lopez" {
		t.Errorf("opening = %+v", st.Opening)
	}
	ruy, _ := opening.NewExplorer().ByECO("C60")
	if st.FEN != ruy.FEN {
		t.Errorf("game FEN = %q, want opening FEN", st.FEN)
	}

	if _, err := m.CreateHumanVsAI(engine.Easy, "white", "Z99"); err == nil {
		t.Error("unknown opening should fail")
	}
}

func TestCreateAIvsAI(t *testing.T) {
	m := newTestManager(t)

	st, err := m.CreateAIvsAI(engine.Easy, engine.Hard, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if st.Mode != ModeAIvsAI {
		t.Errorf("mode = %q", st.Mode)
	}
	if st.WhiteDifficulty != "EASY" || st.BlackDifficulty != "HARD" {
		t.Errorf("difficulties = %q/%q", st.WhiteDifficulty, st.BlackDifficulty)
	}
	if st.IsWhiteHuman {
		t.Error("no human in an AI vs AI game")
	}
}

func TestHumanMove(t *testing.T) {
	m := newTestManager(t)
	st, _ := m.CreateHumanVsAI(engine.Easy, "white", "")

	got, err := m.HumanMove(st.ID, "e2e4")
	if err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}
	if got.Turn != "black" {
		t.Errorf("turn after e2e4 = %q, want black", got.Turn)
	}
	if len(got.MoveHistory) != 1 || got.MoveHistory[0] != "e4" {
		t.Errorf("history = %v, want [e4]", got.MoveHistory)
	}

	if _, err := m.HumanMove(st.ID, "e7e5"); !errors.Is(err, ErrNotHumanTurn) {
		t.Errorf("moving for the AI gave %v, want ErrNotHumanTurn", err)
	}
}

func TestHumanMoveValidation(t *testing.T) {
	m := newTestManager(t)
	st, _ := m.CreateHumanVsAI(engine.Easy, "white", "")

	if _, err := m.HumanMove(st.ID, "e2e5"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("illegal move gave %v, want ErrIllegalMove", err)
	}
	if _, err := m.HumanMove(st.ID, "xyz"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("malformed move gave %v, want ErrInvalidMove", err)
	}
	if _, err := m.HumanMove("missing", "e2e4"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("unknown game gave %v, want ErrSessionNotFound", err)
	}
}

func TestPauseResume(t *testing.T) {
	m := newTestManager(t)
	st, _ := m.CreateHumanVsAI(engine.Easy, "white", "")

	if err := m.Pause(st.ID); err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if _, err := m.HumanMove(st.ID, "e2e4"); !errors.Is(err, ErrNotActive) {
		t.Errorf("move while paused gave %v, want ErrNotActive", err)
	}
	if err := m.Pause(st.ID); err == nil {
		t.Error("pausing a paused game should fail")
	}
	if err := m.Resume(st.ID); err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if _, err := m.HumanMove(st.ID, "e2e4"); err != nil {
		t.Errorf("move after resume failed: %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	m := newTestManager(t)
	a, _ := m.CreateHumanVsAI(engine.Easy, "white", "")
	b, _ := m.CreateAIvsAI(engine.Easy, engine.Easy, "")

	if got := len(m.List()); got != 2 {
		t.Errorf("listed %d games, want 2", got)
	}
	if err := m.Delete(a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := len(m.List()); got != 1 {
		t.Errorf("listed %d games after delete, want 1", got)
	}
	if _, err := m.Get(a.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("deleted game gave %v, want ErrSessionNotFound", err)
	}
	if err := m.Delete(b.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestSquareQueries(t *testing.T) {
	m := newTestManager(t)
	st, _ := m.CreateHumanVsAI(engine.Easy, "white", "")

	moves, err := m.MovesForSquare(st.ID, "e2")
	if err != nil {
		t.Fatalf("MovesForSquare failed: %v", err)
	}
	if len(moves) != 2 {
		t.Errorf("e2 pawn has %d moves, want 2 (e2e3, e2e4)", len(moves))
	}

	piece, err := m.PieceAt(st.ID, "g1")
	if err != nil {
		t.Fatalf("PieceAt failed: %v", err)
	}
	if piece == nil || piece.Type != "knight" || piece.Color != "white" || piece.Symbol != "N" {
		t.Errorf("piece at g1 = %+v", piece)
	}

	empty, err := m.PieceAt(st.ID, "e5")
	if err != nil {
		t.Fatalf("PieceAt failed: %v", err)
	}
	if empty != nil {
		t.Errorf("e5 should be empty, got %+v", empty)
	}

	if _, err := m.PieceAt(st.ID, "z9"); err == nil {
		t.Error("invalid square should fail")
	}
}

func TestStepAIvsAI(t *testing.T) {
	m := newTestManager(t)
	st, _ := m.CreateAIvsAI(engine.Easy, engine.Easy, "")

	legalBefore, _ := m.LegalMoves(st.ID)

	first, err := m.Step(st.ID)
	if err != nil {
		t.Fatalf("first step failed: %v", err)
	}
	if first.Color != "white" {
		t.Errorf("first move color = %q, want white", first.Color)
	}
	found := false
	for _, uci := range legalBefore {
		if uci == first.UCI {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("move %s not among the legal moves", first.UCI)
	}

	second, err := m.Step(st.ID)
	if err != nil {
		t.Fatalf("second step failed: %v", err)
	}
	if second.Color != "black" {
		t.Errorf("second move color = %q, want black", second.Color)
	}
	if second.Game.MoveCount != 2 {
		t.Errorf("move count = %d, want 2", second.Game.MoveCount)
	}
}

func TestStepSingleLegalMove(t *testing.T) {
	m := newTestManager(t)
	// White king on a1 is checked by the undefended queen on b2; the
	// only legal move is to take it.
	s := registerSession(t, m, "k7/8/8/8/8/8/1q6/K7 w - - 0 1", &Session{
		mode:    ModeAIvsAI,
		engines: map[chess.Color]*engine.Engine{chess.White: engine.NewEngine(engine.Easy)},
	})

	result, err := m.Step(s.id)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if result.UCI != "a1b2" {
		t.Errorf("move = %s, want the forced a1b2", result.UCI)
	}
}

func TestCompletionArchivesGame(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m := NewManager(opening.NewExplorer(), store)
	// White (human) mates in one with Qg7.
	s := registerSession(t, m, "7k/5Q2/5K2/8/8/8/8/8 w - - 0 1", &Session{
		mode:            ModeHumanVsAI,
		isWhiteHuman:    true,
		blackDifficulty: engine.Medium,
	})

	st, err := m.HumanMove(s.id, "f7g7")
	if err != nil {
		t.Fatalf("mating move failed: %v", err)
	}
	if st.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", st.Status)
	}
	if !st.IsCheckmate {
		t.Error("expected checkmate")
	}
	if st.Result != "1-0" {
		t.Errorf("result = %q, want 1-0", st.Result)
	}

	rec, found, err := store.Game(s.id)
	if err != nil || !found {
		t.Fatalf("archived game not found: found=%v err=%v", found, err)
	}
	if rec.Winner != storage.WinnerWhite {
		t.Errorf("archived winner = %q, want white", rec.Winner)
	}
	if rec.BlackDifficulty != "MEDIUM" {
		t.Errorf("archived black difficulty = %q, want MEDIUM", rec.BlackDifficulty)
	}

	stats, err := store.Stats("MEDIUM")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Games != 1 || stats.WhiteWins != 1 {
		t.Errorf("MEDIUM stats = %+v", stats)
	}
}

func TestStepAfterGameOver(t *testing.T) {
	m := newTestManager(t)
	// Stalemate: black to move has no legal moves.
	s := registerSession(t, m, "k7/8/1Q6/8/8/8/8/7K b - - 0 1", &Session{
		mode: ModeAIvsAI,
		engines: map[chess.Color]*engine.Engine{
			chess.White: engine.NewEngine(engine.Easy),
			chess.Black: engine.NewEngine(engine.Easy),
		},
	})

	if _, err := m.Step(s.id); !errors.Is(err, ErrGameOver) {
		t.Errorf("step on finished game gave %v, want ErrGameOver", err)
	}
	if st, _ := m.Get(s.id); st.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", st.Status)
	}
}

func TestOpeningDetection(t *testing.T) {
	m := newTestManager(t)
	st, err := m.CreateHumanVsAI(engine.Medium, "white", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if st.Opening.ECO != "" {
		t.Fatalf("fresh game already has opening %q", st.Opening.ECO)
	}

	// 1.Nf3 transposes into the Réti.
	st, err = m.HumanMove(st.ID, "g1f3")
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if st.Opening.ECO != "A04" || st.Opening.Name != "Réti Opening" {
		t.Errorf("opening = %+v, want A04 Réti Opening", st.Opening)
	}
}

func TestCreateAIvsAIRandomOpening(t *testing.T) {
	m := newTestManager(t)
	st, err := m.CreateAIvsAI(engine.Easy, engine.Easy, "random")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if st.Opening.ECO == "" || st.Opening.Name == "" {
		t.Errorf("random opening not picked: %+v", st.Opening)
	}
}
