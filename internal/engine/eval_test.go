package engine

import (
	"testing"

	"github.com/notnil/chess"
)

func TestEvaluateCheckmate(t *testing.T) {
	eng := NewEngineSeeded(Hard, 1)

	// Black is checkmated, so the evaluation is the full king value for White.
	pos := mustPosition(t, "4k3/4Q3/4K3/8/8/8/8/8 b - - 0 1")
	if got := eng.Evaluate(pos); got != MateValue {
		t.Errorf("Evaluate = %d, want %d", got, MateValue)
	}
	if got := eng.EvaluatePawns(pos); got != 200.0 {
		t.Errorf("EvaluatePawns = %v, want 200.0", got)
	}

	// Mirrored: White is checkmated.
	pos = mustPosition(t, "8/8/8/8/8/4k3/4q3/4K3 w - - 0 1")
	if got := eng.Evaluate(pos); got != -MateValue {
		t.Errorf("Evaluate = %d, want %d", got, -MateValue)
	}
}

func TestEvaluateDrawsAreZero(t *testing.T) {
	eng := NewEngineSeeded(Hard, 1)
	tests := []struct {
		name string
		fen  string
	}{
		{"stalemate", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"},
		{"bare kings", "8/8/4k3/8/8/4K3/8/8 w - - 0 1"},
		{"king and bishop", "8/8/4k3/8/8/2B1K3/8/8 w - - 0 1"},
		{"king and knight", "8/8/4k3/8/8/2N1K3/8/8 b - - 0 1"},
		{"fifty move rule", "8/8/4k3/8/8/8/4K3/7R w - - 100 80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := eng.Evaluate(pos); got != 0 {
				t.Errorf("Evaluate = %d, want 0", got)
			}
		})
	}
}

func TestEvaluateThreefoldRepetition(t *testing.T) {
	eng := NewEngineSeeded(Hard, 1)
	pos := mustPosition(t, "8/8/4k3/8/8/8/4K3/7R w - - 0 40")

	fresh := eng.Evaluate(pos)
	if fresh == 0 {
		t.Fatal("rook-up position evaluates to 0; cannot observe the repetition rule")
	}

	// The position occurred twice before; the current occurrence is the third.
	eng.SetRootHistory([]*chess.Position{pos, pos})
	if got := eng.Evaluate(pos); got != 0 {
		t.Errorf("Evaluate after two prior occurrences = %d, want 0", got)
	}

	// One prior occurrence is not yet a draw.
	eng.SetRootHistory([]*chess.Position{pos})
	if got := eng.Evaluate(pos); got != fresh {
		t.Errorf("Evaluate after one prior occurrence = %d, want %d", got, fresh)
	}

	eng.SetRootHistory(nil)
	if got := eng.Evaluate(pos); got != fresh {
		t.Errorf("Evaluate after clearing history = %d, want %d", got, fresh)
	}
}

func TestEvaluateStartPositionBalanced(t *testing.T) {
	eng := NewEngineSeeded(Hard, 1)
	pos := mustPosition(t, startFEN)

	// Material and position cancel out exactly; mobility and king safety
	// are symmetric as well.
	if got := materialScore(pos.Board()); got != 0 {
		t.Errorf("materialScore = %d, want 0", got)
	}
	if got := eng.Evaluate(pos); got != 0 {
		t.Errorf("Evaluate = %d, want 0", got)
	}
}

func TestMaterialScoreMirrorNegates(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		mirrorFEN string
	}{
		{
			"extra pawn",
			"4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			"4k3/8/8/4p3/8/8/8/4K3 w - - 0 1",
		},
		{
			"rook and knight",
			"4k3/8/8/8/8/5N2/8/R3K3 w - - 0 1",
			"r3k3/8/5n2/8/8/8/8/4K3 w - - 0 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := materialScore(mustPosition(t, tt.fen).Board())
			mirror := materialScore(mustPosition(t, tt.mirrorFEN).Board())
			if mirror != -score {
				t.Errorf("mirror scores %d, original scores %d; want negation", mirror, score)
			}
		})
	}
}

func TestKingSafety(t *testing.T) {
	// White's king is fully shielded, Black's is wide open: three files
	// without a black pawn around the black king.
	pos := mustPosition(t, "6k1/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	if got := kingSafety(pos.Board()); got != 3*openFilePenalty {
		t.Errorf("kingSafety = %d, want %d", got, 3*openFilePenalty)
	}

	// Symmetric shields cancel.
	pos = mustPosition(t, "6k1/5ppp/8/8/8/8/5PPP/6K1 w - - 0 1")
	if got := kingSafety(pos.Board()); got != 0 {
		t.Errorf("kingSafety = %d, want 0", got)
	}
}

func TestIsEndgame(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"start position", startFEN, false},
		{"no queens", "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1", true},
		{"bare kings", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},
		{"reduced with queens", "q3k1n1/r7/8/8/8/8/R7/Q3K1N1 w - - 0 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEndgame(mustPosition(t, tt.fen).Board()); got != tt.want {
				t.Errorf("isEndgame = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},
		{"king and bishop", "8/8/4k3/8/8/2B1K3/8/8 w - - 0 1", true},
		{"king and knight", "8/8/4k3/8/8/2N1K3/8/8 w - - 0 1", true},
		{"two knights", "8/8/4k3/8/8/1NN1K3/8/8 w - - 0 1", false},
		{"same shade bishops", "8/8/2b1k3/8/8/4K3/2B5/8 w - - 0 1", true},
		{"opposite shade bishops", "8/8/2b1k3/8/8/2B1K3/8/8 w - - 0 1", false},
		{"pawn present", "8/8/4k3/8/8/4K3/4P3/8 w - - 0 1", false},
		{"rook present", "8/8/4k3/8/8/8/4K3/7R w - - 0 1", false},
		{"queen present", "8/8/4k3/8/8/8/4K3/7Q w - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insufficientMaterial(mustPosition(t, tt.fen).Board()); got != tt.want {
				t.Errorf("insufficientMaterial = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateDoesNotMutatePosition(t *testing.T) {
	eng := NewEngineSeeded(Hard, 1)
	pos := mustPosition(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	before := pos.String()
	eng.Evaluate(pos)
	if after := pos.String(); after != before {
		t.Errorf("Evaluate mutated the position: %q -> %q", before, after)
	}
}

func TestOpponentMoves(t *testing.T) {
	pos := mustPosition(t, startFEN)
	if got := len(opponentMoves(pos)); got != 20 {
		t.Errorf("opponent move count = %d, want 20", got)
	}
	// Flipping twice must agree with the direct count.
	if own, opp := len(pos.ValidMoves()), len(opponentMoves(pos)); own != opp {
		t.Errorf("start position mobility should be symmetric: own %d, opponent %d", own, opp)
	}
}

func TestHalfMoveClock(t *testing.T) {
	pos := mustPosition(t, "8/8/4k3/8/8/8/4K3/7R w - - 37 60")
	if got := halfMoveClock(pos); got != 37 {
		t.Errorf("halfMoveClock = %d, want 37", got)
	}
}

func TestFingerprint(t *testing.T) {
	a := mustPosition(t, "8/8/4k3/8/8/8/4K3/7R w - - 12 40")
	b := mustPosition(t, "8/8/4k3/8/8/8/4K3/7R w - - 99 75")
	if fingerprint(a) != fingerprint(b) {
		t.Error("fingerprints differ for positions equal up to move counters")
	}
	c := mustPosition(t, "8/8/4k3/8/8/8/4K3/7R b - - 12 40")
	if fingerprint(a) == fingerprint(c) {
		t.Error("fingerprints match for positions with different side to move")
	}
}
