package engine

import (
	"testing"

	"github.com/notnil/chess"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		t.Fatalf("invalid FEN %q: %v", fen, err)
	}
	return pos
}

func TestDifficultyProfiles(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		depth      int
		randProb   float64
	}{
		{Easy, 2, 0.30},
		{Medium, 4, 0.10},
		{Hard, 6, 0},
		{Master, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			profile := tt.difficulty.Profile()
			if profile.Depth != tt.depth {
				t.Errorf("depth = %d, want %d", profile.Depth, tt.depth)
			}
			if profile.RandomMoveProb != tt.randProb {
				t.Errorf("random move probability = %v, want %v", profile.RandomMoveProb, tt.randProb)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"MEDIUM", Medium, false},
		{"Hard", Hard, false},
		{"master", Master, false},
		{" easy ", Easy, false},
		{"grandmaster", Medium, true},
		{"", Medium, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyNames(t *testing.T) {
	want := []string{"EASY", "MEDIUM", "HARD", "MASTER"}
	for i, d := range Difficulties() {
		if d.String() != want[i] {
			t.Errorf("difficulty %d name = %q, want %q", i, d.String(), want[i])
		}
		if d.Description() == "" {
			t.Errorf("difficulty %v has no description", d)
		}
	}
}

func TestSelectMoveNoLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"checkmate", "4k3/4Q3/4K3/8/8/8/8/8 b - - 0 1"},
		{"stalemate", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			for _, d := range Difficulties() {
				eng := NewEngineSeeded(d, 42)
				if move := eng.SelectMove(pos); move != nil {
					t.Errorf("%v: SelectMove = %v, want nil", d, move)
				}
				if nodes := eng.NodesEvaluated(); nodes != 0 {
					t.Errorf("%v: NodesEvaluated = %d, want 0", d, nodes)
				}
			}
		})
	}
}

func TestSelectMoveReturnsLegalMove(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		difficulty Difficulty
	}{
		{"hard king and pawn", "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1", Hard},
		{"hard rook endgame", "8/8/4k3/8/8/8/4K3/7R w - - 0 1", Hard},
		{"master rook endgame", "8/8/4k3/8/8/8/4K3/7R w - - 0 1", Master},
		{"master black to move", "8/8/4k3/8/8/8/4K3/7r b - - 0 1", Master},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			eng := NewEngineSeeded(tt.difficulty, 1)
			move := eng.SelectMove(pos)
			if move == nil {
				t.Fatal("SelectMove returned nil for a position with legal moves")
			}
			legal := pos.ValidMoves()
			found := false
			for _, m := range legal {
				if m.String() == move.String() {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("SelectMove returned %v, not among the %d legal moves", move, len(legal))
			}
			if eng.NodesEvaluated() == 0 {
				t.Error("NodesEvaluated = 0 after a full search")
			}
		})
	}
}

func TestSelectMoveSingleLegalMove(t *testing.T) {
	// Black's king has exactly one square to go to.
	pos := mustPosition(t, "k7/7R/1K6/8/8/8/8/8 b - - 0 1")
	if n := len(pos.ValidMoves()); n != 1 {
		t.Fatalf("expected exactly 1 legal move, got %d", n)
	}
	for _, d := range Difficulties() {
		for seed := int64(1); seed <= 5; seed++ {
			eng := NewEngineSeeded(d, seed)
			move := eng.SelectMove(pos)
			if move == nil || move.String() != "a8b8" {
				t.Fatalf("%v seed %d: SelectMove = %v, want a8b8", d, seed, move)
			}
		}
	}
}

func TestRandomMovePath(t *testing.T) {
	pos := mustPosition(t, startFEN)
	legal := pos.ValidMoves()
	eng := NewEngineSeeded(Easy, 7)

	profile := Profile{Depth: 2, RandomMoveProb: 1.0}
	picked := make(map[string]bool)
	for i := 0; i < 200; i++ {
		move := eng.SelectMoveWithProfile(pos, profile)
		if move == nil {
			t.Fatal("random path returned nil")
		}
		found := false
		for _, m := range legal {
			if m.String() == move.String() {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("random path returned illegal move %v", move)
		}
		if eng.NodesEvaluated() != 0 {
			t.Fatalf("random path searched %d nodes, want 0", eng.NodesEvaluated())
		}
		picked[move.String()] = true
	}
	// Uniform selection over 20 moves should hit most of them in 200 draws.
	if len(picked) < 10 {
		t.Errorf("random path picked only %d distinct moves out of %d", len(picked), len(legal))
	}
}

func TestNodesEvaluatedGrowsWithDepth(t *testing.T) {
	pos := mustPosition(t, startFEN)
	eng := NewEngineSeeded(Medium, 3)

	if eng.SelectMoveWithProfile(pos, Profile{Depth: 2}) == nil {
		t.Fatal("depth 2 search returned nil")
	}
	nodesShallow := eng.NodesEvaluated()

	if eng.SelectMoveWithProfile(pos, Profile{Depth: 4}) == nil {
		t.Fatal("depth 4 search returned nil")
	}
	nodesDeep := eng.NodesEvaluated()

	if nodesShallow <= 0 {
		t.Fatalf("depth 2 evaluated %d nodes", nodesShallow)
	}
	if nodesDeep <= nodesShallow {
		t.Errorf("depth 4 evaluated %d nodes, depth 2 evaluated %d; want deeper > shallower",
			nodesDeep, nodesShallow)
	}
	t.Logf("nodes at depth 2: %d, depth 4: %d", nodesShallow, nodesDeep)
}

func TestSetDifficulty(t *testing.T) {
	eng := NewEngine(Easy)
	if eng.Difficulty() != Easy {
		t.Fatalf("Difficulty = %v, want Easy", eng.Difficulty())
	}
	eng.SetDifficulty(Master)
	if eng.Difficulty() != Master {
		t.Fatalf("Difficulty = %v, want Master", eng.Difficulty())
	}
	if got := eng.Difficulty().Profile().Depth; got != 8 {
		t.Fatalf("active profile depth = %d, want 8", got)
	}
}

func TestScoreToString(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{MateValue, "mate"},
		{-MateValue, "mated"},
		{150, "1.50"},
		{-42, "-0.42"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		if got := ScoreToString(tt.score); got != tt.want {
			t.Errorf("ScoreToString(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
