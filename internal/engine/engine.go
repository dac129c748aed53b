package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/notnil/chess"
)

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // shallow search, frequent random moves
	Medium                   // medium search, occasional random moves
	Hard                     // deep search, deterministic
	Master                   // deepest search, deterministic
)

// Profile pairs a search depth with the probability of skipping the
// search and playing a random legal move. Profiles are immutable;
// changing difficulty swaps the whole profile.
type Profile struct {
	Depth          int
	RandomMoveProb float64
}

// profiles is the closed set of difficulty profiles.
var profiles = [...]Profile{
	Easy:   {Depth: 2, RandomMoveProb: 0.30},
	Medium: {Depth: 4, RandomMoveProb: 0.10},
	Hard:   {Depth: 6, RandomMoveProb: 0},
	Master: {Depth: 8, RandomMoveProb: 0},
}

var difficultyNames = [...]string{"EASY", "MEDIUM", "HARD", "MASTER"}

var difficultyDescriptions = [...]string{
	"Perfect for beginners, makes occasional mistakes",
	"Balanced gameplay, suitable for casual players",
	"Strong tactical play, challenges experienced players",
	"Near-optimal play with deep positional understanding",
}

// Profile returns the search profile for the difficulty.
func (d Difficulty) Profile() Profile {
	if d < Easy || d > Master {
		return profiles[Medium]
	}
	return profiles[d]
}

func (d Difficulty) String() string {
	if d < Easy || d > Master {
		return difficultyNames[Medium]
	}
	return difficultyNames[d]
}

// Description returns a one-line description of the difficulty.
func (d Difficulty) Description() string {
	if d < Easy || d > Master {
		return difficultyDescriptions[Medium]
	}
	return difficultyDescriptions[d]
}

// Difficulties lists every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Master}
}

// ParseDifficulty maps a name such as "easy" or "MASTER" to its
// difficulty. The match is case-insensitive.
func ParseDifficulty(name string) (Difficulty, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for d, n := range difficultyNames {
		if n == upper {
			return Difficulty(d), nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", name)
}

// Engine is the chess AI. It searches synchronously on the calling
// goroutine and keeps no state between searches beyond the node counter
// of the last one, so each game side should own its own instance.
type Engine struct {
	difficulty Difficulty
	rng        *rand.Rand
	history    map[string]int

	nodes   int
	hitRate float64
}

// NewEngine creates an engine at the given difficulty, with randomness
// seeded from the clock.
func NewEngine(d Difficulty) *Engine {
	return NewEngineSeeded(d, time.Now().UnixNano())
}

// NewEngineSeeded creates an engine with a deterministic random source,
// for reproducible games and tests.
func NewEngineSeeded(d Difficulty, seed int64) *Engine {
	return &Engine{
		difficulty: d,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// SetDifficulty replaces the engine's active difficulty profile.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the active difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// SetRootHistory registers the positions that preceded the one about to
// be searched, so lines repeating an earlier position are scored as
// draws. Call it before SelectMove; a nil slice clears the history.
func (e *Engine) SetRootHistory(positions []*chess.Position) {
	if len(positions) == 0 {
		e.history = nil
		return
	}
	history := make(map[string]int, len(positions))
	for _, pos := range positions {
		history[fingerprint(pos)]++
	}
	e.history = history
}

// NodesEvaluated returns the number of nodes visited by the last search.
func (e *Engine) NodesEvaluated() int {
	return e.nodes
}

// CacheHitRate returns the transposition cache hit rate of the last
// search as a percentage.
func (e *Engine) CacheHitRate() float64 {
	return e.hitRate
}

// SelectMove finds the best move for the side to move using the active
// difficulty profile. It returns nil when the position has no legal
// moves.
func (e *Engine) SelectMove(pos *chess.Position) *chess.Move {
	return e.SelectMoveWithProfile(pos, e.difficulty.Profile())
}

// SelectMoveWithProfile finds the best move under a specific profile.
// Depending on the profile's random-move probability the search may be
// skipped entirely in favor of a uniformly random legal move.
func (e *Engine) SelectMoveWithProfile(pos *chess.Position, profile Profile) *chess.Move {
	e.nodes = 0
	e.hitRate = 0

	legal := pos.ValidMoves()
	if len(legal) == 0 {
		return nil
	}

	if profile.RandomMoveProb > 0 && e.rng.Float64() < profile.RandomMoveProb {
		return legal[e.rng.Intn(len(legal))]
	}

	ctx := newSearchContext(e.history)
	ctx.enter(fingerprint(pos))

	alpha, beta := -infinity, infinity
	var best *chess.Move
	bestValue := infinity
	if pos.Turn() == chess.White {
		bestValue = -infinity
	}

	for _, move := range orderMoves(pos, legal) {
		child := pos.Update(move)
		value := e.minimax(ctx, child, profile.Depth-1, alpha, beta, child.Turn() != chess.White)
		if pos.Turn() == chess.White {
			if value > bestValue {
				bestValue = value
				best = move
			}
			alpha = max(alpha, value)
		} else {
			if value < bestValue {
				bestValue = value
				best = move
			}
			beta = min(beta, value)
		}
	}

	e.nodes = ctx.nodes
	e.hitRate = ctx.cache.hitRate()
	return best
}

// Evaluate returns the static evaluation of the position in centipawns,
// positive favoring White.
func (e *Engine) Evaluate(pos *chess.Position) int {
	ctx := newSearchContext(e.history)
	return e.evaluate(ctx, pos, fingerprint(pos))
}

// EvaluatePawns returns the evaluation in pawn units, the scale shown
// to players.
func (e *Engine) EvaluatePawns(pos *chess.Position) float64 {
	return float64(e.Evaluate(pos)) / 100
}

// ScoreToString renders a centipawn score for display.
func ScoreToString(score int) string {
	if score >= MateValue {
		return "mate"
	}
	if score <= -MateValue {
		return "mated"
	}
	return fmt.Sprintf("%.2f", float64(score)/100)
}
