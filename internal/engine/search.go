package engine

import (
	"github.com/notnil/chess"
)

// Search constants
const (
	MateValue = 20000  // absolute score of a checkmated position
	infinity  = 100000 // beyond any reachable evaluation
)

// searchContext carries the state of one search: the node counter, the
// per-search transposition cache, and the multiset of position
// fingerprints seen in the game history and along the current line. It
// is discarded when the search returns.
type searchContext struct {
	nodes int
	cache *transpositionCache
	seen  map[string]int
}

func newSearchContext(history map[string]int) *searchContext {
	seen := make(map[string]int, len(history)+32)
	for key, n := range history {
		seen[key] = n
	}
	return &searchContext{
		cache: newTranspositionCache(),
		seen:  seen,
	}
}

// enter and leave bracket a node's time on the current search path.
func (ctx *searchContext) enter(key string) { ctx.seen[key]++ }
func (ctx *searchContext) leave(key string) { ctx.seen[key]-- }

// occurrences counts prior appearances of a position, not including the
// node currently asking.
func (ctx *searchContext) occurrences(key string) int { return ctx.seen[key] }

// isTerminal reports positions with no game continuation: mate or
// stalemate, dead material, or the forced draw rules (seventy-five
// moves, fivefold repetition). The claimable draws remain searchable
// and are handled by the evaluator instead.
func (e *Engine) isTerminal(ctx *searchContext, pos *chess.Position, key string) bool {
	if pos.Status() != chess.NoMethod {
		return true
	}
	if insufficientMaterial(pos.Board()) {
		return true
	}
	if halfMoveClock(pos) >= seventyFiveClock {
		return true
	}
	return ctx.occurrences(key)+1 >= fivefoldCount
}

// minimax returns the value of pos searched depth plies deep within the
// alpha-beta window. The maximizing flag selects whether this node takes
// the maximum or the minimum over its children; callers alternate it.
func (e *Engine) minimax(ctx *searchContext, pos *chess.Position, depth, alpha, beta int, maximizing bool) int {
	ctx.nodes++

	alphaOrig, betaOrig := alpha, beta
	key := fingerprint(pos)

	if entry, ok := ctx.cache.probe(key, depth); ok {
		switch entry.flag {
		case ttExact:
			return entry.score
		case ttLower:
			alpha = max(alpha, entry.score)
		case ttUpper:
			beta = min(beta, entry.score)
		}
		if alpha >= beta {
			return entry.score
		}
	}

	if depth == 0 || e.isTerminal(ctx, pos, key) {
		value := e.evaluate(ctx, pos, key)
		ctx.cache.store(key, depth, value, ttExact)
		return value
	}

	moves := orderMoves(pos, pos.ValidMoves())

	ctx.enter(key)
	var best int
	if maximizing {
		best = -infinity
		for _, move := range moves {
			value := e.minimax(ctx, pos.Update(move), depth-1, alpha, beta, false)
			best = max(best, value)
			alpha = max(alpha, value)
			if beta <= alpha {
				break // beta cutoff
			}
		}
	} else {
		best = infinity
		for _, move := range moves {
			value := e.minimax(ctx, pos.Update(move), depth-1, alpha, beta, true)
			best = min(best, value)
			beta = min(beta, value)
			if beta <= alpha {
				break // alpha cutoff
			}
		}
	}
	ctx.leave(key)

	flag := ttExact
	if best <= alphaOrig {
		flag = ttUpper
	} else if best >= betaOrig {
		flag = ttLower
	}
	ctx.cache.store(key, depth, best, flag)
	return best
}
