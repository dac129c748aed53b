package engine

import (
	"sort"

	"github.com/notnil/chess"
)

// checkBonus is added to moves that give check.
const checkBonus = 50

type scoredMove struct {
	move  *chess.Move
	score int
}

// moveScore rates a move for ordering. Captures use MVV-LVA: ten times
// the victim's value minus the attacker's, so winning the biggest piece
// with the smallest attacker sorts first. Promotions add the value of
// the promoted piece, checks a flat bonus. En passant captures land on
// an empty square and earn no capture term.
func moveScore(pos *chess.Position, move *chess.Move) int {
	score := 0
	if move.HasTag(chess.Capture) {
		victim := pos.Board().Piece(move.S2())
		attacker := pos.Board().Piece(move.S1())
		if victim != chess.NoPiece && attacker != chess.NoPiece {
			score += pieceValues[victim.Type()] * 10
			score -= pieceValues[attacker.Type()]
		}
	}
	if move.Promo() != chess.NoPieceType {
		score += pieceValues[move.Promo()]
	}
	if move.HasTag(chess.Check) {
		score += checkBonus
	}
	return score
}

// orderMoves returns the moves sorted by descending score so the search
// tries the likeliest cutoffs first. The input slice is not modified.
func orderMoves(pos *chess.Position, moves []*chess.Move) []*chess.Move {
	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		scored[i] = scoredMove{move: move, score: moveScore(pos, move)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	ordered := make([]*chess.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}
