// Package engine implements the chess AI: minimax search with alpha-beta
// pruning over a classical material and piece-square evaluation.
package engine

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// Mobility and king safety weights
const (
	mobilityWeight   = 10 // per legal move difference
	openFilePenalty  = 20 // per unshielded file next to the king
	fiftyMoveClock   = 100
	seventyFiveClock = 150
	threefoldCount   = 3
	fivefoldCount    = 5
)

// evaluate scores a position in centipawns, positive favoring White.
// Checkmate and draw states are recognized before any counting: mate is
// worth the full king value against the side to move, and stalemate,
// insufficient material, the fifty-move rule, and threefold repetition
// all score zero.
func (e *Engine) evaluate(ctx *searchContext, pos *chess.Position, key string) int {
	switch pos.Status() {
	case chess.Checkmate:
		if pos.Turn() == chess.White {
			return -MateValue
		}
		return MateValue
	case chess.Stalemate:
		return 0
	}
	if insufficientMaterial(pos.Board()) {
		return 0
	}
	if halfMoveClock(pos) >= fiftyMoveClock || ctx.occurrences(key)+1 >= threefoldCount {
		return 0
	}

	board := pos.Board()
	score := materialScore(board)

	mobility := (len(pos.ValidMoves()) - len(opponentMoves(pos))) * mobilityWeight
	if pos.Turn() == chess.White {
		score += mobility
	} else {
		score -= mobility
	}

	score += kingSafety(board)
	return score
}

// materialScore sums material and piece-square bonuses for every piece,
// positive for White and negative for Black.
func materialScore(board *chess.Board) int {
	endgame := isEndgame(board)
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := pieceValues[piece.Type()] + pieceSquareBonus(piece, sq, endgame)
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// isEndgame reports whether the position has simplified enough for the
// king to leave shelter: either the queens are gone, or at most two of
// each piece group remain across both sides.
func isEndgame(board *chess.Board) bool {
	queens, minors, rooks := 0, 0, 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch board.Piece(sq).Type() {
		case chess.Queen:
			queens++
		case chess.Rook:
			rooks++
		case chess.Bishop, chess.Knight:
			minors++
		}
	}
	return queens == 0 || (queens <= 2 && minors <= 2 && rooks <= 2)
}

// insufficientMaterial reports draws neither side can win on material:
// bare kings, king and one minor piece, or bishops all confined to one
// square color.
func insufficientMaterial(board *chess.Board) bool {
	knights, bishops := 0, 0
	var bishopShade [2]int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch board.Piece(sq).Type() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			bishopShade[(int(sq.File())+int(sq.Rank()))%2]++
		}
	}
	if knights+bishops <= 1 {
		return true
	}
	return knights == 0 && (bishopShade[0] == 0 || bishopShade[1] == 0)
}

// kingSafety penalizes each file around a king that holds none of that
// side's pawns. Applied to both kings with opposite signs.
func kingSafety(board *chess.Board) int {
	score := 0
	for _, color := range []chess.Color{chess.White, chess.Black} {
		kingSq, ok := kingSquare(board, color)
		if !ok {
			continue
		}
		kingFile := int(kingSq.File())
		for file := max(kingFile-1, 0); file <= min(kingFile+1, 7); file++ {
			shielded := false
			for rank := 0; rank < 8; rank++ {
				piece := board.Piece(chess.Square(rank*8 + file))
				if piece.Type() == chess.Pawn && piece.Color() == color {
					shielded = true
					break
				}
			}
			if !shielded {
				if color == chess.White {
					score -= openFilePenalty
				} else {
					score += openFilePenalty
				}
			}
		}
	}
	return score
}

func kingSquare(board *chess.Board, color chess.Color) (chess.Square, bool) {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece.Type() == chess.King && piece.Color() == color {
			return sq, true
		}
	}
	return 0, false
}

// opponentMoves returns the legal moves the side not on move would have.
// The query never mutates the input: it rebuilds the position from its
// FEN with the turn swapped and en passant cleared, since a stale en
// passant square cannot belong to the side that just moved.
func opponentMoves(pos *chess.Position) []*chess.Move {
	fields := strings.Fields(pos.String())
	if len(fields) < 6 {
		return nil
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	flipped := &chess.Position{}
	if err := flipped.UnmarshalText([]byte(strings.Join(fields, " "))); err != nil {
		return nil
	}
	return flipped.ValidMoves()
}

// halfMoveClock reads the fifty-move counter from the position's FEN.
func halfMoveClock(pos *chess.Position) int {
	fields := strings.Fields(pos.String())
	if len(fields) < 5 {
		return 0
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return clock
}

// fingerprint identifies a position by piece placement, side to move,
// castling rights, and en passant square. Move counters are excluded so
// repeated positions share one identity.
func fingerprint(pos *chess.Position) string {
	fen := pos.String()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fen
	}
	return strings.Join(fields[:4], " ")
}
