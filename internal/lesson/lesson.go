// Package lesson holds the structured learning curriculum, from
// beginner fundamentals to master-level strategy.
package lesson

// Curriculum tiers.
const (
	Beginner     = "Beginner"
	Intermediate = "Intermediate"
	Master       = "Master"
)

// Lesson is one unit of the curriculum. FEN, when set, is the position
// the lesson is taught from.
type Lesson struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Difficulty    string `json:"difficulty"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	FEN           string `json:"fen,omitempty"`
	EstimatedTime int    `json:"estimatedTime"` // minutes
}

// All returns the full curriculum in teaching order.
func All() []Lesson {
	return append([]Lesson(nil), curriculum[:]...)
}

// ByID looks up a single lesson.
func ByID(id string) (Lesson, bool) {
	for _, l := range curriculum {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// ByDifficulty returns the lessons of one tier.
func ByDifficulty(difficulty string) []Lesson {
	var out []Lesson
	for _, l := range curriculum {
		if l.Difficulty == difficulty {
			out = append(out, l)
		}
	}
	return out
}

var curriculum = [...]Lesson{
	// Beginner
	{
		ID:            "beg-1",
		Title:         "Introduction to Pieces",
		Difficulty:    Beginner,
		Category:      "Fundamentals",
		Description:   "Learn how each piece moves on the board.",
		Content:       "Chess pieces have unique movement rules. The Rook moves straight, the Bishop diagonally, and the Queen does both. The Knight has a special 'L' shape movement, allowing it to jump over other pieces.",
		FEN:           "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		EstimatedTime: 5,
	},
	{
		ID:            "beg-2",
		Title:         "The King & Checkmate",
		Difficulty:    Beginner,
		Category:      "Fundamentals",
		Description:   "The ultimate goal: trapping the opponent's King.",
		Content:       "The game ends when a King is in 'Checkmate' - under attack with no legal way to escape. Learning to deliver mate with a Queen and King is the first step to becoming a master.",
		FEN:           "4k3/4Q3/4K3/8/8/8/8/8 b - - 0 1",
		EstimatedTime: 5,
	},
	{
		ID:            "beg-3",
		Title:         "Opening Principles",
		Difficulty:    Beginner,
		Category:      "Strategy",
		Description:   "Control the center and develop your pieces.",
		Content:       "In the first few moves, aim to control the central squares (e4, d4, e5, d5). Develop your Knights and Bishops early to prepare for the middle game.",
		FEN:           "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		EstimatedTime: 7,
	},
	{
		ID:            "beg-4",
		Title:         "Special Moves: Castling",
		Difficulty:    Beginner,
		Category:      "Fundamentals",
		Description:   "Protect your King and activate your Rooks.",
		Content:       "Castling is a special move involving the King and a Rook. It helps get the King to safety behind a wall of pawns while bringing the Rook toward the center.",
		FEN:           "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		EstimatedTime: 6,
	},
	{
		ID:            "beg-5",
		Title:         "Piece Values",
		Difficulty:    Beginner,
		Category:      "Fundamentals",
		Description:   "Understand the relative strength of your army.",
		Content:       "Pawn = 1, Knight = 3, Bishop = 3, Rook = 5, Queen = 9. Knowing these values helps you decide which trades are beneficial.",
		FEN:           "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		EstimatedTime: 4,
	},
	{
		ID:            "beg-6",
		Title:         "The En Passant Capture",
		Difficulty:    Beginner,
		Category:      "Fundamentals",
		Description:   "A unique pawn-capturing rule.",
		Content:       "If a pawn moves two squares and lands next to an enemy pawn, that enemy pawn can capture it 'in passing' as if it had only moved one square.",
		FEN:           "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		EstimatedTime: 6,
	},

	// Intermediate
	{
		ID:            "int-1",
		Title:         "The Deadly Fork",
		Difficulty:    Intermediate,
		Category:      "Tactics",
		Description:   "Attacking two pieces at once.",
		Content:       "A fork occurs when one piece (often a Knight) attacks two valuable enemy targets simultaneously, forcing the opponent to lose material.",
		FEN:           "4k3/1p4p1/2n5/3q4/3N4/8/PP3PPP/4R1K1 w - - 0 1",
		EstimatedTime: 10,
	},
	{
		ID:            "int-2",
		Title:         "The Power of the Pin",
		Difficulty:    Intermediate,
		Category:      "Tactics",
		Description:   "Stopping pieces from moving.",
		Content:       "A pin happens when an attacking piece threatens a more valuable piece behind a less valuable one. Moving the pinned piece would lead to the loss of the higher-value piece.",
		FEN:           "4k3/4r3/8/8/4B3/8/8/4K3 w - - 0 1",
		EstimatedTime: 8,
	},
	{
		ID:            "int-3",
		Title:         "Discovered Attacks",
		Difficulty:    Intermediate,
		Category:      "Tactics",
		Description:   "Hidden threats revealed by movement.",
		Content:       "By moving one piece, you clear a line for another piece to attack. This is one of the most dangerous tactical weapons in chess.",
		FEN:           "r1bqk2r/pp2bppp/2n1pn2/3p4/3P4/1PNBP3/P4PPP/R1BQK1NR w KQkq - 0 1",
		EstimatedTime: 12,
	},
	{
		ID:            "int-4",
		Title:         "The Skewer",
		Difficulty:    Intermediate,
		Category:      "Tactics",
		Description:   "The opposite of a pin.",
		Content:       "A skewer is when a valuable piece is attacked and must move, leaving a less valuable piece behind it to be captured.",
		FEN:           "4k3/8/8/8/q3B3/8/8/R3K3 w - - 0 1",
		EstimatedTime: 10,
	},
	{
		ID:            "int-5",
		Title:         "Removing the Guard",
		Difficulty:    Intermediate,
		Category:      "Tactics",
		Description:   "Destroying the defense.",
		Content:       "If an enemy piece is well-defended, look for ways to capture or distract its defender before delivering the final blow.",
		FEN:           "r1b1k2r/pp2bppp/2n1pn2/2pp2B1/3P4/2N1PN2/PPP1BPPP/R2QK2R w KQkq - 0 1",
		EstimatedTime: 12,
	},
	{
		ID:            "int-6",
		Title:         "Rook & King Endgames",
		Difficulty:    Intermediate,
		Category:      "Endgame",
		Description:   "Fundamental checkmating patterns.",
		Content:       "Mastering the technique of checkmating with a single Rook and King is essential. It requires 'boxing in' the enemy King using the edge of the board.",
		FEN:           "4k3/8/4K3/8/8/2R5/8/8 w - - 0 1",
		EstimatedTime: 15,
	},

	// Master
	{
		ID:            "mas-1",
		Title:         "Prophylaxis Strategy",
		Difficulty:    Master,
		Category:      "Strategy",
		Description:   "Preventing the opponent's ideas.",
		Content:       "Master-level play involves predicting and neutralizing your opponent's plans before they can even start them. This 'preventive thinking' is called prophylaxis.",
		FEN:           "rnbqk2r/pp2bppp/2p1pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQkq - 0 6",
		EstimatedTime: 15,
	},
	{
		ID:            "mas-2",
		Title:         "The Minority Attack",
		Difficulty:    Master,
		Category:      "Strategy",
		Description:   "Positional pawn pressure.",
		Content:       "In certain structures, attacking with fewer pawns on a flank can create permanent weaknesses in the opponent's pawn chain, particularly the 'backward pawn'.",
		FEN:           "r1bq1rk1/pp2bppp/2n1pn2/2pp4/2PP4/2N1PN2/PP1B1PPP/R2QKB1R w KQ - 0 8",
		EstimatedTime: 20,
	},
	{
		ID:            "mas-3",
		Title:         "Lucena Position",
		Difficulty:    Master,
		Category:      "Endgame",
		Description:   "The winning rook endgame.",
		Content:       "The Lucena position is the blueprint for winning Rook and Pawn vs Rook endgames. It involves building a 'bridge' with your Rook to protect your King from checks.",
		FEN:           "1R6/2P5/3K4/3k4/8/8/8/6r1 w - - 0 1",
		EstimatedTime: 25,
	},
	{
		ID:            "mas-4",
		Title:         "Positional Sacrifice",
		Difficulty:    Master,
		Category:      "Strategy",
		Description:   "Material for dynamic compensation.",
		Content:       "Sometimes, giving up a small amount of material (like an exchange) can grant such a long-term strategic advantage that it's worth more than the points lost.",
		FEN:           "r1bq1rk1/1pp2ppp/p1np1n2/4p3/2B1P3/2NPPN2/PPP3PP/R2Q1RK1 b - - 0 1",
		EstimatedTime: 20,
	},
	{
		ID:            "mas-5",
		Title:         "Space Advantage",
		Difficulty:    Master,
		Category:      "Strategy",
		Description:   "Dominating the board.",
		Content:       "Controlling more squares than your opponent limits their piece mobility, leading to cramped positions and eventual tactical collapses.",
		FEN:           "r1bqk2r/pp2bppp/2n1pn2/2pp4/2PP4/2N1PN2/PP1B1PPP/R2QKB1R w KQkq - 0 1",
		EstimatedTime: 18,
	},
	{
		ID:            "mas-6",
		Title:         "Weak Square Complexes",
		Difficulty:    Master,
		Category:      "Strategy",
		Description:   "Exploiting color weaknesses.",
		Content:       "If a player loses their 'good' Bishop, squares of that color can become permanent weaknesses that the opponent can occupy and exploit.",
		FEN:           "1rbq1rk1/pp2bppp/2n1pn2/2pp4/2PP4/2N1PN2/PP1B1PPP/R2QKB1R w KQ - 0 1",
		EstimatedTime: 22,
	},
}
