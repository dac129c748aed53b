package opening

// database is the curated ECO opening set, grouped by category.
var database = [...]Opening{
	// Open games (1.e4 e5)
	{
		ECO:         "C50",
		Name:        "Italian Game",
		Moves:       "1. e4 e5 2. Nf3 Nc6 3. Bc4",
		FEN:         "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		Description: "One of the oldest openings, aiming to control the center and develop pieces rapidly.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 38.5, BlackWins: 28.2, Draws: 33.3},
		Popularity:  92,
	},
	{
		ECO:         "C51",
		Name:        "Italian Game: Evans Gambit",
		Moves:       "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. b4",
		FEN:         "r1bqk1nr/pppp1ppp/2n5/2b1p3/1PB1P3/5N2/P1PP1PPP/RNBQK2R b KQkq b3 0 4",
		Description: "An aggressive gambit sacrificing a pawn for rapid development and attack.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 42.1, BlackWins: 31.5, Draws: 26.4},
		Popularity:  68,
	},
	{
		ECO:         "C60",
		Name:        "Ruy Lopez",
		Moves:       "1. e4 e5 2. Nf3 Nc6 3. Bb5",
		FEN:         "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		Description: "The Spanish Game - one of the most popular and deeply analyzed openings.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 36.8, BlackWins: 27.9, Draws: 35.3},
		Popularity:  95,
	},
	{
		ECO:         "C65",
		Name:        "Ruy Lopez: Berlin Defense",
		Moves:       "1. e4 e5 2. Nf3 Nc6 3. Bb5 Nf6",
		FEN:         "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		Description: "A solid defense leading to endgames, famously used to great effect.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 32.4, BlackWins: 25.1, Draws: 42.5},
		Popularity:  88,
	},
	{
		ECO:         "C42",
		Name:        "Petrov's Defense",
		Moves:       "1. e4 e5 2. Nf3 Nf6",
		FEN:         "rnbqkb1r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		Description: "A symmetrical and solid defense, often leading to drawish positions.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 33.1, BlackWins: 24.8, Draws: 42.1},
		Popularity:  75,
	},
	{
		ECO:         "C21",
		Name:        "King's Gambit",
		Moves:       "1. e4 e5 2. f4",
		FEN:         "rnbqkbnr/pppp1ppp/8/4p3/4PP2/8/PPPP2PP/RNBQKBNR b KQkq f3 0 2",
		Description: "An aggressive romantic-era gambit sacrificing a pawn for quick attack.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 40.2, BlackWins: 34.8, Draws: 25.0},
		Popularity:  62,
	},
	{
		ECO:         "C55",
		Name:        "Two Knights Defense",
		Moves:       "1. e4 e5 2. Nf3 Nc6 3. Bc4 Nf6",
		FEN:         "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		Description: "An active defense inviting sharp tactical play.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 37.5, BlackWins: 29.8, Draws: 32.7},
		Popularity:  78,
	},
	{
		ECO:         "C44",
		Name:        "Scotch Game",
		Moves:       "1. e4 e5 2. Nf3 Nc6 3. d4",
		FEN:         "r1bqkbnr/pppp1ppp/2n5/4p3/3PP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
		Description: "An open game leading to active piece play for both sides.",
		Category:    CategoryOpen,
		Statistics:  Statistics{WhiteWins: 38.9, BlackWins: 30.2, Draws: 30.9},
		Popularity:  72,
	},

	// Semi-open games
	{
		ECO:         "B20",
		Name:        "Sicilian Defense",
		Moves:       "1. e4 c5",
		FEN:         "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		Description: "The most popular response to 1.e4, leading to asymmetrical positions.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 35.2, BlackWins: 31.8, Draws: 33.0},
		Popularity:  98,
	},
	{
		ECO:         "B90",
		Name:        "Sicilian: Najdorf Variation",
		Moves:       "1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 a6",
		FEN:         "rnbqkb1r/1p2pppp/p2p1n2/8/3NP3/2N5/PPP2PPP/R1BQKB1R w KQkq - 0 6",
		Description: "One of the sharpest and most theoretically demanding openings.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 34.8, BlackWins: 32.5, Draws: 32.7},
		Popularity:  94,
	},
	{
		ECO:         "B33",
		Name:        "Sicilian: Sveshnikov Variation",
		Moves:       "1. e4 c5 2. Nf3 Nc6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 e5",
		FEN:         "r1bqkb1r/pp1p1ppp/2n2n2/4p3/3NP3/2N5/PPP2PPP/R1BQKB1R w KQkq - 0 6",
		Description: "A dynamic variation with the characteristic backward d6-pawn.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 35.1, BlackWins: 31.2, Draws: 33.7},
		Popularity:  82,
	},
	{
		ECO:         "B10",
		Name:        "Caro-Kann Defense",
		Moves:       "1. e4 c6",
		FEN:         "rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		Description: "A solid defense aiming for a strong pawn structure.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 35.8, BlackWins: 28.4, Draws: 35.8},
		Popularity:  85,
	},
	{
		ECO:         "C00",
		Name:        "French Defense",
		Moves:       "1. e4 e6",
		FEN:         "rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		Description: "A solid but somewhat cramped defense with counterattacking potential.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 36.2, BlackWins: 29.1, Draws: 34.7},
		Popularity:  83,
	},
	{
		ECO:         "B01",
		Name:        "Scandinavian Defense",
		Moves:       "1. e4 d5",
		FEN:         "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		Description: "An early queen sortie defense, leading to open positions.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 39.2, BlackWins: 28.5, Draws: 32.3},
		Popularity:  58,
	},
	{
		ECO:         "B06",
		Name:        "Modern Defense",
		Moves:       "1. e4 g6",
		FEN:         "rnbqkbnr/pppppp1p/6p1/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		Description: "A hypermodern defense allowing White to build a big center.",
		Category:    CategorySemiOpen,
		Statistics:  Statistics{WhiteWins: 42.1, BlackWins: 27.8, Draws: 30.1},
		Popularity:  45,
	},

	// Closed games (1.d4 d5)
	{
		ECO:         "D00",
		Name:        "Queen's Pawn Game",
		Moves:       "1. d4 d5",
		FEN:         "rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6 0 2",
		Description: "The starting point for many classical openings.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 37.5, BlackWins: 28.2, Draws: 34.3},
		Popularity:  90,
	},
	{
		ECO:         "D30",
		Name:        "Queen's Gambit",
		Moves:       "1. d4 d5 2. c4",
		FEN:         "rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR b KQkq c3 0 2",
		Description: "One of the oldest and most respected openings in chess.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 38.2, BlackWins: 27.5, Draws: 34.3},
		Popularity:  93,
	},
	{
		ECO:         "D35",
		Name:        "Queen's Gambit Declined",
		Moves:       "1. d4 d5 2. c4 e6",
		FEN:         "rnbqkbnr/ppp2ppp/4p3/3p4/2PP4/8/PP2PPPP/RNBQKBNR w KQkq - 0 3",
		Description: "A solid classical response to the Queen's Gambit.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 36.8, BlackWins: 26.9, Draws: 36.3},
		Popularity:  88,
	},
	{
		ECO:         "D20",
		Name:        "Queen's Gambit Accepted",
		Moves:       "1. d4 d5 2. c4 dxc4",
		FEN:         "rnbqkbnr/ppp1pppp/8/8/2pP4/8/PP2PPPP/RNBQKBNR w KQkq - 0 3",
		Description: "Black accepts the pawn but must work to keep it.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 38.5, BlackWins: 28.2, Draws: 33.3},
		Popularity:  72,
	},
	{
		ECO:         "D10",
		Name:        "Slav Defense",
		Moves:       "1. d4 d5 2. c4 c6",
		FEN:         "rnbqkbnr/pp2pppp/2p5/3p4/2PP4/8/PP2PPPP/RNBQKBNR w KQkq - 0 3",
		Description: "A solid defense supporting the d5 pawn with c6.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 36.4, BlackWins: 27.8, Draws: 35.8},
		Popularity:  85,
	},
	{
		ECO:         "A45",
		Name:        "Trompowsky Attack",
		Moves:       "1. d4 Nf6 2. Bg5",
		FEN:         "rnbqkb1r/pppppppp/5n2/6B1/3P4/8/PPP1PPPP/RN1QKBNR b KQkq - 2 2",
		Description: "A surprise weapon avoiding main theory with early bishop sortie.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 39.8, BlackWins: 28.5, Draws: 31.7},
		Popularity:  52,
	},
	{
		ECO:         "D80",
		Name:        "Grünfeld Defense",
		Moves:       "1. d4 Nf6 2. c4 g6 3. Nc3 d5",
		FEN:         "rnbqkb1r/ppp1pp1p/5np1/3p4/2PP4/2N5/PP2PPPP/R1BQKBNR w KQkq d6 0 4",
		Description: "A dynamic hypermodern defense challenging the center immediately.",
		Category:    CategoryClosed,
		Statistics:  Statistics{WhiteWins: 37.2, BlackWins: 30.1, Draws: 32.7},
		Popularity:  78,
	},

	// Indian defenses
	{
		ECO:         "E60",
		Name:        "King's Indian Defense",
		Moves:       "1. d4 Nf6 2. c4 g6",
		FEN:         "rnbqkb1r/pppppp1p/5np1/8/2PP4/8/PP2PPPP/RNBQKBNR w KQkq - 0 3",
		Description: "A fighting defense leading to complex middlegame positions.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 37.8, BlackWins: 30.5, Draws: 31.7},
		Popularity:  88,
	},
	{
		ECO:         "E70",
		Name:        "King's Indian: Classical Variation",
		Moves:       "1. d4 Nf6 2. c4 g6 3. Nc3 Bg7 4. e4 d6 5. Nf3",
		FEN:         "rnbqk2r/ppp1ppbp/3p1np1/8/2PPP3/2N2N2/PP3PPP/R1BQKB1R b KQkq - 1 5",
		Description: "The main line of the King's Indian, featuring classic pawn structures.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 36.9, BlackWins: 31.2, Draws: 31.9},
		Popularity:  82,
	},
	{
		ECO:         "E20",
		Name:        "Nimzo-Indian Defense",
		Moves:       "1. d4 Nf6 2. c4 e6 3. Nc3 Bb4",
		FEN:         "rnbqk2r/pppp1ppp/4pn2/8/1bPP4/2N5/PP2PPPP/R1BQKBNR w KQkq - 2 4",
		Description: "A highly respected defense exerting pressure on e4.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 35.2, BlackWins: 28.8, Draws: 36.0},
		Popularity:  91,
	},
	{
		ECO:         "E10",
		Name:        "Queen's Indian Defense",
		Moves:       "1. d4 Nf6 2. c4 e6 3. Nf3 b6",
		FEN:         "rnbqkb1r/p1pp1ppp/1p2pn2/8/2PP4/5N2/PP2PPPP/RNBQKB1R w KQkq - 0 4",
		Description: "A solid flexible defense controlling the e4 square.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 36.1, BlackWins: 27.2, Draws: 36.7},
		Popularity:  75,
	},
	{
		ECO:         "A50",
		Name:        "Benoni Defense",
		Moves:       "1. d4 Nf6 2. c4 c5",
		FEN:         "rnbqkb1r/pp1ppppp/5n2/2p5/2PP4/8/PP2PPPP/RNBQKBNR w KQkq c6 0 3",
		Description: "An aggressive defense creating imbalanced pawn structures.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 40.2, BlackWins: 29.8, Draws: 30.0},
		Popularity:  62,
	},
	{
		ECO:         "A56",
		Name:        "Modern Benoni",
		Moves:       "1. d4 Nf6 2. c4 c5 3. d5 e6 4. Nc3 exd5 5. cxd5 d6",
		FEN:         "rnbqkb1r/pp3ppp/3p1n2/2pP4/8/2N5/PP2PPPP/R1BQKBNR w KQkq - 0 6",
		Description: "A sharp variation with asymmetric pawn structure.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 39.5, BlackWins: 30.2, Draws: 30.3},
		Popularity:  58,
	},
	{
		ECO:         "A80",
		Name:        "Dutch Defense",
		Moves:       "1. d4 f5",
		FEN:         "rnbqkbnr/ppppp1pp/8/5p2/3P4/8/PPP1PPPP/RNBQKBNR w KQkq f6 0 2",
		Description: "An ambitious defense seizing kingside space.",
		Category:    CategoryIndian,
		Statistics:  Statistics{WhiteWins: 39.8, BlackWins: 28.2, Draws: 32.0},
		Popularity:  48,
	},

	// Flank openings
	{
		ECO:         "A00",
		Name:        "English Opening",
		Moves:       "1. c4",
		FEN:         "rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
		Description: "A flexible flank opening that can transpose to many systems.",
		Category:    CategoryFlank,
		Statistics:  Statistics{WhiteWins: 36.5, BlackWins: 27.8, Draws: 35.7},
		Popularity:  82,
	},
	{
		ECO:         "A04",
		Name:        "Réti Opening",
		Moves:       "1. Nf3",
		FEN:         "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		Description: "A hypermodern opening delaying pawn center commitment.",
		Category:    CategoryFlank,
		Statistics:  Statistics{WhiteWins: 37.2, BlackWins: 28.1, Draws: 34.7},
		Popularity:  78,
	},
	{
		ECO:         "A01",
		Name:        "Larsen's Opening",
		Moves:       "1. b3",
		FEN:         "rnbqkbnr/pppppppp/8/8/8/1P6/P1PPPPPP/RNBQKBNR b KQkq - 0 1",
		Description: "A quiet fianchetto opening popularized by Bent Larsen.",
		Category:    CategoryFlank,
		Statistics:  Statistics{WhiteWins: 38.5, BlackWins: 29.2, Draws: 32.3},
		Popularity:  35,
	},
	{
		ECO:         "A02",
		Name:        "Bird's Opening",
		Moves:       "1. f4",
		FEN:         "rnbqkbnr/pppppppp/8/8/5P2/8/PPPPP1PP/RNBQKBNR b KQkq f3 0 1",
		Description: "An aggressive flank opening seizing kingside space.",
		Category:    CategoryFlank,
		Statistics:  Statistics{WhiteWins: 37.8, BlackWins: 30.5, Draws: 31.7},
		Popularity:  32,
	},
	{
		ECO:         "B00",
		Name:        "King's Fianchetto Opening",
		Moves:       "1. g3",
		FEN:         "rnbqkbnr/pppppppp/8/8/8/6P1/PPPPPP1P/RNBQKBNR b KQkq - 0 1",
		Description: "A flexible setup preparing to fianchetto the king's bishop.",
		Category:    CategoryFlank,
		Statistics:  Statistics{WhiteWins: 36.9, BlackWins: 28.4, Draws: 34.7},
		Popularity:  42,
	},
}
