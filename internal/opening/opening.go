// Package opening provides the curated ECO opening database and the
// queries the study surface is built on.
package opening

import (
	"math/rand"
	"sort"
	"strings"
)

// ECO classification categories.
const (
	CategoryOpen     = "Open Games (1.e4 e5)"
	CategorySemiOpen = "Semi-Open Games (1.e4, other)"
	CategoryClosed   = "Closed Games (1.d4 d5)"
	CategoryIndian   = "Indian Defenses (1.d4 Nf6)"
	CategoryFlank    = "Flank Openings"
)

// Statistics holds observed game outcome rates in percent.
type Statistics struct {
	WhiteWins float64 `json:"whiteWins"`
	BlackWins float64 `json:"blackWins"`
	Draws     float64 `json:"draws"`
}

// Opening is one ECO-classified opening line.
type Opening struct {
	ECO         string     `json:"eco"`
	Name        string     `json:"name"`
	Moves       string     `json:"moves"` // PGN movetext
	FEN         string     `json:"fen"`   // position after the opening moves
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Statistics  Statistics `json:"statistics"`
	Popularity  int        `json:"popularity"` // 1-100
}

// CategorySummary describes one category of the database.
type CategorySummary struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	AvgPopularity float64 `json:"avg_popularity"`
}

// Explorer answers queries over the opening database.
type Explorer struct {
	openings []Opening
}

// NewExplorer returns an explorer over the built-in database.
func NewExplorer() *Explorer {
	return &Explorer{openings: database[:]}
}

// All returns every opening.
func (e *Explorer) All() []Opening {
	return append([]Opening(nil), e.openings...)
}

// ByCategory returns the openings in one ECO category.
func (e *Explorer) ByCategory(category string) []Opening {
	var out []Opening
	for _, o := range e.openings {
		if o.Category == category {
			out = append(out, o)
		}
	}
	return out
}

// ByECO looks up an opening by its exact ECO code.
func (e *Explorer) ByECO(eco string) (Opening, bool) {
	for _, o := range e.openings {
		if o.ECO == eco {
			return o, true
		}
	}
	return Opening{}, false
}

// ByName returns the first opening whose name contains the query,
// case-insensitively.
func (e *Explorer) ByName(name string) (Opening, bool) {
	lower := strings.ToLower(name)
	for _, o := range e.openings {
		if strings.Contains(strings.ToLower(o.Name), lower) {
			return o, true
		}
	}
	return Opening{}, false
}

// ForPosition returns the openings whose defining line ends in the
// given position. Only the board layout, side to move, and castling
// rights are compared; the en-passant field and the move counters vary
// between FEN producers for the same position.
func (e *Explorer) ForPosition(fen string) []Opening {
	key := positionKey(fen)
	var out []Opening
	for _, o := range e.openings {
		if positionKey(o.FEN) == key {
			out = append(out, o)
		}
	}
	return out
}

func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 3 {
		return fen
	}
	return strings.Join(fields[:3], " ")
}

// Popular returns the limit most popular openings, most popular first.
func (e *Explorer) Popular(limit int) []Opening {
	sorted := e.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// RandomWeighted picks a random opening with probability proportional
// to its popularity, for variety in AI-vs-AI games.
func (e *Explorer) RandomWeighted(rng *rand.Rand) Opening {
	total := 0
	for _, o := range e.openings {
		total += o.Popularity
	}
	pick := rng.Intn(total)
	for _, o := range e.openings {
		pick -= o.Popularity
		if pick < 0 {
			return o
		}
	}
	return e.openings[len(e.openings)-1]
}

// Categories summarizes each category with its opening count and
// average popularity, in database order.
func (e *Explorer) Categories() []CategorySummary {
	var order []string
	byName := make(map[string]*CategorySummary)
	for _, o := range e.openings {
		s, ok := byName[o.Category]
		if !ok {
			s = &CategorySummary{Name: o.Category}
			byName[o.Category] = s
			order = append(order, o.Category)
		}
		s.Count++
		s.AvgPopularity += float64(o.Popularity)
	}
	out := make([]CategorySummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		s.AvgPopularity /= float64(s.Count)
		out = append(out, *s)
	}
	return out
}
