package engine

// ttFlag indicates the kind of bound a cache entry holds.
type ttFlag uint8

const (
	ttExact ttFlag = iota // exact minimax value
	ttLower               // failed high, value is a lower bound
	ttUpper               // failed low, value is an upper bound
)

// ttEntry is one cached search result.
type ttEntry struct {
	depth int
	score int
	flag  ttFlag
}

// transpositionCache memoizes search results within a single search.
// Keys are position fingerprints, so transpositions reached through
// different move orders share an entry. Each top-level search gets a
// fresh cache; nothing carries over between searches.
type transpositionCache struct {
	entries map[string]ttEntry
	probes  int
	hits    int
}

func newTranspositionCache() *transpositionCache {
	return &transpositionCache{entries: make(map[string]ttEntry)}
}

// probe returns the cached entry for key if one exists that was searched
// at least as deep as requested.
func (tc *transpositionCache) probe(key string, depth int) (ttEntry, bool) {
	tc.probes++
	entry, ok := tc.entries[key]
	if !ok || entry.depth < depth {
		return ttEntry{}, false
	}
	tc.hits++
	return entry, true
}

// store saves a result for key, overwriting any previous entry.
func (tc *transpositionCache) store(key string, depth, score int, flag ttFlag) {
	tc.entries[key] = ttEntry{depth: depth, score: score, flag: flag}
}

// hitRate returns the fraction of probes answered, as a percentage.
func (tc *transpositionCache) hitRate() float64 {
	if tc.probes == 0 {
		return 0
	}
	return float64(tc.hits) / float64(tc.probes) * 100
}
