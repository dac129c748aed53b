// Package storage persists completed games and per-difficulty outcome
// statistics in BadgerDB.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes
const (
	prefixGame = "game:"
	prefixStat = "stats:"
)

// Game results
const (
	WinnerWhite = "white"
	WinnerBlack = "black"
	WinnerDraw  = "draw"
)

// GameRecord is one archived game. Difficulty fields are set for the
// sides an engine played; a human side leaves its field empty.
type GameRecord struct {
	ID              string    `json:"id"`
	Mode            string    `json:"mode"`
	Winner          string    `json:"winner"`
	Method          string    `json:"method"`
	WhiteDifficulty string    `json:"white_difficulty,omitempty"`
	BlackDifficulty string    `json:"black_difficulty,omitempty"`
	Moves           []string  `json:"moves"` // SAN
	CreatedAt       time.Time `json:"created_at"`
	CompletedAt     time.Time `json:"completed_at"`
}

// DifficultyStats aggregates outcomes of archived games in which an
// engine at that difficulty took part.
type DifficultyStats struct {
	Games     int `json:"games"`
	WhiteWins int `json:"whiteWins"`
	BlackWins int `json:"blackWins"`
	Draws     int `json:"draws"`
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame archives a completed game and folds its outcome into the
// statistics of every difficulty that played in it, all in one
// transaction.
func (s *Store) SaveGame(rec GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(prefixGame+rec.ID), data); err != nil {
			return err
		}
		for _, difficulty := range []string{rec.WhiteDifficulty, rec.BlackDifficulty} {
			if difficulty == "" {
				continue
			}
			if err := bumpStats(txn, difficulty, rec.Winner); err != nil {
				return err
			}
		}
		return nil
	})
}

// bumpStats applies a read-modify-write of one difficulty's aggregate
// inside the caller's transaction.
func bumpStats(txn *badger.Txn, difficulty, winner string) error {
	key := []byte(prefixStat + difficulty)

	var stats DifficultyStats
	item, err := txn.Get(key)
	switch err {
	case nil:
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		}); err != nil {
			return err
		}
	case badger.ErrKeyNotFound:
		// First game at this difficulty.
	default:
		return err
	}

	stats.Games++
	switch winner {
	case WinnerWhite:
		stats.WhiteWins++
	case WinnerBlack:
		stats.BlackWins++
	default:
		stats.Draws++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// Game loads one archived game. The second return value is false when
// no game with that id was recorded.
func (s *Store) Game(id string) (GameRecord, bool, error) {
	var rec GameRecord
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixGame + id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, found, err
}

// Games lists every archived game.
func (s *Store) Games() ([]GameRecord, error) {
	var records []GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixGame)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})

	return records, err
}

// Stats returns the aggregate for one difficulty, zero-valued when no
// games were recorded at it.
func (s *Store) Stats(difficulty string) (DifficultyStats, error) {
	var stats DifficultyStats

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixStat + difficulty))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})

	return stats, err
}

// WinRate returns the percentage of archived games with the given
// result, 0 when nothing was recorded.
func (d DifficultyStats) WinRate(winner string) float64 {
	if d.Games == 0 {
		return 0
	}
	wins := d.Draws
	switch winner {
	case WinnerWhite:
		wins = d.WhiteWins
	case WinnerBlack:
		wins = d.BlackWins
	}
	return float64(wins) / float64(d.Games) * 100
}
