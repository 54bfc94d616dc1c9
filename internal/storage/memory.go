package storage

import (
	"sync"
	"time"
)

// Memory is a high-score table that lives only as long as the process.
// It backs the game when the database cannot be opened.
type Memory struct {
	mu      sync.Mutex
	entries []ScoreEntry
	nextID  int64
	now     func() time.Time
}

// NewMemory returns an empty table.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// Add inserts the score after all entries with an equal or better score and
// truncates the table to Capacity.
func (m *Memory) Add(name string, score, boardW, boardH int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	e := ScoreEntry{
		ID:        m.nextID,
		Name:      name,
		Score:     score,
		BoardW:    boardW,
		BoardH:    boardH,
		CreatedAt: m.now().UTC().Truncate(time.Second),
	}

	pos := len(m.entries)
	for i, cur := range m.entries {
		if score > cur.Score {
			pos = i
			break
		}
	}
	m.entries = append(m.entries, ScoreEntry{})
	copy(m.entries[pos+1:], m.entries[pos:])
	m.entries[pos] = e

	if len(m.entries) > Capacity {
		m.entries = m.entries[:Capacity]
	}
	return nil
}

// Scores returns a copy of the table, best first.
func (m *Memory) Scores() ([]ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ScoreEntry(nil), m.entries...), nil
}

// IsHighScore reports whether score would enter the table.
func (m *Memory) IsHighScore(score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Qualifies(m.entries, score), nil
}

// Clear empties the table.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}
