// Package store shares one trie between goroutines. Every logical operation
// runs under a single lock so readers never observe a half-applied mutation.
package store

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

// Store guards a trie with a read-write lock.
type Store struct {
	mu     sync.RWMutex
	trie   *trie.Trie
	logger zerolog.Logger
}

// Stats is a consistent snapshot of the aggregate queries.
type Stats struct {
	Words   int    `json:"words"`
	Longest string `json:"longest"`
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutations.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		trie:   trie.New(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert adds one word.
func (s *Store) Insert(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.trie.Insert(word); err != nil {
		s.logger.Debug().Err(err).Str("word", word).Msg("Rejected word")
		return err
	}
	s.logger.Debug().Str("word", word).Msg("Inserted word")
	return nil
}

// InsertAll adds every word, or none of them if any word is invalid.
func (s *Store) InsertAll(words []string) (int, error) {
	for i, w := range words {
		if err := trie.Check(w); err != nil {
			return 0, fmt.Errorf("word %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range words {
		if err := s.trie.Insert(w); err != nil {
			// every word passed Check above
			return 0, fmt.Errorf("failed to insert %q: %w", w, err)
		}
	}
	s.logger.Info().Int("words", len(words)).Msg("Inserted batch")
	return len(words), nil
}

// Search reports whether word is present.
func (s *Store) Search(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.Search(word)
}

// StartsWith reports whether any word starts with prefix.
func (s *Store) StartsWith(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.StartsWith(prefix)
}

// Autocomplete returns up to limit words starting with prefix. A limit of
// zero or less means no limit.
func (s *Store) Autocomplete(prefix string, limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.AutocompleteN(prefix, limit)
}

// RemoveWord deletes word and reports whether it was present.
func (s *Store) RemoveWord(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.trie.RemoveWord(word)
	s.logger.Debug().Str("word", word).Bool("removed", removed).Msg("Remove word")
	return removed
}

// CountWords returns the number of stored words.
func (s *Store) CountWords() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.CountWords()
}

// FindLongestWord returns the longest stored word.
func (s *Store) FindLongestWord() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.FindLongestWord()
}

// Stats returns the word count and longest word from the same state.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Words:   s.trie.CountWords(),
		Longest: s.trie.FindLongestWord(),
	}
}
