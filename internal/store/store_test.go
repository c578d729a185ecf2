package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/prefix-trie/internal/store"
	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

func TestStore_Operations(t *testing.T) {
	s := store.New()

	require.NoError(t, s.Insert("apple"))
	require.NoError(t, s.Insert("application"))
	assert.ErrorIs(t, s.Insert("app le"), trie.ErrInvalidCharacter)

	assert.True(t, s.Search("apple"))
	assert.False(t, s.Search("app"))
	assert.True(t, s.StartsWith("app"))
	assert.Equal(t, []string{"apple", "application"}, s.Autocomplete("app", 0))
	assert.Equal(t, []string{"apple"}, s.Autocomplete("app", 1))
	assert.Equal(t, 2, s.CountWords())
	assert.Equal(t, "application", s.FindLongestWord())
	assert.Equal(t, store.Stats{Words: 2, Longest: "application"}, s.Stats())

	assert.True(t, s.RemoveWord("application"))
	assert.False(t, s.RemoveWord("application"))
	assert.Equal(t, store.Stats{Words: 1, Longest: "apple"}, s.Stats())
}

func TestStore_InsertAll(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		s := store.New()
		n, err := s.InsertAll([]string{"banana", "bandana", "banister"})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, 3, s.CountWords())
	})

	t.Run("one invalid word inserts nothing", func(t *testing.T) {
		s := store.New()
		n, err := s.InsertAll([]string{"banana", "ban-ana", "banister"})
		require.Error(t, err)
		assert.ErrorIs(t, err, trie.ErrInvalidCharacter)
		assert.Contains(t, err.Error(), "word 1")
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, s.CountWords())
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := store.New()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			prefix := string(rune('a' + g))
			for i := 0; i < 50; i++ {
				word := fmt.Sprintf("%s%s", prefix, string(rune('a'+i%26))+string(rune('A'+i/26)))
				assert.NoError(t, s.Insert(word))
				s.Search(word)
				s.Autocomplete(prefix, 5)
				s.Stats()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 8*50, s.CountWords())
}
