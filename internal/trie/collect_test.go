package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrie_Autocomplete(t *testing.T) {
	tr := newTrieWith(t, fruits...)
	for _, w := range []string{"application", "appetizer", "banister", "bandana", "oracle", "grapefruit"} {
		assert.NoError(t, tr.Insert(w))
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix 'app'",
			prefix: "app",
			want:   []string{"appetizer", "apple", "application"},
		},
		{
			name:   "prefix 'ban'",
			prefix: "ban",
			want:   []string{"banana", "bandana", "banister"},
		},
		{
			name:   "prefix is itself a word",
			prefix: "grape",
			want:   []string{"grape", "grapefruit"},
		},
		{
			name:   "full word without extensions",
			prefix: "kiwi",
			want:   []string{"kiwi"},
		},
		{
			name:   "non-existent prefix",
			prefix: "xyz",
			want:   []string{},
		},
		{
			name:   "invalid prefix",
			prefix: "ap-",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Autocomplete(tt.prefix)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrie_Autocomplete_EmptyPrefixReturnsAll(t *testing.T) {
	tr := newTrieWith(t, fruits...)

	got := tr.Autocomplete("")
	assert.ElementsMatch(t, fruits, got)
	// letter-index order
	assert.Equal(t, []string{"apple", "banana", "grape", "kiwi", "orange"}, got)
}

func TestTrie_Autocomplete_LowercaseBeforeUppercase(t *testing.T) {
	tr := newTrieWith(t, "Zebra", "zebra", "Apple", "apple", "ab")

	assert.Equal(t, []string{"ab", "apple", "zebra", "Apple", "Zebra"}, tr.Autocomplete(""))
}

func TestTrie_Autocomplete_Completeness(t *testing.T) {
	words := []string{"a", "ab", "abc", "abd", "b", "ba", "B", "Ba", "bA"}
	tr := newTrieWith(t, words...)

	prefixes := []string{"", "a", "ab", "abc", "b", "B", "x"}
	for _, p := range prefixes {
		var want []string
		for _, w := range words {
			if len(w) >= len(p) && w[:len(p)] == p {
				want = append(want, w)
			}
		}
		got := tr.Autocomplete(p)
		assert.ElementsMatch(t, want, got, "Autocomplete(%q)", p)
		assert.Len(t, got, len(want), "duplicates for %q", p)
	}
}

func TestTrie_AutocompleteN(t *testing.T) {
	tr := newTrieWith(t, "car", "card", "care", "cart", "cat")

	assert.Equal(t, []string{"car", "card"}, tr.AutocompleteN("ca", 2))
	assert.Equal(t, []string{"car", "card", "care", "cart", "cat"}, tr.AutocompleteN("ca", 0))
	assert.Equal(t, []string{"car", "card", "care", "cart", "cat"}, tr.AutocompleteN("ca", 10))
	assert.Len(t, tr.AutocompleteN("ca", -1), 5)
}

func TestTrie_Walk_Stop(t *testing.T) {
	tr := newTrieWith(t, fruits...)

	var seen []string
	tr.Walk("", func(word string) bool {
		seen = append(seen, word)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"apple", "banana"}, seen)

	called := false
	tr.Walk("nope", func(string) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
