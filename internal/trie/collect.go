package trie

// WalkFunc is called for each word found by Walk. If it returns false, the
// walk stops.
type WalkFunc func(word string) bool

// Walk visits every word that starts with prefix, including prefix itself if
// it was inserted. Words are visited depth-first: a word is reported before
// the words that extend it, and children are visited in letter-index order
// ('a'..'z' then 'A'..'Z').
func (t *Trie) Walk(prefix string, fn WalkFunc) {
	n := t.findNode(prefix)
	if n == nil {
		return
	}

	buf := make([]byte, len(prefix), len(prefix)+16)
	copy(buf, prefix)
	walkNode(n, buf, fn)
}

// walkNode is a helper function that recursively collects words below n.
// buf holds the letters on the path to n.
func walkNode(n *node, buf []byte, fn WalkFunc) bool {
	if n.isTerminal {
		if !fn(string(buf)) {
			return false
		}
	}
	if n.isLeaf() {
		return true
	}

	for i := 0; i < AlphabetSize; i++ {
		c := n.child(i)
		if c == nil {
			continue
		}
		if !walkNode(c, append(buf, letter(i)), fn) {
			return false
		}
	}
	return true
}

// Autocomplete returns all words that start with prefix in Walk order. The
// result is empty, never nil, when no word matches.
func (t *Trie) Autocomplete(prefix string) []string {
	return t.AutocompleteN(prefix, 0)
}

// AutocompleteN returns at most limit words that start with prefix, in Walk
// order. A limit of zero or less means no limit.
func (t *Trie) AutocompleteN(prefix string, limit int) []string {
	results := []string{}
	t.Walk(prefix, func(word string) bool {
		results = append(results, word)
		return limit <= 0 || len(results) < limit
	})
	return results
}
