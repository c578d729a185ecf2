package trie

// RemoveWord deletes word and prunes every node that no longer leads to a
// word. It reports whether the word was present. The empty word is never
// removed, and a word with an invalid character is never present.
func (t *Trie) RemoveWord(word string) bool {
	if word == "" || !Valid(word) {
		return false
	}
	removed, _ := removeFrom(t.root, word, 0)
	return removed
}

// removeFrom unmarks word below n, which sits at depth in the word. It
// returns whether the word was removed and whether n is now useless and
// should be detached by its parent.
func removeFrom(n *node, word string, depth int) (removed, prune bool) {
	if depth == len(word) {
		if !n.isTerminal {
			return false, false
		}
		n.isTerminal = false
		return true, n.isLeaf()
	}

	idx, _ := index(word[depth])
	c := n.child(idx)
	if c == nil {
		return false, false
	}

	removed, prune = removeFrom(c, word, depth+1)
	if prune {
		n.detach(idx)
	}
	// the root always stays
	return removed, depth > 0 && !n.isTerminal && n.isLeaf()
}
