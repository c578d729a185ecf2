package trie

// CountWords returns the number of words in the trie.
func (t *Trie) CountWords() int {
	return countTerminals(t.root)
}

func countTerminals(n *node) int {
	total := 0
	if n.isTerminal {
		total++
	}
	for _, c := range n.children {
		if c != nil {
			total += countTerminals(c)
		}
	}
	return total
}

// FindLongestWord returns the longest word in the trie. Ties go to the word
// Walk reports first. It returns "" for an empty trie.
func (t *Trie) FindLongestWord() string {
	longest := ""
	found := false
	t.Walk("", func(word string) bool {
		if !found || len(word) > len(longest) {
			longest = word
			found = true
		}
		return true
	})
	return longest
}
