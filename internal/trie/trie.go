package trie

// Insert adds word to the trie. The whole word is checked before anything is
// created, so a word with an invalid character leaves the trie unchanged and
// yields an error wrapping ErrInvalidCharacter. Inserting "" marks the root.
func (t *Trie) Insert(word string) error {
	if err := Check(word); err != nil {
		return err
	}

	n := t.root
	for i := 0; i < len(word); i++ {
		idx, _ := index(word[i])
		next := n.child(idx)
		if next == nil {
			next = newNode()
			n.setChild(idx, next)
		}
		n = next
	}
	n.isTerminal = true
	return nil
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	n := t.findNode(word)
	return n != nil && n.isTerminal
}

// SpellCheck reports whether word is known. It is Search under the name
// dictionary callers use.
func (t *Trie) SpellCheck(word string) bool {
	return t.Search(word)
}

// StartsWith reports whether any path in the trie spells prefix. The empty
// prefix always exists.
func (t *Trie) StartsWith(prefix string) bool {
	return t.findNode(prefix) != nil
}

// findNode returns the node reached by key, or nil if the path is absent or
// key contains a character outside the alphabet
func (t *Trie) findNode(key string) *node {
	n := t.root
	for i := 0; i < len(key); i++ {
		idx, ok := index(key[i])
		if !ok {
			return nil
		}
		n = n.child(idx)
		if n == nil {
			return nil
		}
	}
	return n
}
