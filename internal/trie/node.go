package trie

// node represents a node in the trie
type node struct {
	// children holds one slot per letter; nil means no word continues with that letter
	children [AlphabetSize]*node

	// count is the number of non-nil children
	count int

	// isTerminal marks that the path to this node spells an inserted word
	isTerminal bool
}

// newNode creates a new trie node
func newNode() *node {
	return &node{}
}

// child returns the child for letter index i, or nil
func (n *node) child(i int) *node {
	return n.children[i]
}

// setChild attaches c at slot i, creating the slot
func (n *node) setChild(i int, c *node) {
	if n.children[i] == nil {
		n.count++
	}
	n.children[i] = c
}

// detach drops the subtree at slot i
func (n *node) detach(i int) {
	if n.children[i] != nil {
		n.children[i] = nil
		n.count--
	}
}

// isLeaf reports whether the node has no children
func (n *node) isLeaf() bool {
	return n.count == 0
}

// Trie is a prefix tree over the 52-letter case-sensitive ASCII alphabet.
//
// A Trie is not safe for concurrent use. Callers sharing one across
// goroutines must guard every operation with a single lock.
type Trie struct {
	root *node
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root: newNode(),
	}
}
