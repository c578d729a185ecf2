package trie

// AlphabetSize is the number of distinct letters a node can branch on:
// 'a'-'z' followed by 'A'-'Z'.
const AlphabetSize = 52

// index maps a letter to its child slot. Lowercase letters come first, so
// traversals visit 'a'..'z' before 'A'..'Z'.
func index(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return 26 + int(c-'A'), true
	}
	return -1, false
}

// letter is the inverse of index
func letter(i int) byte {
	if i < 26 {
		return 'a' + byte(i)
	}
	return 'A' + byte(i-26)
}

// Valid reports whether every byte of word is a letter of the alphabet.
// The empty word is valid.
func Valid(word string) bool {
	return firstInvalid(word) < 0
}

// firstInvalid returns the position of the first byte outside the alphabet, or -1
func firstInvalid(word string) int {
	for i := 0; i < len(word); i++ {
		if _, ok := index(word[i]); !ok {
			return i
		}
	}
	return -1
}
