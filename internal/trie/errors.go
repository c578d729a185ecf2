package trie

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned when a word contains a byte outside the
// 52-letter alphabet.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError describes where a word left the alphabet.
type InvalidCharacterError struct {
	Word string
	Pos  int
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v %q at position %d in %q", ErrInvalidCharacter, e.Char, e.Pos, e.Word)
}

// Unwrap lets errors.Is match ErrInvalidCharacter.
func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// Check returns an *InvalidCharacterError for the first byte of word outside
// the alphabet, or nil if the whole word is valid.
func Check(word string) error {
	if pos := firstInvalid(word); pos >= 0 {
		return &InvalidCharacterError{Word: word, Pos: pos, Char: word[pos]}
	}
	return nil
}
