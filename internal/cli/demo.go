package cli

import (
	"fmt"
	"io"

	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

// RunDemo exercises every trie operation on a fixed word set and prints the
// results to out.
func RunDemo(out io.Writer) error {
	t := trie.New()
	section := func(title string) {
		fmt.Fprintf(out, "\n%s\n", title)
	}
	insert := func(words ...string) error {
		for _, w := range words {
			if err := t.Insert(w); err != nil {
				return fmt.Errorf("demo insert %q: %w", w, err)
			}
			fmt.Fprintf(out, "Inserted: %s\n", w)
		}
		return nil
	}
	search := func(words ...string) {
		for _, w := range words {
			fmt.Fprintf(out, "Search '%s': %s\n", w, found(t.Search(w)))
		}
	}
	prefix := func(prefixes ...string) {
		for _, p := range prefixes {
			fmt.Fprintf(out, "Prefix '%s': %s\n", p, exists(t.StartsWith(p)))
		}
	}
	complete := func(prefixes ...string) {
		for _, p := range prefixes {
			fmt.Fprintf(out, "Autocomplete for '%s': %s\n", p, joinWords(t.Autocomplete(p)))
		}
	}
	remove := func(w string) {
		result := "NOT FOUND"
		if t.RemoveWord(w) {
			result = "REMOVED"
		}
		fmt.Fprintf(out, "Remove '%s': %s\n", w, result)
	}

	fmt.Fprintln(out, "=== TRIE DEMO ===")

	section("1. Insertion and search")
	if err := insert("apple", "banana", "orange", "grape", "kiwi"); err != nil {
		return err
	}
	search("apple", "banana", "orange", "grape", "kiwi")
	search("app", "ban", "ora", "graph", "kiwis")

	section("2. Prefix checks")
	prefix("app", "ban", "ora", "grap", "k")
	prefix("x", "yield", "zed", "micro", "nano")

	section("3. Autocomplete")
	complete("a", "b", "o", "g", "k", "ap", "ban", "ora", "gr", "ki")

	section("4. Edge cases")
	search("")
	prefix("")
	complete("")

	section("5. More words")
	if err := insert("application", "appetizer", "banister", "bandana", "oracle", "grapefruit"); err != nil {
		return err
	}
	complete("app", "ban", "ora", "gra")

	section("6. Case sensitivity")
	if err := insert("Hello", "WORLD"); err != nil {
		return err
	}
	search("hello", "Hello", "WORLD", "world")

	section("7. Removal")
	remove("kiwi")
	search("kiwi")
	remove("banana")
	search("banana", "bandana", "banister")
	if err := insert("app"); err != nil {
		return err
	}
	remove("app")
	search("app", "apple", "application", "appetizer")
	remove("berry")
	remove("")

	section("8. Aggregates")
	fmt.Fprintf(out, "Words: %d\n", t.CountWords())
	fmt.Fprintf(out, "Longest word: '%s'\n", t.FindLongestWord())

	fmt.Fprintln(out, "\n=== DEMO COMPLETE ===")
	return nil
}
