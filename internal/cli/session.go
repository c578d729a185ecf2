// Package cli implements the interactive trie shell and the demonstration run
// used by cmd/trie-cli.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

const helpText = `Commands:
  insert <word>...     Add words
  search <word>        Report whether a word was inserted
  check <word>         Spell-check a word
  prefix <prefix>      Report whether any word starts with prefix
  complete [prefix]    List words starting with prefix
  remove <word>        Delete a word
  count                Number of words
  longest              Longest word
  help                 Show this help message
  quit                 Leave the shell
`

// Session runs shell commands against one trie.
type Session struct {
	trie   *trie.Trie
	out    io.Writer
	logger zerolog.Logger
	limit  int
}

// NewSession creates a session writing results to out. limit caps complete
// output; zero or less means no cap.
func NewSession(t *trie.Trie, out io.Writer, limit int, logger zerolog.Logger) *Session {
	return &Session{
		trie:   t,
		out:    out,
		logger: logger,
		limit:  limit,
	}
}

// Run reads commands from in until EOF or quit.
func (s *Session) Run(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if !s.Execute(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Execute runs one command line. It returns false when the session should end.
func (s *Session) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug().Str("command", cmd).Strs("args", args).Msg("Executing command")

	switch cmd {
	case "insert":
		s.insert(args)
	case "search":
		s.withWord(args, func(w string) {
			s.printf("Search '%s': %s\n", w, found(s.trie.Search(w)))
		})
	case "check":
		s.withWord(args, func(w string) {
			if s.trie.SpellCheck(w) {
				s.printf("%s is spelled correctly.\n", w)
			} else {
				s.printf("%s is NOT found.\n", w)
			}
		})
	case "prefix":
		s.withWord(args, func(p string) {
			s.printf("Prefix '%s': %s\n", p, exists(s.trie.StartsWith(p)))
		})
	case "complete":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		s.printf("Autocomplete for '%s': %s\n", prefix, joinWords(s.trie.AutocompleteN(prefix, s.limit)))
	case "remove":
		s.withWord(args, func(w string) {
			if s.trie.RemoveWord(w) {
				s.printf("Remove '%s': REMOVED\n", w)
			} else {
				s.printf("Remove '%s': NOT FOUND\n", w)
			}
		})
	case "count":
		s.printf("Words: %d\n", s.trie.CountWords())
	case "longest":
		s.printf("Longest word: '%s'\n", s.trie.FindLongestWord())
	case "help":
		s.printf("%s", helpText)
	case "quit", "exit":
		return false
	default:
		s.printf("Unknown command: %s (type 'help')\n", cmd)
	}
	return true
}

func (s *Session) insert(words []string) {
	if len(words) == 0 {
		s.printf("Usage: insert <word>...\n")
		return
	}
	for _, w := range words {
		if err := s.trie.Insert(w); err != nil {
			s.printf("Rejected '%s': %v\n", w, err)
			continue
		}
		s.printf("Inserted: %s\n", w)
	}
}

func (s *Session) withWord(args []string, fn func(string)) {
	if len(args) != 1 {
		s.printf("Expected exactly one word\n")
		return
	}
	fn(args[0])
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}

func found(ok bool) string {
	if ok {
		return "FOUND"
	}
	return "NOT FOUND"
}

func exists(ok bool) string {
	if ok {
		return "EXISTS"
	}
	return "DOESN'T EXIST"
}

func joinWords(words []string) string {
	if len(words) == 0 {
		return "No suggestions found"
	}
	return strings.Join(words, ", ")
}
