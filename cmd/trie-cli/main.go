package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/prefix-trie/internal/cli"
	"github.com/kumarlokesh/prefix-trie/internal/config"
	"github.com/kumarlokesh/prefix-trie/internal/dictionary"
	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	dict := flag.String("dict", "", "Word list to load before running the command")
	skipInvalid := flag.Bool("skip-invalid", false, "Skip dictionary words with characters outside a-z/A-Z")
	limit := flag.Int("limit", 0, "Maximum number of autocomplete results (0 for all)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	level := zerolog.WarnLevel.String()
	if *verbose {
		level = zerolog.DebugLevel.String()
	}
	logCfg := config.LogConfig{Level: level, Pretty: true}
	logger := logCfg.NewLogger(os.Stderr)

	t := trie.New()
	if *dict != "" {
		words, report, err := dictionary.LoadFile(*dict,
			dictionary.SkipInvalid(*skipInvalid),
			dictionary.WithLogger(logger),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load dictionary")
		}
		for _, w := range words {
			if err := t.Insert(w); err != nil {
				log.Fatal().Err(err).Str("word", w).Msg("Failed to insert word")
			}
		}
		logger.Info().Int("words", report.Words).Int("skipped", report.Skipped).Msg("Loaded dictionary")
	}

	args := flag.Args()
	switch args[0] {
	case "demo":
		if err := cli.RunDemo(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Demo failed")
		}
	case "repl":
		session := cli.NewSession(t, os.Stdout, *limit, logger)
		fmt.Println("Type 'help' for commands, 'quit' to leave.")
		if err := session.Run(os.Stdin, "> "); err != nil {
			log.Fatal().Err(err).Msg("Session failed")
		}
	case "complete":
		prefix := ""
		if len(args) > 1 {
			prefix = args[1]
		}
		for _, w := range t.AutocompleteN(prefix, *limit) {
			fmt.Println(w)
		}
	default:
		log.Error().Str("command", args[0]).Msg("Unknown command")
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	helpText := `Prefix trie CLI

Usage:
  trie-cli [flags] <command> [arguments]

Flags:
  --dict string     Word list to load (one word per line)
  --skip-invalid    Skip words with characters outside a-z/A-Z
  --limit int       Maximum number of autocomplete results
  --verbose         Enable debug logging
  --help            Show this help message

Commands:
  demo              Run the demonstration scenarios
  repl              Start an interactive shell
  complete [prefix] Print words starting with prefix
`
	fmt.Print(helpText)
}
