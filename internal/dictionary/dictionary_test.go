package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

const sample = `# fruit
apple
  banana

orange	
grape
kiwi
`

func TestLoad(t *testing.T) {
	words, report, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "banana", "orange", "grape", "kiwi"}, words)
	assert.Equal(t, Report{Lines: 7, Words: 5}, report)
}

func TestLoad_InvalidWord(t *testing.T) {
	input := "apple\nice cream\nkiwi\n"

	t.Run("fails by default", func(t *testing.T) {
		_, _, err := Load(strings.NewReader(input))
		require.Error(t, err)
		assert.ErrorIs(t, err, trie.ErrInvalidCharacter)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("skips when asked", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		words, report, err := Load(strings.NewReader(input), SkipInvalid(true), WithLogger(logger))
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "kiwi"}, words)
		assert.Equal(t, 1, report.Skipped)
		assert.Contains(t, buf.String(), "Skipping invalid word")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	words, report, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, words, 5)
	assert.Equal(t, 5, report.Words)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
