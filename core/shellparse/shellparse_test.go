package shellparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain", "ls -l foo", []string{"ls", "-l", "foo"}},
		{"extra-whitespace", "  ls \t -l  ", []string{"ls", "-l"}},
		{"double-quotes", `grep "two words" file.txt`, []string{"grep", "two words", "file.txt"}},
		{"single-quotes", "echo 'a b' c", []string{"echo", "a b", "c"}},
		{"escaped-space", `cat hello\ world.txt`, []string{"cat", "hello world.txt"}},
		{"empty", "", nil},
		{"blank", "   ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Split(tc.line))
		})
	}
}

func TestSplitUnterminatedQuote(t *testing.T) {
	// Unterminated quoting keeps the line usable as a single token instead
	// of failing the whole pipeline.
	got := Split(`echo "oops`)

	assert.Equal(t, []string{`echo "oops`}, got)
}

func TestSplitJoinIdempotent(t *testing.T) {
	tokens := []string{"grep", "-i", "pattern", "file.txt"}

	joined := Join(tokens)
	assert.Equal(t, "grep -i pattern file.txt", joined)

	assert.Equal(t, tokens, Split(joined))
}
