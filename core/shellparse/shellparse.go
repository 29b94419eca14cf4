// Package shellparse splits command lines into words following POSIX shell
// word-splitting rules.
package shellparse

import (
	"strings"

	"github.com/anmitsu/go-shlex"
)

// Split breaks line into words, honoring single/double quotes and backslash
// escapes. Unterminated quoting degrades to the whole trimmed line as a
// single token so the line can still be handed to the host shell.
func Split(line string) []string {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Join rejoins tokens with single spaces. For quote-free tokens it is the
// inverse of Split.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
