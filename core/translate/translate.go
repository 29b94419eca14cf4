// Package translate rewrites Unix-style command lines into the host
// platform's native equivalents.
//
// Translation is syntactic and verb-level only: apart from two listed
// special cases it never inspects argument semantics, so adding a verb means
// adding one table row, not new control flow.
package translate

import (
	"github.com/abhii767/Minishell/core/platform"
	"github.com/abhii767/Minishell/core/shellparse"
)

// Rule maps a canonical Unix verb to its native spelling per platform.
// Platforms without an entry keep the canonical verb.
type Rule struct {
	Verb        string
	PerPlatform map[platform.ID]string
}

// Table is the fixed verb translation table. It is built once at startup and
// never mutated, so no synchronization is needed.
var Table = []Rule{
	{"ls", map[platform.ID]string{platform.Windows: "dir", platform.Linux: "ls -F", platform.Darwin: "ls -G"}},
	{"clear", map[platform.ID]string{platform.Windows: "cls", platform.Linux: "clear", platform.Darwin: "clear"}},
	{"rm", map[platform.ID]string{platform.Windows: "del /Q", platform.Linux: "rm -f", platform.Darwin: "rm -f"}},
	{"cp", map[platform.ID]string{platform.Windows: "copy", platform.Linux: "cp", platform.Darwin: "cp"}},
	{"mv", map[platform.ID]string{platform.Windows: "move", platform.Linux: "mv", platform.Darwin: "mv"}},
	{"grep", map[platform.ID]string{platform.Windows: "findstr", platform.Linux: "grep", platform.Darwin: "grep"}},
	{"cat", map[platform.ID]string{platform.Windows: "type", platform.Linux: "cat", platform.Darwin: "cat"}},
	{"pwd", map[platform.ID]string{platform.Windows: "cd", platform.Linux: "pwd", platform.Darwin: "pwd"}},
}

// rewriteRule replaces a whole command line before the table is consulted.
// Rules are checked in order and the first match ends evaluation, even when
// the platform keeps the line unchanged.
type rewriteRule struct {
	name    string
	matches func(tokens []string) bool
	apply   func(tokens []string, id platform.ID) string
}

var rewriteRules = []rewriteRule{
	{
		name:    "ls long listing",
		matches: verbWithFlag("ls", "-l"),
		apply:   windowsSubstitute("dir /Q"),
	},
	{
		name:    "ls recursive listing",
		matches: verbWithFlag("ls", "-R"),
		apply:   windowsSubstitute("dir /S"),
	},
}

func verbWithFlag(verb, flag string) func([]string) bool {
	return func(tokens []string) bool {
		if tokens[0] != verb {
			return false
		}
		for _, tok := range tokens[1:] {
			if tok == flag {
				return true
			}
		}
		return false
	}
}

// windowsSubstitute swaps the whole line for its native Windows spelling and
// leaves every other platform untouched; the native ls handles the flag
// itself there.
func windowsSubstitute(native string) func([]string, platform.ID) string {
	return func(tokens []string, id platform.ID) string {
		if id == platform.Windows {
			return native
		}
		return shellparse.Join(tokens)
	}
}

// Translate produces a platform-correct command line for tokens. Verbs
// without a table entry pass through unchanged so the host shell gets a
// chance at them.
func Translate(tokens []string, id platform.ID) string {
	if len(tokens) == 0 {
		return ""
	}

	for _, rule := range rewriteRules {
		if rule.matches(tokens) {
			return rule.apply(tokens, id)
		}
	}

	for _, rule := range Table {
		if rule.Verb != tokens[0] {
			continue
		}
		base, ok := rule.PerPlatform[id]
		if !ok {
			base = rule.Verb
		}
		return shellparse.Join(append([]string{base}, tokens[1:]...))
	}

	return shellparse.Join(tokens)
}
