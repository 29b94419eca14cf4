// Package expand performs wildcard expansion of command lines against the
// filesystem.
package expand

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/abhii767/Minishell/core/shellparse"
)

// Metacharacters trigger filesystem pattern expansion.
const Metacharacters = "*?"

// Expander expands glob patterns relative to the process working directory.
type Expander struct {
	fs afero.Fs
}

// New returns an Expander over fs. Pass afero.NewOsFs() to glob against the
// real working directory.
func New(fs afero.Fs) *Expander {
	return &Expander{fs: fs}
}

// Expand replaces every token of line containing a glob metacharacter with
// its filesystem matches, in enumeration order. A pattern matching nothing
// stays literal so the native command can report the missing file itself.
// Tokens without metacharacters are untouched.
func (e *Expander) Expand(line string) string {
	var out []string
	for _, token := range shellparse.Split(line) {
		if !strings.ContainsAny(token, Metacharacters) {
			out = append(out, token)
			continue
		}

		matches, err := afero.Glob(e.fs, token)
		if err != nil || len(matches) == 0 {
			out = append(out, token)
			continue
		}
		out = append(out, matches...)
	}
	return shellparse.Join(out)
}
