// Package history persists the shell's command history between sessions as
// a plain text file, one line per entry.
package history

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultMax bounds the history when the configuration doesn't.
const DefaultMax = 100

// History is the in-memory command log backed by a file, capped at max
// entries. It is not safe for concurrent use; the shell loop is serial by
// construction.
type History struct {
	fs    afero.Fs
	path  string
	max   int
	lines []string
}

// New creates a History stored at path on fs.
func New(fs afero.Fs, path string, max int) *History {
	if max <= 0 {
		max = DefaultMax
	}
	return &History{fs: fs, path: path, max: max}
}

// Path returns the backing file path.
func (h *History) Path() string {
	return h.path
}

// Load reads the persisted history, keeping only the newest max entries. A
// missing file is not an error.
func (h *History) Load() error {
	data, err := afero.ReadFile(h.fs, h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > h.max {
		lines = lines[len(lines)-h.max:]
	}
	h.lines = lines
	return nil
}

// Add appends one entry, dropping the oldest past the cap.
func (h *History) Add(line string) {
	h.lines = append(h.lines, line)
	if len(h.lines) > h.max {
		h.lines = h.lines[len(h.lines)-h.max:]
	}
}

// Entries returns a copy of the current entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// Clear drops all in-memory entries. The file is untouched until Save.
func (h *History) Clear() {
	h.lines = nil
}

// Save writes the entries back to the history file.
func (h *History) Save() error {
	if dir := filepath.Dir(h.path); dir != "." {
		if err := h.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var content string
	if len(h.lines) > 0 {
		content = strings.Join(h.lines, "\n") + "\n"
	}
	return afero.WriteFile(h.fs, h.path, []byte(content), 0o600)
}
