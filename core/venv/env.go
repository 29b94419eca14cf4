// Package venv exposes environment and working-directory access as an
// injected capability so the shell core never reaches for process globals
// directly.
package venv

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Env is the environment-access capability handed to the shell loop and its
// builtins. The interpretation pipeline itself never touches it.
type Env interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Environ() []string
	ExpandEnv(s string) string
	Getwd() (string, error)
	Chdir(dir string) error
	UserHomeDir() (string, error)
}

// OSEnv delegates to the real process environment.
type OSEnv struct{}

var _ Env = (*OSEnv)(nil)

func (*OSEnv) Getenv(key string) string            { return os.Getenv(key) }
func (*OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (*OSEnv) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (*OSEnv) Environ() []string                   { return os.Environ() }
func (*OSEnv) ExpandEnv(s string) string           { return os.ExpandEnv(s) }
func (*OSEnv) Getwd() (string, error)              { return os.Getwd() }
func (*OSEnv) Chdir(dir string) error              { return os.Chdir(dir) }
func (*OSEnv) UserHomeDir() (string, error)        { return os.UserHomeDir() }

// NewMapEnv creates an in-memory Env rooted at "/".
func NewMapEnv() *MapEnv {
	return &MapEnv{wd: "/"}
}

// MapEnv implements an in-memory Env for tests.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
	wd  string
}

var _ Env = (*MapEnv)(nil)

// Setenv implements Env.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// LookupEnv implements Env.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv implements Env.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// ExpandEnv implements Env.ExpandEnv.
func (m *MapEnv) ExpandEnv(s string) string {
	return os.Expand(s, m.Getenv)
}

// Environ implements Env.Environ. Entries are sorted for stable output.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}

// Getwd implements Env.Getwd.
func (m *MapEnv) Getwd() (string, error) {
	m.rw.RLock()
	defer m.rw.RUnlock()
	return m.wd, nil
}

// Chdir implements Env.Chdir. Any non-empty path is accepted.
func (m *MapEnv) Chdir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("chdir: empty path")
	}

	m.rw.Lock()
	defer m.rw.Unlock()
	m.wd = dir
	return nil
}

// UserHomeDir implements Env.UserHomeDir.
func (m *MapEnv) UserHomeDir() (string, error) {
	return m.Getenv("HOME"), nil
}
