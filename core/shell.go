package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/abhii767/Minishell/core/config"
	"github.com/abhii767/Minishell/core/execute"
	"github.com/abhii767/Minishell/core/expand"
	"github.com/abhii767/Minishell/core/history"
	"github.com/abhii767/Minishell/core/interp"
	"github.com/abhii767/Minishell/core/logger"
	"github.com/abhii767/Minishell/core/platform"
	"github.com/abhii767/Minishell/core/shellparse"
	"github.com/abhii767/Minishell/core/venv"
)

// Status message colors, matching the original palette.
var (
	colorInfo   = color.New(color.FgBlue)
	colorWarn   = color.New(color.FgYellow)
	colorError  = color.New(color.FgRed)
	colorPrompt = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// Shell is the interactive read loop around the interpretation pipeline.
// Everything runs on one logical thread: a new line is only read after the
// previous command has finished.
type Shell struct {
	Config   *config.Configuration
	Env      venv.Env
	Fs       afero.Fs
	Interp   *interp.Interpreter
	History  *history.History
	Log      *logger.Logger
	Readline *readline.Instance

	stdout io.Writer
	stderr io.Writer

	ctx     context.Context
	quit    bool
	toClose listCloser
}

// NewShell wires a shell against the real OS: process environment, working
// directory, standard streams and filesystem.
func NewShell(cfg *config.Configuration) (*Shell, error) {
	env := &venv.OSEnv{}
	fs := afero.NewOsFs()
	plat := platform.Detect()

	if !cfg.Color {
		color.NoColor = true
	}

	home, err := env.UserHomeDir()
	if err != nil {
		home = ""
	}

	var toClose listCloser

	// The event log is best-effort; the shell works without it.
	var lg *logger.Logger
	logPath := config.ExpandHome(cfg.LogFile, home)
	if err := fs.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if fd, err := fs.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			lg = logger.NewJSONLinesLogger(fd)
			toClose = append(toClose, fd)
		}
	}

	rl, err := readline.NewEx(&readline.Config{})
	if err != nil {
		toClose.Close()
		return nil, err
	}
	toClose = append(toClose, rl)

	executor := &execute.Executor{
		Platform:   plat,
		PosixShell: cfg.PosixShell,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}

	return &Shell{
		Config: cfg,
		Env:    env,
		Fs:     fs,
		Interp: &interp.Interpreter{
			Platform: plat,
			Expander: expand.New(fs),
			Executor: executor,
			Log:      lg,
		},
		History:  history.New(fs, config.ExpandHome(cfg.HistoryFile, home), cfg.HistoryMax),
		Log:      lg,
		Readline: rl,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		toClose:  toClose,
	}, nil
}

// Prompt renders the current directory, home abbreviated to ~, plus the
// configured suffix.
func (s *Shell) Prompt() string {
	pwd, err := s.Env.Getwd()
	if err != nil {
		pwd = "?"
	}
	if home, err := s.Env.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}

	return colorPrompt.Sprintf("%s%s", pwd, s.Config.PromptSuffix)
}

// Run reads lines until EOF or exit. No error from a command ever ends the
// loop; only input errors do.
func (s *Shell) Run(ctx context.Context) error {
	s.ctx = ctx

	if err := s.History.Load(); err != nil {
		s.warnf("Could not load history: %v", err)
	}
	for _, line := range s.History.Entries() {
		_ = s.Readline.SaveHistory(line)
	}

	s.Log.SessionStart(s.Interp.Platform.String())
	fmt.Fprintln(s.stdout, colorBold.Sprintf("minishell (%s)", s.Interp.Platform))
	s.infof("Type 'help' for commands, 'exit' to quit")

	for !s.quit {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			s.quit = true
			continue
		case err == readline.ErrInterrupt:
			s.infof("Use 'exit' to quit")
			continue
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.History.Add(line)
		_ = s.Readline.SaveHistory(line)

		s.Dispatch(line)
	}

	if err := s.History.Save(); err != nil {
		s.warnf("Could not save history: %v", err)
	}
	fmt.Fprintln(s.stdout, colorInfo.Sprint("Goodbye!"))
	return nil
}

// Dispatch routes one non-empty input line: builtins first, everything else
// through the interpretation pipeline. Builtin arguments get $VAR expansion;
// pipeline lines are passed raw so the host shell does its own expansion.
func (s *Shell) Dispatch(line string) {
	tokens := shellparse.Split(line)
	if len(tokens) == 0 {
		return
	}

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		for i, tok := range tokens {
			tokens[i] = s.Env.ExpandEnv(tok)
		}
		builtin.Main(s, tokens)
		return
	}

	s.reportOutcome(s.Interp.Run(s.context(), line))
}

func (s *Shell) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *Shell) reportOutcome(outcome execute.Outcome) {
	switch outcome.Status {
	case execute.Failed:
		s.errorf("Command failed (Code %d)", outcome.ExitCode)
	case execute.LaunchError:
		s.errorf("%v", outcome.Err)
	}
}

func (s *Shell) infof(format string, args ...interface{}) {
	fmt.Fprintln(s.stdout, colorInfo.Sprintf("[INFO] "+format, args...))
}

func (s *Shell) warnf(format string, args ...interface{}) {
	fmt.Fprintln(s.stderr, colorWarn.Sprintf("[WARNING] "+format, args...))
}

func (s *Shell) errorf(format string, args ...interface{}) {
	fmt.Fprintln(s.stderr, colorError.Sprintf("[ERROR] "+format, args...))
}

func (s *Shell) Close() error {
	return s.toClose.Close()
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
