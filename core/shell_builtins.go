package core

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/abhii767/Minishell/core/config"
	"github.com/abhii767/Minishell/core/shellparse"
)

// AllBuiltins holds a list of all registered shell builtins. Builtins are
// the commands that must run inside the shell process plus the unified file
// helpers: pwd answers from the shell's own working directory, and rm keeps
// the safe-removal semantics (refuse non-empty directories without -r) that
// the translated native command cannot offer. Other table verbs always go
// through the interpretation pipeline.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin. With no argument it goes home.
func Cd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		home := s.Env.Getenv("HOME")
		if home == "" {
			home, _ = s.Env.UserHomeDir()
		}
		args = append(args, home)
		fallthrough
	case 2:
		home, _ := s.Env.UserHomeDir()
		if err := s.Env.Chdir(config.ExpandHome(args[1], home)); err != nil {
			s.errorf("Directory not found: %s", args[1])
			return 1
		}
		wd, _ := s.Env.Getwd()
		s.infof("Changed directory to %s", wd)
	default:
		s.errorf("%s: too many arguments", args[0])
		return 1
	}
	return 0
}

// Pwd prints the shell's working directory. The directory lives in the shell
// process, so a child spawned to answer would report its own, not ours.
func Pwd(s *Shell, args []string) int {
	wd, err := s.Env.Getwd()
	if err != nil {
		s.errorf("%v", err)
		return 1
	}
	s.infof("Current Directory: %s", wd)
	return 0
}

// Mkdir creates directories, parents included.
func Mkdir(s *Shell, args []string) int {
	if len(args) < 2 {
		s.errorf("Usage: mkdir NAME...")
		return 1
	}

	for _, dir := range args[1:] {
		if err := s.Fs.MkdirAll(dir, 0o755); err != nil {
			s.errorf("%v", err)
			return 1
		}
		s.infof("Directory '%s' created.", dir)
	}
	return 0
}

// Touch creates files or updates their timestamps.
func Touch(s *Shell, args []string) int {
	if len(args) < 2 {
		s.errorf("Usage: touch FILE...")
		return 1
	}

	now := time.Now()
	for _, name := range args[1:] {
		fd, err := s.Fs.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			s.errorf("%v", err)
			return 1
		}
		fd.Close()
		_ = s.Fs.Chtimes(name, now, now)
		s.infof("File '%s' created or updated.", name)
	}
	return 0
}

// Rm removes files and directories. It refuses a non-empty directory unless
// -r is given; the translated native command would either delete it outright
// or silently skip it, depending on the platform.
func Rm(s *Shell, args []string) int {
	opts := getopt.New()
	recursive := opts.Bool('r', "remove directories and their contents recursively")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	err := opts.Getopt(args, nil)
	if err != nil || *helpOpt || len(opts.Args()) == 0 {
		if err != nil {
			s.errorf("%v", err)
		}
		fmt.Fprintln(s.stdout, "usage: rm [-r] TARGET...")
		fmt.Fprintln(s.stdout, "Remove files or directories.")
		fmt.Fprintln(s.stdout)
		fmt.Fprintln(s.stdout, "Flags:")
		opts.PrintOptions(s.stdout)
		return 1
	}

	for _, name := range opts.Args() {
		info, err := s.Fs.Stat(name)
		if err != nil {
			s.errorf("File or directory not found: %s", name)
			return 1
		}

		if !info.IsDir() {
			if err := s.Fs.Remove(name); err != nil {
				s.errorf("%v", err)
				return 1
			}
			s.infof("File '%s' removed.", name)
			continue
		}

		if *recursive {
			if err := s.Fs.RemoveAll(name); err != nil {
				s.errorf("%v", err)
				return 1
			}
		} else {
			entries, err := afero.ReadDir(s.Fs, name)
			if err != nil {
				s.errorf("%v", err)
				return 1
			}
			if len(entries) > 0 {
				s.errorf("Directory not empty: %s (use rm -r)", name)
				return 1
			}
			if err := s.Fs.Remove(name); err != nil {
				s.errorf("%v", err)
				return 1
			}
		}
		s.infof("Directory '%s' removed.", name)
	}
	return 0
}

// Echo prints its arguments. Keeping it in-process gives $VAR expansion the
// same meaning on every platform.
func Echo(s *Shell, args []string) int {
	fmt.Fprintln(s.stdout, strings.Join(args[1:], " "))
	return 0
}

// Run feeds the rest of the line to the interpretation pipeline.
func Run(s *Shell, args []string) int {
	if len(args) < 2 {
		s.errorf("Usage: run COMMAND...")
		return 1
	}

	outcome := s.Interp.Run(s.context(), shellparse.Join(args[1:]))
	s.reportOutcome(outcome)
	if !outcome.OK() {
		return 1
	}
	return 0
}

// Export sets environment variables from VAR=value arguments.
func Export(s *Shell, args []string) int {
	if len(args) < 2 {
		s.errorf("Usage: export VAR=value")
		return 1
	}

	status := 0
	for _, arg := range args[1:] {
		if !strings.Contains(arg, "=") {
			s.errorf("Invalid format: %s. Use VAR=value", arg)
			status = 1
			continue
		}

		parts := strings.SplitN(arg, "=", 2)
		if err := s.Env.Setenv(parts[0], parts[1]); err != nil {
			s.errorf("%v", err)
			status = 1
			continue
		}
		s.infof("Set %s=%s", parts[0], parts[1])
	}
	return status
}

// Getenv prints one environment variable.
func Getenv(s *Shell, args []string) int {
	if len(args) != 2 {
		s.errorf("Usage: getenv VAR")
		return 1
	}

	value, ok := s.Env.LookupEnv(args[1])
	if !ok {
		s.errorf("Variable %s not set", args[1])
		return 1
	}
	fmt.Fprintf(s.stdout, "%s=%s\n", args[1], value)
	return 0
}

// HistoryBuiltin displays or clears the history list.
func HistoryBuiltin(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		if err != nil {
			s.errorf("%v", err)
		}
		fmt.Fprintln(s.stdout, "usage: history [-c]")
		fmt.Fprintln(s.stdout, "Display or clear the command history.")
		fmt.Fprintln(s.stdout)
		fmt.Fprintln(s.stdout, "Flags:")
		opts.PrintOptions(s.stdout)
		return 1
	}

	if *clear {
		s.History.Clear()
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		return 0
	}

	entries := s.History.Entries()
	if len(entries) == 0 {
		s.infof("No history yet.")
		return 0
	}
	for i, line := range entries {
		fmt.Fprintf(s.stdout, "% 5d  %s\n", i+1, line)
	}
	return 0
}

// Help displays the builtin list and pipeline summary.
func Help(s *Shell, args []string) int {
	w := s.stdout
	fmt.Fprintln(w, "minishell: unified commands for every OS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Builtins:")
	fmt.Fprintln(w, "  cd [DIR]            Change directory (default $HOME).")
	fmt.Fprintln(w, "  pwd                 Show the current directory.")
	fmt.Fprintln(w, "  mkdir NAME...       Create directories.")
	fmt.Fprintln(w, "  touch FILE...       Create files or update timestamps.")
	fmt.Fprintln(w, "  rm [-r] TARGET...   Remove files; refuses non-empty dirs without -r.")
	fmt.Fprintln(w, "  echo [TEXT...]      Print text.")
	fmt.Fprintln(w, "  run COMMAND...      Run a command with unified syntax.")
	fmt.Fprintln(w, "  export VAR=value    Set an environment variable.")
	fmt.Fprintln(w, "  getenv VAR          Show an environment variable.")
	fmt.Fprintln(w, "  history [-c]        Show or clear the command history.")
	fmt.Fprintln(w, "  help                Show this help.")
	fmt.Fprintln(w, "  exit                Exit the shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Unified verbs like ls, cp, mv, grep, cat and clear are translated")
	fmt.Fprintln(w, "to this platform's native command, wildcard-expanded, and run in")
	fmt.Fprintln(w, "the host shell. Unknown commands pass through as-is.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ls -l *.py")
	fmt.Fprintln(w, "  run grep 'error' logs/*")
	fmt.Fprintln(w, "  export TEMP=~/temp")
	fmt.Fprintln(w, "  run cp $TEMP/*.txt .")
	return 0
}

// Exit quits the shell after the current line.
func Exit(s *Shell, args []string) int {
	s.quit = true
	return 0
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["pwd"] = ShellBuiltinFunc(Pwd)
	AllBuiltins["mkdir"] = ShellBuiltinFunc(Mkdir)
	AllBuiltins["touch"] = ShellBuiltinFunc(Touch)
	AllBuiltins["rm"] = ShellBuiltinFunc(Rm)
	AllBuiltins["echo"] = ShellBuiltinFunc(Echo)
	AllBuiltins["run"] = ShellBuiltinFunc(Run)
	AllBuiltins["export"] = ShellBuiltinFunc(Export)
	AllBuiltins["getenv"] = ShellBuiltinFunc(Getenv)
	AllBuiltins["history"] = ShellBuiltinFunc(HistoryBuiltin)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
}
