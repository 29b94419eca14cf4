package core

import (
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhii767/Minishell/core/execute"
	"github.com/abhii767/Minishell/core/expand"
	"github.com/abhii767/Minishell/core/interp"
	"github.com/abhii767/Minishell/core/platform"
)

func TestPrompt(t *testing.T) {
	s, _ := testShell(t)

	assert.Equal(t, "~ >>> ", s.Prompt())

	require.NoError(t, s.Env.Chdir("/home/user/projects"))
	assert.Equal(t, "~/projects >>> ", s.Prompt())

	require.NoError(t, s.Env.Chdir("/etc"))
	assert.Equal(t, "/etc >>> ", s.Prompt())
}

func TestDispatchExpandsEnvForBuiltins(t *testing.T) {
	s, out := testShell(t)
	require.NoError(t, s.Env.Setenv("NAME", "world"))

	s.Dispatch("echo hello $NAME")

	assert.Equal(t, "hello world\n", out.String())
}

func TestDispatchRmStaysInProcess(t *testing.T) {
	// No interpreter attached: the line must never leave the shell. Handing
	// "rm dir" to the host would run a translated file-removal command that
	// cannot delete a directory at all.
	s, out := testShell(t)
	require.NoError(t, s.Fs.Mkdir("/home/user/empty", 0o755))

	s.Dispatch("rm /home/user/empty")

	exists, err := afero.DirExists(s.Fs, "/home/user/empty")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Contains(t, out.String(), "Directory '/home/user/empty' removed.")
}

func TestDispatchEmptyLine(t *testing.T) {
	s, out := testShell(t)

	s.Dispatch("   ")

	assert.Empty(t, out.String())
}

func attachInterpreter(t *testing.T, s *Shell) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}

	s.Interp = &interp.Interpreter{
		Platform: platform.Detect(),
		Expander: expand.New(s.Fs),
		Executor: &execute.Executor{
			Platform:   platform.Detect(),
			PosixShell: "/bin/sh",
			Stdout:     s.stdout,
			Stderr:     s.stderr,
		},
	}
}

func TestDispatchPipelineSuccess(t *testing.T) {
	s, out := testShell(t)
	attachInterpreter(t, s)

	s.Dispatch("true")

	assert.Empty(t, out.String())
}

func TestDispatchReportsNonZeroExit(t *testing.T) {
	s, out := testShell(t)
	attachInterpreter(t, s)

	s.Dispatch("false")

	assert.Equal(t, "[ERROR] Command failed (Code 1)\n", out.String())
}

func TestDispatchReportsLaunchError(t *testing.T) {
	s, out := testShell(t)
	attachInterpreter(t, s)
	s.Interp.Executor.PosixShell = "/nonexistent/shell"

	s.Dispatch("true")

	assert.Contains(t, out.String(), "[ERROR] ")
}

func TestRunBuiltinUsesPipeline(t *testing.T) {
	s, out := testShell(t)
	attachInterpreter(t, s)

	status := Run(s, []string{"run", "printf", "hi"})

	assert.Equal(t, 0, status)
	assert.Equal(t, "hi", out.String())
}

func TestListCloser(t *testing.T) {
	var lc listCloser
	assert.Nil(t, lc.Close())
}
