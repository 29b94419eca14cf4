package execute

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhii767/Minishell/core/platform"
)

func testExecutor(t *testing.T) (*Executor, *bytes.Buffer) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}

	var out bytes.Buffer
	return &Executor{
		Platform:   platform.Detect(),
		PosixShell: "/bin/sh",
		Stdout:     &out,
		Stderr:     &out,
	}, &out
}

func TestExecuteSuccess(t *testing.T) {
	e, _ := testExecutor(t)

	outcome := e.Execute(context.Background(), "true")

	assert.Equal(t, Success, outcome.Status)
	assert.True(t, outcome.OK())
	assert.Equal(t, 0, outcome.ExitCode)
}

func TestExecuteFailedExitCode(t *testing.T) {
	e, _ := testExecutor(t)

	outcome := e.Execute(context.Background(), "exit 7")

	assert.Equal(t, Failed, outcome.Status)
	assert.Equal(t, 7, outcome.ExitCode)
	assert.False(t, outcome.OK())
}

func TestExecuteInheritsStreams(t *testing.T) {
	e, out := testExecutor(t)

	outcome := e.Execute(context.Background(), "echo hello")

	assert.Equal(t, Success, outcome.Status)
	assert.Equal(t, "hello\n", out.String())
}

func TestExecuteLaunchError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}

	e := &Executor{
		Platform:   platform.Linux,
		PosixShell: "/nonexistent/shell",
	}

	outcome := e.Execute(context.Background(), "true")

	assert.Equal(t, LaunchError, outcome.Status)
	assert.NotNil(t, outcome.Err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", Outcome{Status: Success}.String())
	assert.Equal(t, "failed (code 7)", Outcome{Status: Failed, ExitCode: 7}.String())
}
