package interp

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhii767/Minishell/core/execute"
	"github.com/abhii767/Minishell/core/expand"
	"github.com/abhii767/Minishell/core/logger"
	"github.com/abhii767/Minishell/core/platform"
)

func testInterpreter(t *testing.T, fs afero.Fs) (*Interpreter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}

	var out, logBuf bytes.Buffer
	return &Interpreter{
		Platform: platform.Detect(),
		Expander: expand.New(fs),
		Executor: &execute.Executor{
			Platform:   platform.Detect(),
			PosixShell: "/bin/sh",
			Stdout:     &out,
			Stderr:     &out,
		},
		Log: logger.NewJSONLinesLogger(&logBuf),
	}, &out, &logBuf
}

func TestRunEcho(t *testing.T) {
	it, out, _ := testInterpreter(t, afero.NewMemMapFs())

	outcome := it.Run(context.Background(), "echo hello world")

	assert.Equal(t, execute.Success, outcome.Status)
	assert.Equal(t, "hello world\n", out.String())
}

func TestRunLogsPipelineStages(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/a.txt", []byte("x"), 0644))

	it, _, logBuf := testInterpreter(t, fs)

	it.Run(context.Background(), "echo /docs/*.txt")

	var le logger.LogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logBuf.Bytes()), &le))
	assert.Equal(t, "echo /docs/*.txt", le.Raw)
	assert.Equal(t, "echo /docs/*.txt", le.Translated)
	assert.Equal(t, "echo /docs/a.txt", le.Expanded)
	assert.Equal(t, "success", le.Outcome)
}

func TestRunFailedExit(t *testing.T) {
	it, _, _ := testInterpreter(t, afero.NewMemMapFs())

	outcome := it.Run(context.Background(), "exit 7")

	assert.Equal(t, execute.Failed, outcome.Status)
	assert.Equal(t, 7, outcome.ExitCode)
}

func TestRunEmptyLineIsNoop(t *testing.T) {
	it, out, logBuf := testInterpreter(t, afero.NewMemMapFs())

	outcome := it.Run(context.Background(), "   ")

	assert.Equal(t, execute.Success, outcome.Status)
	assert.Empty(t, out.String())
	assert.Empty(t, logBuf.String())
}
