// Package execute runs resolved command lines in a host shell and classifies
// the result.
package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/abhii767/Minishell/core/platform"
)

// Status tags an Outcome.
type Status string

const (
	// Success means the child ran and exited zero.
	Success Status = "success"
	// Failed means the child ran but reported a non-zero exit status.
	Failed Status = "failed"
	// LaunchError means the child could not be started at all.
	LaunchError Status = "launch_error"
)

// Outcome reports how a single execution attempt ended. It is the only
// result type that crosses the executor boundary; launch failures are
// carried here rather than thrown as unstructured errors.
type Outcome struct {
	Status   Status
	ExitCode int
	Err      error // underlying OS error, set for LaunchError only
}

// OK reports whether the command ran and exited zero.
func (o Outcome) OK() bool {
	return o.Status == Success
}

func (o Outcome) String() string {
	switch o.Status {
	case Failed:
		return fmt.Sprintf("failed (code %d)", o.ExitCode)
	case LaunchError:
		return fmt.Sprintf("launch error: %v", o.Err)
	default:
		return "success"
	}
}

// Executor spawns host-shell children. Standard streams are inherited from
// the configured writers so interactive programs behave normally.
type Executor struct {
	Platform   platform.ID
	PosixShell string // optional shell override for non-Windows hosts

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs commandLine in the host shell and blocks until the child
// terminates. Every call is a single independent attempt; retries are the
// caller's business. Cancelling ctx kills the child.
func (e *Executor) Execute(ctx context.Context, commandLine string) Outcome {
	argv := e.Platform.ShellArgv(commandLine, e.PosixShell)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Outcome{Status: Success}
	case errors.As(err, &exitErr):
		return Outcome{Status: Failed, ExitCode: exitErr.ExitCode()}
	default:
		return Outcome{Status: LaunchError, Err: err}
	}
}
