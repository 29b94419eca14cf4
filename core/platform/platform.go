// Package platform identifies the host OS family and its command interpreter.
package platform

import "runtime"

// ID is the host OS family used to pick command translations. It is resolved
// once at startup and never changes for the process lifetime.
type ID string

const (
	Windows ID = "Windows"
	Linux   ID = "Linux"
	Darwin  ID = "Darwin"
	Other   ID = "Other"
)

// Detect resolves the platform from the Go runtime.
func Detect() ID {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Other
	}
}

// DefaultPosixShell is used on non-Windows hosts when the configuration
// doesn't name a shell.
const DefaultPosixShell = "/bin/bash"

// ShellArgv builds the host shell invocation that runs script as a single
// command line: the system command interpreter on Windows, a POSIX shell
// elsewhere. posixShell overrides the POSIX shell path when non-empty.
func (id ID) ShellArgv(script, posixShell string) []string {
	if id == Windows {
		return []string{"cmd", "/C", script}
	}

	shell := posixShell
	if shell == "" {
		shell = DefaultPosixShell
	}
	return []string{shell, "-c", script}
}

func (id ID) String() string {
	return string(id)
}
