package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode reports err on stderr and maps it to a process exit code. It is the
// only place the tools decide how to terminate.
func ExitCode(name string, err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintf(stderr, "%s: %s\n", name, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "%s: %v\n", name, err)
	return 1
}
