// Package cmd provides CLI command implementations.
package cmd

import (
	stderrors "errors"

	oerrors "github.com/shopgen/cli/internal/errors"
)

// Exit codes reported by the shopgen binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates a selection or config file failed to
	// parse or validate.
	ExitConfigError = 2

	// ExitFilesystemError indicates a file could not be read or written.
	ExitFilesystemError = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Config Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case stderrors.Is(err, oerrors.ErrConfigParse), stderrors.Is(err, oerrors.ErrValidation):
		return ExitConfigError
	case stderrors.Is(err, oerrors.ErrFilesystem):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}
