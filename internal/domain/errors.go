package domain

import "errors"

// Domain errors represent error conditions in the apiq domain.
// They are wrapped with context and checked with errors.Is.
var (
	// ErrUsage is returned for missing or malformed arguments and flags.
	ErrUsage = errors.New("usage error")

	// ErrIO is returned when a file cannot be read or written, including a
	// corrupt config document.
	ErrIO = errors.New("i/o error")

	// ErrTransport is returned when the request could not be completed:
	// DNS, connection, TLS or timeout failures.
	ErrTransport = errors.New("transport error")

	// ErrProfileNotFound is returned when a named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfile is returned when a profile field holds a value the
	// resolver cannot use.
	ErrInvalidProfile = errors.New("invalid profile field")
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitIO        = 3
	ExitTransport = 4
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrIO):
		return ExitIO
	case errors.Is(err, ErrTransport):
		return ExitTransport
	default:
		return ExitFailure
	}
}
