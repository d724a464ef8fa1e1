package debate

import "errors"

var (
	// ErrCancelled marks a debate stopped by the user or a client
	// disconnect.
	ErrCancelled = errors.New("debate cancelled")

	// ErrAlreadyRunning is returned when a stream is requested for a debate
	// that already has a live execution.
	ErrAlreadyRunning = errors.New("debate is already running")

	// ErrInvalidStatus is returned when an operation does not apply to the
	// debate's current status (streaming a completed debate, deleting an
	// active one).
	ErrInvalidStatus = errors.New("operation not allowed in current debate status")
)
