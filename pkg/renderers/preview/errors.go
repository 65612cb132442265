package preview

import "errors"

var (
	// ErrAborted signals the user aborted the session (e.g., Ctrl+C).
	ErrAborted = errors.New("preview: aborted")
)
