package tasks

import "errors"

// ErrUnknownFormat rejects export formats the queue has no handler for.
var ErrUnknownFormat = errors.New("tasks: unknown export format")
