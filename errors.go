package closequeue

import (
	"context"
	"errors"
)

// ErrClosed is returned by Put/PutLast on a closed queue and by Get once a
// closed queue has drained. It is the normal end-of-stream signal for
// consumers, not an exceptional condition.
var ErrClosed = errors.New("closequeue: queue is closed")

// ErrFull is returned by TryPut when the queue is open but at capacity.
var ErrFull = errors.New("closequeue: queue is full")

// ErrEmpty is returned by TryGet when the queue is open but has no items.
var ErrEmpty = errors.New("closequeue: queue is empty")

// ErrCanceled is returned by blocking calls when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by blocking calls when the context
// deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsClosed reports whether err is the queue's closed-error.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsContextError reports whether err equals context.Canceled or
// context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
