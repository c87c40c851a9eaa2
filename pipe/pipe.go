package pipe

import (
	"context"
	"iter"

	"github.com/sirupsen/logrus"

	base "github.com/xyhelper/closequeue"
)

type closeMode int

const (
	// markLast closes the queue atomically with the final element.
	markLast closeMode = iota
	// closeAfter calls Close once the source is exhausted.
	closeAfter
	// leaveOpen never closes the queue.
	leaveOpen
)

type config struct {
	mode closeMode
	log  logrus.FieldLogger
}

// Option configures Fill and Start.
type Option func(*config)

// WithoutClose leaves the queue open after the source is exhausted. Use it
// when several sources feed one queue; close explicitly once all are done.
func WithoutClose() Option {
	return func(c *config) { c.mode = leaveOpen }
}

// CloseOnly closes the queue after the source is exhausted instead of
// marking the final element as last. Required when the same queue is also
// fed by other producers that may still insert between the final element
// and the close.
func CloseOnly() Option {
	return func(c *config) { c.mode = closeAfter }
}

// WithLogger sets the logger Start uses to report abnormal termination.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{mode: markLast, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Drain returns a lazy sequence of the queue's items. Iteration ends when
// the queue reports closed with an empty buffer, or when ctx ends. The
// sequence consumes queue state: it is finite iff the queue is eventually
// closed, and not restartable.
func Drain[T any](ctx context.Context, q *base.Queue[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := q.Get(ctx)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Fill puts every element of src into q. By default the final element is
// inserted via PutLast, closing the queue atomically with it; an empty src
// just closes the queue. See WithoutClose and CloseOnly for the other
// termination modes.
//
// Fill returns the first put error: ErrClosed when the queue was closed
// underneath it, or ctx.Err() when ctx ended. The element being put at that
// point is not inserted.
func Fill[T any](ctx context.Context, q *base.Queue[T], src iter.Seq[T], opts ...Option) error {
	cfg := newConfig(opts)

	if cfg.mode == markLast {
		// One element of lookahead so the final element can be marked.
		var pending T
		have := false
		for v := range src {
			if have {
				if err := q.Put(ctx, pending); err != nil {
					return err
				}
			}
			pending, have = v, true
		}
		if have {
			return q.PutLast(ctx, pending)
		}
		q.Close()
		return nil
	}

	for v := range src {
		if err := q.Put(ctx, v); err != nil {
			return err
		}
	}
	if cfg.mode == closeAfter {
		q.Close()
	}
	return nil
}
