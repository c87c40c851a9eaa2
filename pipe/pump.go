package pipe

import (
	"context"
	"iter"

	base "github.com/xyhelper/closequeue"
)

// Pump is a handle to a background Fill started with Start.
type Pump[T any] struct {
	q    *base.Queue[T]
	done chan struct{}
	err  error
}

// Start runs Fill(ctx, q, src, opts...) on its own goroutine. If q is nil an
// unbounded FIFO queue is created; retrieve it via Queue. This suits lazily
// produced sources: the goroutine blocks on the queue's capacity while
// consumers drain it.
//
// A fill that stops before exhausting src (queue closed underneath it, or
// ctx ended) is reported on the handle and logged via the configured logger.
func Start[T any](ctx context.Context, q *base.Queue[T], src iter.Seq[T], opts ...Option) *Pump[T] {
	cfg := newConfig(opts)
	if q == nil {
		q = base.New[T](0)
	}
	p := &Pump[T]{q: q, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		if err := Fill(ctx, q, src, opts...); err != nil {
			p.err = err
			cfg.log.WithError(err).Warn("pipe: fill stopped before source was exhausted")
		}
	}()
	return p
}

// Queue returns the queue being filled.
func (p *Pump[T]) Queue() *base.Queue[T] {
	return p.q
}

// Done is closed when the fill goroutine has finished.
func (p *Pump[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the fill goroutine finishes and returns its error, if
// any.
func (p *Pump[T]) Wait() error {
	<-p.done
	return p.err
}

// Err returns the fill error. Only valid after Done is closed.
func (p *Pump[T]) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}
