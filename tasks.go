package closequeue

import (
	"context"
	"errors"
)

// ErrTaskDone is returned by TaskDone when it is called more times than
// items were put.
var ErrTaskDone = errors.New("closequeue: TaskDone called too many times")

// TaskDone marks one previously retrieved item as fully processed. Used by
// consumers together with Join. Each successful put adds one unfinished
// task; TaskDone retires one.
func (q *Queue[T]) TaskDone() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.unfinished == 0 {
		return ErrTaskDone
	}
	q.unfinished--
	if q.unfinished == 0 {
		q.allDone.Broadcast()
	}
	return nil
}

// Join blocks until every item ever put has been retired via TaskDone, or
// until ctx ends. Closing the queue does not retire tasks; Join and the
// close machinery are independent.
func (q *Queue[T]) Join(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.unfinished > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.waitOn(ctx, q.allDone)
	}
	return nil
}

// Unfinished returns the number of put items not yet retired via TaskDone.
func (q *Queue[T]) Unfinished() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.unfinished
}
