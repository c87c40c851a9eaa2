package closequeue

import (
	"context"
	"sync"

	"github.com/xyhelper/closequeue/internal/telemetry"
	"github.com/xyhelper/closequeue/ordering"
)

// Queue is a bounded, closeable blocking queue. Ordering of retrieved items
// is delegated to a Strategy; the zero value is not ready for use, construct
// via New or NewWith.
//
// The queue is created open. It becomes closed either through Close or
// through a successful PutLast, and stays closed for its lifetime. Items
// buffered at close time remain retrievable; Get reports ErrClosed only once
// the buffer is empty.
type Queue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	allDone  *sync.Cond

	items    Strategy[T]
	capacity int
	closed   bool

	// unfinished counts successful puts not yet acknowledged via TaskDone.
	unfinished int
}

// New creates an open FIFO queue holding at most capacity items.
// A capacity of 0 or less means the queue is unbounded.
func New[T any](capacity int) *Queue[T] {
	return NewWith[T](capacity, ordering.NewFIFO[T]())
}

// NewWith creates an open queue with the given ordering strategy.
// A capacity of 0 or less means the queue is unbounded.
func NewWith[T any](capacity int, s Strategy[T]) *Queue[T] {
	if s == nil {
		panic("closequeue: nil strategy")
	}
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T]{items: s, capacity: capacity}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	q.allDone = sync.NewCond(&q.mu)
	return q
}

// Put inserts v, blocking while the queue is at capacity. It fails with
// ErrClosed if the queue is or becomes closed before the item is inserted,
// and with ctx.Err() if ctx ends first. A put aborted by close or
// cancellation never inserts its item.
func (q *Queue[T]) Put(ctx context.Context, v T) (err error) {
	finish := telemetry.TracePut()
	defer func() { finish(err) }()
	return q.put(ctx, v, true, false)
}

// PutLast inserts v and closes the queue as a single atomic step: once the
// insertion succeeds no other producer can insert after it, and no consumer
// observes the queue as closed before v is visible in the buffer. Blocking
// behavior matches Put. On an already closed queue it fails with ErrClosed.
func (q *Queue[T]) PutLast(ctx context.Context, v T) (err error) {
	finish := telemetry.TracePut()
	defer func() { finish(err) }()
	return q.put(ctx, v, true, true)
}

// TryPut inserts v without blocking. It fails with ErrClosed on a closed
// queue and with ErrFull on an open queue at capacity.
func (q *Queue[T]) TryPut(v T) (err error) {
	finish := telemetry.TracePut()
	defer func() { finish(err) }()
	return q.put(context.Background(), v, false, false)
}

// TryPutLast is the non-blocking form of PutLast.
func (q *Queue[T]) TryPutLast(v T) (err error) {
	finish := telemetry.TracePut()
	defer func() { finish(err) }()
	return q.put(context.Background(), v, false, true)
}

func (q *Queue[T]) put(ctx context.Context, v T, block, last bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.capacity > 0 {
		if !block {
			if q.items.Len() >= q.capacity {
				return ErrFull
			}
		} else {
			for q.items.Len() >= q.capacity && !q.closed {
				if err := ctx.Err(); err != nil {
					return err
				}
				q.waitOn(ctx, q.notFull)
			}
		}
	}
	if q.closed {
		return ErrClosed
	}

	q.items.Push(v)
	q.unfinished++
	if last {
		// Close in the same critical section as the insertion. Both waiter
		// sets are woken: blocked producers must fail with ErrClosed and
		// blocked consumers must either drain or fail.
		q.closed = true
		q.notEmpty.Broadcast()
		q.notFull.Broadcast()
	} else {
		q.notEmpty.Signal()
	}
	return nil
}

// Get removes and returns the next item per the ordering strategy. Buffered
// items are returned regardless of close state; closure never loses data. On
// an empty closed queue Get fails with ErrClosed without blocking. On an
// empty open queue it blocks until an item arrives, the queue closes, or ctx
// ends.
func (q *Queue[T]) Get(ctx context.Context) (v T, err error) {
	finish := telemetry.TraceGet()
	defer func() { finish(err) }()

	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Len() == 0 && !q.closed {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.waitOn(ctx, q.notEmpty)
	}
	if q.items.Len() == 0 {
		var zero T
		return zero, ErrClosed
	}
	v, _ = q.items.Pop()
	q.notFull.Signal()
	return v, nil
}

// TryGet removes and returns the next item without blocking. It fails with
// ErrEmpty on an empty open queue and with ErrClosed on an empty closed one.
func (q *Queue[T]) TryGet() (v T, err error) {
	finish := telemetry.TraceGet()
	defer func() { finish(err) }()

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() == 0 {
		var zero T
		if q.closed {
			return zero, ErrClosed
		}
		return zero, ErrEmpty
	}
	v, _ = q.items.Pop()
	q.notFull.Signal()
	return v, nil
}

// Close closes the queue. Further puts fail with ErrClosed; gets keep
// returning buffered items and fail with ErrClosed once the buffer drains.
// Blocked producers and consumers are woken. Closing a closed queue is a
// no-op, so cleanup code can call Close unconditionally.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// IsClosed reports whether the queue is closed.
func (q *Queue[T]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Cap returns the capacity the queue was constructed with; 0 means unbounded.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether the queue is at capacity. An unbounded queue is
// never full.
func (q *Queue[T]) IsFull() bool {
	if q.capacity <= 0 {
		return false
	}
	return q.Len() >= q.capacity
}

// waitOn blocks on c until woken. Called with q.mu held; the lock is
// released while waiting and reacquired before returning. When ctx carries a
// deadline or cancellation, a short-lived watcher broadcasts on ctx.Done()
// so the wait exits promptly; callers re-check their predicate and ctx in a
// loop, which also covers spurious wakeups.
func (q *Queue[T]) waitOn(ctx context.Context, c *sync.Cond) {
	if ctx.Done() == nil {
		c.Wait()
		return
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			q.mu.Lock()
			c.Broadcast()
			q.mu.Unlock()
		case <-done:
		}
	}()
	c.Wait()
	close(done)
}
