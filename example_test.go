package closequeue

import (
	"context"
	"fmt"

	"github.com/xyhelper/closequeue/ordering"
)

// Example showing that buffered items survive close.
func Example_basic() {
	q := New[int](0)
	q.TryPut(1)
	q.TryPut(2)
	q.Close()

	for {
		v, err := q.Get(context.Background())
		if err != nil {
			fmt.Println(IsClosed(err))
			return
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// true
}

// Example closing the queue atomically with the final item.
func Example_lastItem() {
	q := New[string](0)
	ctx := context.Background()
	q.Put(ctx, "a")
	q.PutLast(ctx, "b")

	fmt.Println(q.TryPut("c") == ErrClosed)
	v1, _ := q.Get(ctx)
	v2, _ := q.Get(ctx)
	fmt.Println(v1, v2)
	// Output:
	// true
	// a b
}

// Example using a priority strategy: smallest element first.
func Example_priority() {
	q := NewWith[int](0, ordering.NewPriority[int](func(a, b int) bool { return a < b }))
	q.TryPut(3)
	q.TryPut(1)
	q.TryPut(2)
	for !q.IsEmpty() {
		v, _ := q.TryGet()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Example for the non-blocking error taxonomy.
func Example_errorHandling() {
	q := New[int](1)

	fmt.Println(q.TryGet()) // empty and open
	q.TryPut(1)
	fmt.Println(q.TryPut(2)) // full and open
	q.Close()
	fmt.Println(q.TryPut(3)) // closed wins over full
	fmt.Println(q.TryGet())  // buffered item still comes out
	fmt.Println(q.TryGet())  // drained and closed
	// Output:
	// 0 closequeue: queue is empty
	// closequeue: queue is full
	// closequeue: queue is closed
	// 1 <nil>
	// 0 closequeue: queue is closed
}
