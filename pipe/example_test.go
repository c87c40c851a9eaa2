package pipe

import (
	"context"
	"fmt"
	"slices"

	base "github.com/xyhelper/closequeue"
)

// Example of the full producer/consumer round trip: a background pump fills
// the queue and closes it with the final element, the consumer drains until
// end-of-stream.
func Example() {
	p := Start(context.Background(), nil, slices.Values([]string{"a", "b", "c"}))

	for v := range Drain(context.Background(), p.Queue()) {
		fmt.Println(v)
	}
	fmt.Println(p.Wait())
	// Output:
	// a
	// b
	// c
	// <nil>
}

// Example feeding one queue from two sources; the queue is closed explicitly
// once both are done.
func Example_multipleSources() {
	q := base.New[int](0)
	ctx := context.Background()

	p1 := Start(ctx, q, slices.Values([]int{1, 2}), WithoutClose())
	p1.Wait()
	p2 := Start(ctx, q, slices.Values([]int{3}), WithoutClose())
	p2.Wait()
	q.Close()

	fmt.Println(slices.Collect(Drain(ctx, q)))
	// Output:
	// [1 2 3]
}
