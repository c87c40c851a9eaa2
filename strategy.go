package closequeue

// Strategy determines the retrieval order of buffered items. The queue core
// never compares elements itself; FIFO, LIFO and priority orderings are
// interchangeable implementations of this interface.
//
// Implementations do not need to be safe for concurrent use: the queue calls
// them only while holding its own lock. They must not block.
type Strategy[T any] interface {
	// Push stores v.
	Push(v T)

	// Pop removes and returns the next element per the strategy's order.
	// The second result is false when no elements are stored.
	Pop() (T, bool)

	// Len returns the number of stored elements.
	Len() int
}
