// Package closequeue provides a bounded blocking queue with a permanent,
// race-free close transition.
//
// A Queue behaves like a classic bounded producer/consumer queue until it is
// closed. Closing is one-way: Put on a closed queue fails with ErrClosed,
// while Get keeps returning buffered items until the queue drains, and only
// then fails with ErrClosed. This removes the need for sentinel values in
// multi-consumer pipelines; every consumer observes the same distinguished
// end-of-stream error instead of coordinating over an in-band marker.
//
// A queue is closed either explicitly via Close, or atomically together with
// the insertion of a final item via PutLast: no other producer can insert
// after the last item, and no consumer can observe the queue as closed before
// the last item is visible in the buffer.
//
// Retrieval order is pluggable. The Strategy interface decouples the
// close/blocking machinery from element ordering; the ordering subpackage
// ships FIFO, LIFO and priority implementations.
//
// All methods are safe for concurrent use by multiple goroutines.
package closequeue
