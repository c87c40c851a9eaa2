// Package pipe connects closequeue queues with iterator sequences.
//
// Drain turns a queue into a lazy sequence that ends at close; Fill feeds a
// sequence into a queue, by default closing it atomically with the final
// element; Start runs Fill on its own goroutine and returns a handle to wait
// on. All three are built entirely on the queue's public Put/Get/Close
// contract and treat ErrClosed as the normal end-of-stream signal.
package pipe
