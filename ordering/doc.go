// Package ordering provides the retrieval-order strategies used by
// closequeue: FIFO, LIFO and priority. Each satisfies the closequeue.Strategy
// interface.
//
// Strategies are plain containers with no locking of their own; the queue
// core calls them under its lock. They are interchangeable: the close,
// capacity and blocking behavior of a queue is identical across all three,
// only element retrieval order differs.
package ordering
