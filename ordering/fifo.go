package ordering

// FIFO is a slice-backed first-in-first-out strategy.
type FIFO[T any] struct {
	data []T
}

// NewFIFO creates an empty FIFO strategy.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{}
}

// Push appends v to the tail. Amortized complexity: O(1).
func (f *FIFO[T]) Push(v T) {
	f.data = append(f.data, v)
}

// Pop removes and returns the head value.
// The second result is false when empty. Amortized complexity: O(1).
func (f *FIFO[T]) Pop() (T, bool) {
	var zero T
	if len(f.data) == 0 {
		return zero, false
	}
	v := f.data[0]
	// Avoid O(n) element moves by reslicing; drop the head reference so the
	// GC can reclaim it.
	f.data[0] = zero
	f.data = f.data[1:]
	return v, true
}

// Len returns the number of stored elements.
func (f *FIFO[T]) Len() int {
	return len(f.data)
}
