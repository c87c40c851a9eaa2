package ordering

// LIFO is a slice-backed last-in-first-out strategy.
type LIFO[T any] struct {
	data []T
}

// NewLIFO creates an empty LIFO strategy.
func NewLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{}
}

// Push appends v to the top of the stack. Amortized complexity: O(1).
func (l *LIFO[T]) Push(v T) {
	l.data = append(l.data, v)
}

// Pop removes and returns the most recently pushed value.
// The second result is false when empty. Complexity: O(1).
func (l *LIFO[T]) Pop() (T, bool) {
	var zero T
	n := len(l.data)
	if n == 0 {
		return zero, false
	}
	v := l.data[n-1]
	l.data[n-1] = zero
	l.data = l.data[:n-1]
	return v, true
}

// Len returns the number of stored elements.
func (l *LIFO[T]) Len() int {
	return len(l.data)
}
