package ordering

// Priority is a binary-heap strategy. Pop returns the least element
// according to the comparison the heap was constructed with; for a
// max-priority queue, invert the comparison.
type Priority[T any] struct {
	data []T
	less func(a, b T) bool
}

// NewPriority creates an empty priority strategy ordered by less.
func NewPriority[T any](less func(a, b T) bool) *Priority[T] {
	if less == nil {
		panic("ordering: nil comparison")
	}
	return &Priority[T]{less: less}
}

// Push stores v. Complexity: O(log n).
func (p *Priority[T]) Push(v T) {
	p.data = append(p.data, v)
	p.up(len(p.data) - 1)
}

// Pop removes and returns the least element.
// The second result is false when empty. Complexity: O(log n).
func (p *Priority[T]) Pop() (T, bool) {
	var zero T
	n := len(p.data)
	if n == 0 {
		return zero, false
	}
	v := p.data[0]
	p.data[0] = p.data[n-1]
	p.data[n-1] = zero
	p.data = p.data[:n-1]
	p.down(0)
	return v, true
}

// Len returns the number of stored elements.
func (p *Priority[T]) Len() int {
	return len(p.data)
}

func (p *Priority[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !p.less(p.data[i], p.data[parent]) {
			break
		}
		p.data[i], p.data[parent] = p.data[parent], p.data[i]
		i = parent
	}
}

func (p *Priority[T]) down(i int) {
	n := len(p.data)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		least := left
		if right := left + 1; right < n && p.less(p.data[right], p.data[left]) {
			least = right
		}
		if !p.less(p.data[least], p.data[i]) {
			break
		}
		p.data[i], p.data[least] = p.data[least], p.data[i]
		i = least
	}
}
