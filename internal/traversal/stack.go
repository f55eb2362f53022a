package traversal

// stack is a generic LIFO holding the scheduled work of the walk. It is only
// ever touched from the single walking goroutine and needs no locking.
type stack[T any] struct {
	items []T
}

// newStack returns a pointer to a new empty [stack].
func newStack[T any]() *stack[T] {
	return &stack[T]{}
}

// Push adds items on top of the stack.
func (s *stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// Pop removes and returns the top item, reporting whether one was present.
func (s *stack[T]) Pop() (T, bool) {
	var zero T

	if len(s.items) == 0 {
		return zero, false
	}

	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return item, true
}

// Len returns the number of remaining items.
func (s *stack[T]) Len() int {
	return len(s.items)
}
