package collections

// MutableSeq is an ordered container that grows in place.
//
// Unlike [Collection], appending mutates the receiver; it is therefore not
// safe for concurrent writers. Use [MutableSeq.Freeze] to obtain an
// immutable snapshot.
type MutableSeq[T any] struct {
	items []T
}

// NewMutableSeq creates an empty MutableSeq, optionally seeded with items
// (copied).
func NewMutableSeq[T any](items ...T) *MutableSeq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &MutableSeq[T]{items: dst}
}

// AppendInPlace pushes item onto the back of s and returns s.
func (s *MutableSeq[T]) AppendInPlace(item T) *MutableSeq[T] {
	s.items = append(s.items, item)
	return s
}

// Len returns the number of items.
func (s *MutableSeq[T]) Len() int { return len(s.items) }

// All returns a copy of the items.
func (s *MutableSeq[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn(item, index) for every item in order.
func (s *MutableSeq[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// Freeze returns an immutable Collection holding a copy of the items.
func (s *MutableSeq[T]) Freeze() *Collection[T] {
	return From(s.items)
}

// String returns the same representation as [Collection.String].
func (s *MutableSeq[T]) String() string {
	return s.Freeze().String()
}
