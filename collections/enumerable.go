package collections

// Enumerable is the read-only surface shared by [Collection] and
// [MutableSeq].
//
// Accept Enumerable in functions that only read values in order, so callers
// can pass either container without copying.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Each calls fn(item, index) for every item in order.
	Each(fn func(T, int))

	// String returns a JSON representation of the items.
	String() string
}

var (
	_ Enumerable[int] = (*Collection[int])(nil)
	_ Enumerable[int] = (*MutableSeq[int])(nil)
)
