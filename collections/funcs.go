package collections

// Package-level generic functions for operations that change the element
// type. Go methods cannot introduce their own type parameters.

// Map applies fn to every item and returns a new Collection[U].
//
//	labels := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}
