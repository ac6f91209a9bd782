// Package collections provides the ordered containers that the rest of this
// module materialises values into.
//
// # Overview
//
// [Collection][T] is an immutable ordered wrapper around a slice of T that
// renders itself as a JSON array:
//
//	collections.New(1, 2, 3).String() // → [1,2,3]
//
// [MutableSeq][T] is the append-in-place counterpart. Producers such as
// ranges.Range push values into it one at a time and hand it over as-is, or
// freeze it into a Collection:
//
//	seq := collections.NewMutableSeq[int]()
//	seq.AppendInPlace(1).AppendInPlace(2)
//	frozen := seq.Freeze() // *Collection[int]{1, 2}
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions such
// as [Map].
package collections
