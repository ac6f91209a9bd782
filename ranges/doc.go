// Package ranges provides [Range], a lazily evaluated generator of ordered
// values driven by a caller-supplied successor function.
//
// # Overview
//
// A Range is configured once through fluent setters and can then be
// traversed any number of times. Each traversal starts over from the
// configured start:
//
//	r := ranges.New(1).To(5).Next(ranges.Inc(1))
//	seq, _ := r.ToSeq() // → [1 2 3 4 5]
//
// The direction of travel is inferred from the bounds, so the same
// machinery produces descending sequences:
//
//	r := ranges.New(5).To(1).Next(ranges.Dec(1)) // 5 4 3 2 1
//
// Omitting the end makes the range unbounded. Use [Range.Take],
// [Range.TakeWhile] or break out of [Range.All] to read a finite prefix:
//
//	powers, _ := ranges.New(1).Next(ranges.Mul(2)).Take(5) // → [1 2 4 8 16]
//
// # Element types
//
// [New] accepts any built-in ordered type. [NewComparable] accepts types
// with a Compare method, such as time.Time, and [NewFunc] accepts any type
// together with a comparison function:
//
//	days := ranges.NewComparable(start).Until(end).Next(ranges.AddDate(0, 0, 1))
//
// # Successors
//
// The successor is either a [StepFunc] that maps the current value to the
// next one, or an [IndexedStepFunc] that additionally receives the number of
// values already produced in the current traversal. Whichever was set last
// is used.
//
// # Errors
//
// Setters never fail directly. An invalid argument is recorded and returned
// by every later traversal, and by [Range.Err]. Traversals report missing
// configuration eagerly, before any value is produced. See errors.go for the
// sentinel values; match them with errors.Is.
//
// # Concurrency
//
// Every traversal owns an independent [Cursor] built from a snapshot of the
// configuration. A configured Range may be traversed from several goroutines
// at once as long as the successor itself is safe for concurrent use.
// Reconfiguring a Range while it is being traversed is a data race.
package ranges
