package ranges

import (
	"errors"
	"iter"

	"github.com/hasbyte1/go-collection-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Callback traversal
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn for every value of the range in order.
//
// The range must have an end point; unbounded ranges fail with
// [ErrMissingEnd] before fn is called. Use [Range.Take], [Range.TakeWhile]
// or [Range.All] to consume unbounded ranges.
func (r *Range[C]) ForEach(fn func(C)) error {
	if fn == nil {
		return invalidArgument("ForEach", "nil callback")
	}
	return r.ForEachIndexed(func(c C, _ int) { fn(c) })
}

// ForEachIndexed is [Range.ForEach] with the 0-based position of each value
// passed as the second argument.
func (r *Range[C]) ForEachIndexed(fn func(C, int)) error {
	if fn == nil {
		return invalidArgument("ForEachIndexed", "nil callback")
	}
	if r.err == nil && !r.hasEnd {
		return ErrMissingEnd
	}

	it, err := r.Iterator()
	if err != nil {
		return err
	}
	for it.HasNext() {
		idx := it.Index()
		c, err := it.Next()
		if err != nil {
			return r.traversalFailed("ForEach", err)
		}
		fn(c, idx)
	}
	return nil
}

// All returns an iterator over the values of the range for use with
// range-over-func. Unbounded ranges are allowed; stop by breaking out of
// the loop.
//
// Configuration and successor failures are yielded once as a non-nil
// error with the zero value, after which the sequence ends:
//
//	for n, err := range ranges.New(1).Next(ranges.Inc(1)).All() {
//	    if err != nil || n > 3 {
//	        break
//	    }
//	}
func (r *Range[C]) All() iter.Seq2[C, error] {
	return func(yield func(C, error) bool) {
		var zero C
		it, err := r.Iterator()
		if err != nil {
			yield(zero, err)
			return
		}
		for it.HasNext() {
			c, err := it.Next()
			if err != nil {
				yield(zero, r.traversalFailed("All", err))
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Prefix extraction
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n values of the range, or all of them when the
// range has fewer. It is safe on unbounded ranges.
//
// A negative n fails with [ErrInvalidArgument]. When the successor fails,
// the values produced so far are returned together with the error.
func (r *Range[C]) Take(n int) (*collections.Collection[C], error) {
	if n < 0 {
		return nil, invalidArgument("Take", "negative count")
	}
	it, err := r.Iterator()
	if err != nil {
		return nil, err
	}

	seq := collections.NewMutableSeq[C]()
	for it.HasNext() && it.Index() < n {
		c, err := it.Next()
		if err != nil {
			return seq.Freeze(), r.traversalFailed("Take", err)
		}
		seq.AppendInPlace(c)
	}
	return seq.Freeze(), nil
}

// TakeWhile returns the leading values of the range for which pred returns
// true. Traversal stops at the first value that fails pred; that value is
// not included and pred is not called again.
func (r *Range[C]) TakeWhile(pred func(C) bool) (*collections.Collection[C], error) {
	if pred == nil {
		return nil, invalidArgument("TakeWhile", "nil predicate")
	}
	return r.TakeWhileIndexed(func(c C, _ int) bool { return pred(c) })
}

// TakeWhileIndexed is [Range.TakeWhile] with the 0-based position of each
// value passed to pred.
func (r *Range[C]) TakeWhileIndexed(pred func(C, int) bool) (*collections.Collection[C], error) {
	if pred == nil {
		return nil, invalidArgument("TakeWhileIndexed", "nil predicate")
	}
	it, err := r.Iterator()
	if err != nil {
		return nil, err
	}

	seq := collections.NewMutableSeq[C]()
	for it.HasNext() {
		idx := it.Index()
		c, err := it.Next()
		if err != nil {
			return seq.Freeze(), r.traversalFailed("TakeWhile", err)
		}
		if !pred(c, idx) {
			break
		}
		seq.AppendInPlace(c)
	}
	return seq.Freeze(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialisation
// ─────────────────────────────────────────────────────────────────────────────

// ToSeq collects every value of the range into a Collection.
// Like [Range.ForEach] it requires an end point.
func (r *Range[C]) ToSeq() (*collections.Collection[C], error) {
	seq, err := r.ToMutableSeq()
	if seq == nil {
		return nil, err
	}
	return seq.Freeze(), err
}

// ToMutableSeq collects every value of the range into a MutableSeq.
// Like [Range.ForEach] it requires an end point. When the successor fails,
// the values produced so far are returned together with the error.
func (r *Range[C]) ToMutableSeq() (*collections.MutableSeq[C], error) {
	seq := collections.NewMutableSeq[C]()
	err := r.ForEach(func(c C) { seq.AppendInPlace(c) })
	if err != nil && !errors.Is(err, ErrInvalidSuccessorResult) {
		return nil, err
	}
	return seq, err
}

func (r *Range[C]) traversalFailed(op string, err error) error {
	r.logger().Debug("Range traversal failed", "op", op, "err", err)
	return err
}
