package ranges

import (
	"fmt"

	"github.com/samber/lo"
)

// Cursor is the state of a single traversal of a [Range].
//
// A Cursor copies the range configuration when it is created, so later
// changes to the Range do not affect it. A Cursor must not be shared
// between goroutines.
type Cursor[C any] struct {
	index   int
	current C

	end          C
	bounded      bool
	endInclusive bool
	// orientation is sign(compare(start, end)): the side of end the
	// traversal started on.
	orientation int

	next    successor[C]
	compare func(a, b C) int

	// err is set once the successor misbehaves; the cursor is dead after.
	err error
}

// Iterator returns a fresh cursor positioned at the start of the range.
// It fails eagerly when the range is misconfigured.
func (r *Range[C]) Iterator() (*Cursor[C], error) {
	if r.err != nil {
		return nil, r.err
	}
	if !r.hasStart {
		return nil, ErrMissingStart
	}
	if r.next == nil {
		return nil, ErrMissingSuccessor
	}

	it := &Cursor[C]{
		current:      r.start,
		end:          r.end,
		bounded:      r.hasEnd,
		endInclusive: r.endInclusive,
		next:         r.next,
		compare:      r.compare,
	}
	if it.bounded {
		it.orientation = sign(r.compare(r.start, r.end))
	}

	r.logger().Debug("Range cursor created",
		"start", r.start, "bounded", it.bounded, "endInclusive", it.endInclusive, "orientation", it.orientation)
	return it, nil
}

// HasNext reports whether [Cursor.Next] will produce a value.
// An unbounded cursor always has a next value until its successor fails.
func (it *Cursor[C]) HasNext() bool {
	if it.err != nil {
		return false
	}
	if !it.bounded {
		return true
	}
	c := sign(it.compare(it.current, it.end))
	return c*it.orientation > 0 || it.endInclusive && c == 0
}

// Next returns the current value and advances the cursor.
//
// It returns [ErrExhausted] when [Cursor.HasNext] is false and
// [ErrInvalidSuccessorResult] when the successor produced an absent value;
// in the latter case the value that was about to be returned is dropped
// and every later call fails the same way.
func (it *Cursor[C]) Next() (C, error) {
	var zero C
	if it.err != nil {
		return zero, it.err
	}
	if !it.HasNext() {
		return zero, ErrExhausted
	}

	last := it.current
	following := it.next.apply(it.current, it.index)
	if lo.IsNil(following) {
		it.err = fmt.Errorf("%w: after index %d", ErrInvalidSuccessorResult, it.index)
		return zero, it.err
	}
	it.current = following
	it.index++

	return last, nil
}

// Index returns the number of values produced so far, which is also the
// 0-based position of the value the next call to [Cursor.Next] returns.
func (it *Cursor[C]) Index() int { return it.index }

// Err returns the successor failure that stopped the cursor, if any.
func (it *Cursor[C]) Err() error { return it.err }

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
