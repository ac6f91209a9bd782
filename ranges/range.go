package ranges

import (
	"cmp"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Comparable is satisfied by types that order themselves, such as
// time.Time. Compare returns a negative number, zero or a positive number
// when the receiver is less than, equal to or greater than other.
type Comparable[C any] interface {
	Compare(other C) int
}

// Range generates ordered values of type C from a start point, an optional
// end point and a successor function.
//
// The zero value is not usable; create ranges with [New], [NewComparable],
// [NewFunc], [Between] or [Empty].
type Range[C any] struct {
	start    C
	hasStart bool

	end          C
	hasEnd       bool
	endInclusive bool

	next    successor[C]
	compare func(a, b C) int

	// err is the first configuration error; it sticks until the Range is
	// discarded.
	err error
	log *slog.Logger
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Range over a built-in ordered type starting at start.
func New[C constraints.Ordered](start C) *Range[C] {
	return NewFunc(start, cmp.Compare[C])
}

// Empty creates a Range over a built-in ordered type with no start point.
// Set one with [Range.From] before traversing.
func Empty[C constraints.Ordered]() *Range[C] {
	return &Range[C]{compare: cmp.Compare[C]}
}

// NewComparable creates a Range over a type with a Compare method.
func NewComparable[C Comparable[C]](start C) *Range[C] {
	return NewFunc(start, func(a, b C) int { return a.Compare(b) })
}

// NewFunc creates a Range over any type, ordered by compare.
// compare must define a total order.
func NewFunc[C any](start C, compare func(a, b C) int) *Range[C] {
	r := &Range[C]{compare: compare}
	if compare == nil {
		r.fail(invalidArgument("NewFunc", "nil compare function"))
	}
	return r.From(start)
}

// Between creates the inclusive range [start, end] stepped by step.
func Between[C constraints.Ordered](start, end C, step StepFunc[C]) *Range[C] {
	return New(start).To(end).Next(step)
}

// ─────────────────────────────────────────────────────────────────────────────
// Configuration
// ─────────────────────────────────────────────────────────────────────────────

// From sets the start point.
func (r *Range[C]) From(start C) *Range[C] {
	if lo.IsNil(start) {
		r.fail(invalidArgument("From", "absent start"))
		return r
	}
	r.start, r.hasStart = start, true
	return r
}

// To sets the end point; the end point is produced when reached exactly.
func (r *Range[C]) To(end C) *Range[C] {
	return r.setEnd("To", end, true)
}

// Until sets the end point; the end point itself is never produced.
func (r *Range[C]) Until(end C) *Range[C] {
	return r.setEnd("Until", end, false)
}

func (r *Range[C]) setEnd(op string, end C, inclusive bool) *Range[C] {
	if lo.IsNil(end) {
		r.fail(invalidArgument(op, "absent end"))
		return r
	}
	r.end, r.hasEnd, r.endInclusive = end, true, inclusive
	return r
}

// Next sets fn as the successor, replacing any indexed successor.
func (r *Range[C]) Next(fn StepFunc[C]) *Range[C] {
	if fn == nil {
		r.fail(invalidArgument("Next", "nil successor"))
		return r
	}
	r.next = fn
	return r
}

// NextIndexed sets fn as the successor, replacing any plain successor.
// fn receives the number of values already produced by the traversal.
func (r *Range[C]) NextIndexed(fn IndexedStepFunc[C]) *Range[C] {
	if fn == nil {
		r.fail(invalidArgument("NextIndexed", "nil successor"))
		return r
	}
	r.next = fn
	return r
}

// WithLogger attaches a logger that receives debug events about
// traversals. A nil logger restores the default, which discards.
func (r *Range[C]) WithLogger(log *slog.Logger) *Range[C] {
	r.log = log
	return r
}

func (r *Range[C]) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Start returns the start point and whether one is set.
func (r *Range[C]) Start() (C, bool) { return r.start, r.hasStart }

// End returns the end point and whether one is set.
func (r *Range[C]) End() (C, bool) { return r.end, r.hasEnd }

// EndInclusive reports whether the end point, if any, is produced.
func (r *Range[C]) EndInclusive() bool { return r.endInclusive }

// Bounded reports whether the range has an end point.
func (r *Range[C]) Bounded() bool { return r.hasEnd }

// Err returns the first configuration error recorded by a setter, if any.
// The error is sticky: a later valid call to the same or another setter
// does not clear it, and every traversal fails with it. Build a new Range
// to recover.
func (r *Range[C]) Err() error { return r.err }

func (r *Range[C]) logger() *slog.Logger {
	if r.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.log
}
