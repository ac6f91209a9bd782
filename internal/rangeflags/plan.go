// Package rangeflags turns the textual bounds and steps accepted by the
// rangegen command into configured ranges.
package rangeflags

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Kind selects the element type of a generated range.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindDate  Kind = "date"
)

// Kinds lists the supported element kinds.
var Kinds = []Kind{KindInt, KindFloat, KindDate}

var (
	ErrInvalidPlan   = errors.New("invalid range plan")
	ErrUnbounded     = errors.New("unbounded range needs a take limit")
	ErrStepDirection = errors.New("step does not move towards the end")
)

// Plan is the flag-level description of a range. Bounds and step are kept
// as text until [Plan.Generate] parses them for the selected Kind.
type Plan struct {
	Kind  Kind
	Start string
	// To and Until are mutually exclusive; leaving both empty makes the
	// range unbounded.
	To    string
	Until string
	// Step is optional for bounded ranges and defaults to one unit towards
	// the end.
	Step string
	// Take limits the output; negative means no limit.
	Take int
}

// Validate checks the plan for combinations that can never produce a
// finite sequence or are ambiguous.
func (p Plan) Validate() error {
	if !lo.Contains(Kinds, p.Kind) {
		return errors.Wrapf(ErrInvalidPlan, "unknown kind %q, expected one of %v", p.Kind, Kinds)
	}
	if p.Start == "" {
		return errors.Wrap(ErrInvalidPlan, "start is required")
	}
	if p.To != "" && p.Until != "" {
		return errors.Wrap(ErrInvalidPlan, "to and until are mutually exclusive")
	}
	if !p.Bounded() {
		if p.Take < 0 {
			return ErrUnbounded
		}
		if p.Step == "" {
			return errors.Wrap(ErrInvalidPlan, "step is required for unbounded ranges")
		}
	}
	return nil
}

// Bounded reports whether the plan has an end point.
func (p Plan) Bounded() bool { return p.To != "" || p.Until != "" }

func (p Plan) end() (string, bool) {
	return lo.Ternary(p.To != "", p.To, p.Until), p.To != ""
}
