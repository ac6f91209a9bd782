package rangeflags

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/ranges"
)

var dateStepRe = regexp.MustCompile(`^([+-]?\d+)([dwmy])$`)

// Generate parses the plan and materialises the range it describes. Ints
// are produced as int64, floats as float64 and dates as YYYY-MM-DD strings.
func (p Plan) Generate(log *slog.Logger) (*collections.Collection[any], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log.Debug("Generating range", "kind", p.Kind, "start", p.Start, "to", p.To, "until", p.Until, "step", p.Step, "take", p.Take)

	switch p.Kind {
	case KindInt:
		return generateNumeric(p, log, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }, checkIntStep)
	case KindFloat:
		return generateNumeric(p, log, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, checkFloatStep)
	case KindDate:
		return generateDate(p, log)
	default:
		return nil, errors.Wrapf(ErrInvalidPlan, "unknown kind %q", p.Kind)
	}
}

func generateNumeric[C int64 | float64](p Plan, log *slog.Logger, parse func(string) (C, error),
	check func(p Plan, start, end, step C) error,
) (*collections.Collection[any], error) {
	start, err := parse(p.Start)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing start %q", p.Start)
	}
	r := ranges.New(start).WithLogger(log)

	var end C
	var step C = 1
	if p.Bounded() {
		s, inclusive := p.end()
		if end, err = parse(s); err != nil {
			return nil, errors.Wrapf(err, "parsing end %q", s)
		}
		if inclusive {
			r.To(end)
		} else {
			r.Until(end)
		}
		if end < start {
			step = -1
		}
	}
	if p.Step != "" {
		if step, err = parse(p.Step); err != nil {
			return nil, errors.Wrapf(err, "parsing step %q", p.Step)
		}
	}
	if err := check(p, start, end, step); err != nil {
		return nil, err
	}
	if p.Bounded() && (step == 0 || start != end && (end > start) != (step > 0)) {
		return nil, errors.Wrapf(ErrStepDirection, "step %v from %v to %v", step, start, end)
	}

	return collect(p, r.Next(ranges.Inc(step)), func(c C) any { return c })
}

// checkIntStep refuses bounded plans whose last step past the end would
// wrap around and restart the range from the other extreme.
func checkIntStep(p Plan, start, end, step int64) error {
	_, inclusive := p.end()
	if !p.Bounded() || !inclusive && start == end {
		return nil
	}
	// last value a successor can still be computed from
	last := end
	if !inclusive {
		last -= lo.Ternary[int64](step > 0, 1, -1)
	}
	if step > 0 && last > math.MaxInt64-step || step < 0 && last < math.MinInt64-step {
		return errors.Wrapf(ErrStepDirection, "step %d from %d to %d overflows int64", step, start, end)
	}
	return nil
}

// checkFloatStep refuses non-finite values and bounded plans whose step is
// too small to change the value at either bound.
func checkFloatStep(p Plan, start, end, step float64) error {
	for _, v := range []float64{start, end, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidPlan, "non-finite value %v", v)
		}
	}
	if p.Bounded() && (start+step == start || end+step == end) {
		return errors.Wrapf(ErrStepDirection, "step %v is lost in the precision of %v..%v", step, start, end)
	}
	return nil
}

func generateDate(p Plan, log *slog.Logger) (*collections.Collection[any], error) {
	start, err := time.Parse(time.DateOnly, p.Start)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing start %q", p.Start)
	}
	r := ranges.NewComparable(start).WithLogger(log)

	end := start
	step := "1d"
	if p.Bounded() {
		s, inclusive := p.end()
		if end, err = time.Parse(time.DateOnly, s); err != nil {
			return nil, errors.Wrapf(err, "parsing end %q", s)
		}
		if inclusive {
			r.To(end)
		} else {
			r.Until(end)
		}
		if end.Before(start) {
			step = "-1d"
		}
	}
	if p.Step != "" {
		step = p.Step
	}

	years, months, days, err := parseDateStep(step)
	if err != nil {
		return nil, err
	}
	if p.Bounded() {
		moved := start.AddDate(years, months, days).Compare(start)
		if moved == 0 || !end.Equal(start) && moved != end.Compare(start) {
			endText, _ := p.end()
			return nil, errors.Wrapf(ErrStepDirection, "step %s from %s to %s", step, p.Start, endText)
		}
	}

	// Whole-month steps are computed from the start so month-end dates do
	// not drift after a short month.
	if days == 0 {
		r.NextIndexed(ranges.MonthsFrom(start, years*12+months))
	} else {
		r.Next(ranges.AddDate(0, 0, days))
	}

	return collect(p, r, func(t time.Time) any { return t.Format(time.DateOnly) })
}

// parseDateStep parses steps such as 1d, -2w, 3m or 1y.
func parseDateStep(step string) (years, months, days int, err error) {
	m := dateStepRe.FindStringSubmatch(step)
	if m == nil {
		return 0, 0, 0, errors.Wrapf(ErrInvalidPlan, "invalid date step %q, expected e.g. 1d, 2w, 3m, 1y", step)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, 0, errors.Wrapf(err, "parsing date step %q", step)
	}
	switch m[2] {
	case "d":
		return 0, 0, n, nil
	case "w":
		return 0, 0, 7 * n, nil
	case "m":
		return 0, n, 0, nil
	default:
		return n, 0, 0, nil
	}
}

func collect[C any](p Plan, r *ranges.Range[C], format func(C) any) (*collections.Collection[any], error) {
	var seq *collections.Collection[C]
	var err error
	if p.Take >= 0 {
		seq, err = r.Take(p.Take)
	} else {
		seq, err = r.ToSeq()
	}
	if err != nil {
		return nil, errors.Wrap(err, "generating range")
	}
	return collections.Map(seq, func(c C, _ int) any { return format(c) }), nil
}
