package ranges

// StepFunc computes the value following current.
type StepFunc[C any] func(current C) C

// IndexedStepFunc computes the value following current. index is the number
// of values the traversal has produced before current is returned, so the
// first call of a traversal receives 0.
type IndexedStepFunc[C any] func(current C, index int) C

// successor is the tagged choice between the two successor forms.
type successor[C any] interface {
	apply(current C, index int) C
}

func (f StepFunc[C]) apply(current C, _ int) C { return f(current) }

func (f IndexedStepFunc[C]) apply(current C, index int) C { return f(current, index) }
