package frp

import (
	"context"
	"fmt"
)

// DefaultDt is the step size produced by DefaultSource.
const DefaultDt = 0.1

// Step is one driver input: simulated time elapsed since the previous step
// and the sample to feed the root SF. Dt must be non-negative.
type Step[A any] struct {
	Dt    float64
	Value A
}

// Source generates driver steps on demand.
type Source[A any] func() Step[A]

// DefaultSource yields DefaultDt with the zero value of A, indefinitely.
func DefaultSource[A any]() Source[A] {
	return func() Step[A] {
		return Step[A]{Dt: DefaultDt}
	}
}

// FixedSource yields the same step forever.
func FixedSource[A any](dt float64, value A) Source[A] {
	return func() Step[A] {
		return Step[A]{Dt: dt, Value: value}
	}
}

// Steps builds a finite step sequence with a constant dt for ReactSeq.
func Steps[A any](dt float64, values ...A) []Step[A] {
	steps := make([]Step[A], len(values))
	for i, v := range values {
		steps[i] = Step[A]{Dt: dt, Value: v}
	}
	return steps
}

// React drives sf with steps from src until it returns false, and reports
// how many invocations ran. The terminating step completes before the loop
// stops, so side effects of that step have already happened. A nil src means
// DefaultSource. A root SF that never returns false loops until ctx is
// canceled; bounding the run is the caller's responsibility.
func React[A any](ctx context.Context, sf SF[A, bool], src Source[A]) (int, error) {
	if src == nil {
		src = DefaultSource[A]()
	}
	steps := 0
	for {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}

		st := src()
		if st.Dt < 0 {
			return steps, fmt.Errorf("%w: %f", ErrNegativeDt, st.Dt)
		}
		steps++
		if !sf.Step(st.Dt, st.Value) {
			return steps, nil
		}
	}
}

// ReactWith drives sf with steps from src, passing each result to out and
// continuing while out returns true. A nil src means DefaultSource.
func ReactWith[A, B any](ctx context.Context, sf SF[A, B], src Source[A], out func(B) bool) (int, error) {
	if out == nil {
		return 0, ErrNilOutput
	}
	if src == nil {
		src = DefaultSource[A]()
	}
	steps := 0
	for {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}

		st := src()
		if st.Dt < 0 {
			return steps, fmt.Errorf("%w: %f", ErrNegativeDt, st.Dt)
		}
		steps++
		if !out(sf.Step(st.Dt, st.Value)) {
			return steps, nil
		}
	}
}

// ReactSeq drives sf with a finite step sequence. The entire sequence is
// always consumed: unlike the generator path, out's continuation value is
// ignored here. A nil out drops the results.
func ReactSeq[A, B any](ctx context.Context, sf SF[A, B], steps []Step[A], out func(B) bool) error {
	for _, st := range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if st.Dt < 0 {
			return fmt.Errorf("%w: %f", ErrNegativeDt, st.Dt)
		}
		res := sf.Step(st.Dt, st.Value)
		if out != nil {
			out(res)
		}
	}
	return nil
}
