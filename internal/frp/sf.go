package frp

// SF is a signal function: a stateful transformer from a time step and an
// input sample to an output sample. Construction fixes the behavior shape;
// each Step call may mutate internal state owned exclusively by the instance.
type SF[A, B any] interface {
	Step(dt float64, in A) B
}

// SFFunc adapts a plain step function to an SF. State, if any, lives in the
// closure.
type SFFunc[A, B any] func(dt float64, in A) B

func (f SFFunc[A, B]) Step(dt float64, in A) B { return f(dt, in) }

// Vec is a fixed-length numeric signal value.
type Vec []float64

func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)
	return c
}
