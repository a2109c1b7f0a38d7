package frp

type feedback[A, V any] struct {
	value V
	inner SF[V, V]
}

// Feedback closes a self-referential cycle by lagging one step: the external
// input is ignored and the inner SF is fed the previous output instead. The
// first step uses init. No same-step fixed point is solved; results approach
// the true fixed point only as dt shrinks and the inner function is
// contractive.
func Feedback[A, V any](init V, sf SF[V, V]) SF[A, V] {
	return &feedback[A, V]{value: init, inner: sf}
}

func (f *feedback[A, V]) Step(dt float64, _ A) V {
	f.value = f.inner.Step(dt, f.value)
	return f.value
}
