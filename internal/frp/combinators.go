package frp

// Constant returns an SF that ignores dt and its input and always produces c.
func Constant[A, B any](c B) SF[A, B] {
	return SFFunc[A, B](func(float64, A) B { return c })
}

// Lift turns a plain function into a stateless SF. The function must be
// total; a panic inside it propagates to the driver and aborts the run.
func Lift[A, B any](f func(A) B) SF[A, B] {
	return SFFunc[A, B](func(_ float64, in A) B { return f(in) })
}

// Identity is Lift of the identity function.
func Identity[V any]() SF[V, V] {
	return Lift(func(v V) V { return v })
}

type composed[A, B, C any] struct {
	first  SF[A, B]
	second SF[B, C]
}

func (s *composed[A, B, C]) Step(dt float64, in A) C {
	return s.second.Step(dt, s.first.Step(dt, in))
}

// Compose chains two signal functions in series. A single step threads the
// same dt through both stages, feeding the first stage's output to the
// second.
func Compose[A, B, C any](sf1 SF[A, B], sf2 SF[B, C]) SF[A, C] {
	return &composed[A, B, C]{first: sf1, second: sf2}
}

type pipe[V any] struct {
	stages []SF[V, V]
}

func (p *pipe[V]) Step(dt float64, in V) V {
	v := in
	for _, s := range p.stages {
		v = s.Step(dt, v)
	}
	return v
}

// Pipe is the homogeneous n-ary form of Compose. It requires at least one
// stage and panics otherwise.
func Pipe[V any](sfs ...SF[V, V]) SF[V, V] {
	if len(sfs) == 0 {
		panic("frp: Pipe requires at least one signal function")
	}
	return &pipe[V]{stages: sfs}
}

type fanout2[A, B1, B2, C any] struct {
	combine func(B1, B2) C
	left    SF[A, B1]
	right   SF[A, B2]
}

func (f *fanout2[A, B1, B2, C]) Step(dt float64, in A) C {
	// branches are evaluated left to right; this order is a contract
	b1 := f.left.Step(dt, in)
	b2 := f.right.Step(dt, in)
	return f.combine(b1, b2)
}

// Fanout2 steps both branches with the same (dt, input) and combines their
// outputs. Branches never see each other's output.
func Fanout2[A, B1, B2, C any](combine func(B1, B2) C, left SF[A, B1], right SF[A, B2]) SF[A, C] {
	return &fanout2[A, B1, B2, C]{combine: combine, left: left, right: right}
}

type fanout3[A, B1, B2, B3, C any] struct {
	combine func(B1, B2, B3) C
	first   SF[A, B1]
	second  SF[A, B2]
	third   SF[A, B3]
}

func (f *fanout3[A, B1, B2, B3, C]) Step(dt float64, in A) C {
	b1 := f.first.Step(dt, in)
	b2 := f.second.Step(dt, in)
	b3 := f.third.Step(dt, in)
	return f.combine(b1, b2, b3)
}

// Fanout3 is the three-branch form of Fanout2.
func Fanout3[A, B1, B2, B3, C any](combine func(B1, B2, B3) C, first SF[A, B1], second SF[A, B2], third SF[A, B3]) SF[A, C] {
	return &fanout3[A, B1, B2, B3, C]{combine: combine, first: first, second: second, third: third}
}

type fanoutN[A, B, C any] struct {
	combine  func([]B) C
	branches []SF[A, B]
}

func (f *fanoutN[A, B, C]) Step(dt float64, in A) C {
	outs := make([]B, len(f.branches))
	for i, sf := range f.branches {
		outs[i] = sf.Step(dt, in)
	}
	return f.combine(outs)
}

// FanoutN is the homogeneous dynamic-arity fan-out. The combiner always
// receives exactly len(sfs) outputs in branch order.
func FanoutN[A, B, C any](combine func([]B) C, sfs ...SF[A, B]) SF[A, C] {
	return &fanoutN[A, B, C]{combine: combine, branches: sfs}
}
