package frp

type integral struct {
	acc float64
}

// Integral returns an SF accumulating the rectangular (Euler) running sum
// acc += dt*in, seeded with seed. Each step returns the post-update
// accumulator, so the current step's contribution is already included.
func Integral(seed float64) SF[float64, float64] {
	return &integral{acc: seed}
}

func (s *integral) Step(dt float64, in float64) float64 {
	s.acc += dt * in
	return s.acc
}

type integralVec struct {
	acc Vec
}

// IntegralVec is the elementwise form of Integral. The accumulator grows to
// match longer inputs, with missing slots treated as zero; a nil seed is the
// implied zero vector.
func IntegralVec(seed Vec) SF[Vec, Vec] {
	return &integralVec{acc: seed.Clone()}
}

func (s *integralVec) Step(dt float64, in Vec) Vec {
	if len(in) > len(s.acc) {
		grown := make(Vec, len(in))
		copy(grown, s.acc)
		s.acc = grown
	}
	for i, v := range in {
		s.acc[i] += dt * v
	}
	return s.acc.Clone()
}

// Time returns an SF whose output is the simulated time elapsed since
// construction. Defined compositionally as integral over the constant rate 1.
func Time[A any]() SF[A, float64] {
	return Compose(Constant[A, float64](1), Integral(0))
}
