package models

import "github.com/tomaskol/sigflow/internal/frp"

// Oscillator is an undamped harmonic oscillator x'' = -omega^2 x, closed
// with a feedback loop: the state derivative is lifted into the graph and
// the elementwise integral is fed its own previous output.
func Oscillator(omega, x0, v0 float64) frp.SF[struct{}, frp.Vec] {
	deriv := frp.Lift(func(s frp.Vec) frp.Vec {
		return frp.Vec{s[1], -omega * omega * s[0]}
	})
	return frp.Feedback[struct{}](
		frp.Vec{x0, v0},
		frp.Compose(deriv, frp.IntegralVec(frp.Vec{x0, v0})),
	)
}

func newOscillatorModel() Model {
	return &graphModel[frp.Vec]{
		name:    "oscillator",
		columns: []string{"x", "v"},
		build: func(params map[string]float64) frp.SF[struct{}, frp.Vec] {
			omega := param(params, "omega", 1.0)
			x0 := param(params, "x", 1.0)
			v0 := param(params, "v", 0.0)
			return Oscillator(omega, x0, v0)
		},
		sample: func(s frp.Vec) []float64 { return []float64{s[0], s[1]} },
	}
}
