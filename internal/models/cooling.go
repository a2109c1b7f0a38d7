package models

import "github.com/tomaskol/sigflow/internal/frp"

// Cooling is Newton's law of cooling T' = -k (T - ambient), closed with a
// scalar feedback loop around an integral seeded at the initial temperature.
func Cooling(k, ambient, t0 float64) frp.SF[struct{}, float64] {
	deriv := frp.Lift(func(T float64) float64 { return -k * (T - ambient) })
	return frp.Feedback[struct{}](t0, frp.Compose(deriv, frp.Integral(t0)))
}

func newCoolingModel() Model {
	return &graphModel[float64]{
		name:    "cooling",
		columns: []string{"temp"},
		build: func(params map[string]float64) frp.SF[struct{}, float64] {
			k := param(params, "k", 0.5)
			ambient := param(params, "ambient", 20.0)
			t0 := param(params, "temp", 90.0)
			return Cooling(k, ambient, t0)
		},
		sample: func(T float64) []float64 { return []float64{T} },
	}
}

func newClockModel() Model {
	return &graphModel[float64]{
		name:    "clock",
		columns: []string{"t"},
		build: func(params map[string]float64) frp.SF[struct{}, float64] {
			return frp.Time[struct{}]()
		},
		sample: func(t float64) []float64 { return []float64{t} },
	}
}
