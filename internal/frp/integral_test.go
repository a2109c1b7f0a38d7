package frp

import (
	"math"
	"testing"
)

func TestIntegralConstantInput(t *testing.T) {
	seed := 2.0
	dt := 0.1
	v := -9.8
	n := 10

	sf := Integral(seed)
	var last float64
	for i := 0; i < n; i++ {
		last = sf.Step(dt, v)
	}

	expected := seed + float64(n)*dt*v
	if math.Abs(last-expected) > 1e-12 {
		t.Errorf("expected %f after %d steps, got %f", expected, n, last)
	}
}

func TestIntegralReturnsPostUpdate(t *testing.T) {
	sf := Integral(0)

	if got := sf.Step(0.1, -9.8); math.Abs(got-(-0.98)) > 1e-12 {
		t.Errorf("first step should include its own contribution: expected -0.98, got %f", got)
	}
}

func TestIntegralVecElementwise(t *testing.T) {
	sf := IntegralVec(Vec{1, 2})

	got := sf.Step(0.5, Vec{2, 4})
	want := Vec{2, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestIntegralVecGrowsAccumulator(t *testing.T) {
	sf := IntegralVec(Vec{1})

	got := sf.Step(1.0, Vec{1, 10, 100})
	want := Vec{2, 10, 100}
	if len(got) != 3 {
		t.Fatalf("expected accumulator to grow to 3, got %d", len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestIntegralVecNilSeed(t *testing.T) {
	sf := IntegralVec(nil)

	got := sf.Step(0.1, Vec{1, 2})
	if len(got) != 2 || got[0] != 0.1 || got[1] != 0.2 {
		t.Errorf("expected [0.1 0.2] from zero seed, got %v", got)
	}
}

func TestIntegralVecOutputIsolated(t *testing.T) {
	sf := IntegralVec(nil)

	first := sf.Step(1.0, Vec{1})
	first[0] = 99

	second := sf.Step(1.0, Vec{1})
	if second[0] != 2 {
		t.Errorf("mutating a returned vector must not corrupt the accumulator: expected 2, got %f", second[0])
	}
}

func TestTimeAccumulates(t *testing.T) {
	sf := Time[struct{}]()

	var last float64
	for i := 0; i < 5; i++ {
		last = sf.Step(0.1, struct{}{})
	}
	if math.Abs(last-0.5) > 1e-12 {
		t.Errorf("expected elapsed time 0.5, got %f", last)
	}
}
