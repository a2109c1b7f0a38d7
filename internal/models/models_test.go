package models

import (
	"context"
	"math"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"falling_ball", "bouncing_ball", "oscillator", "cooling", "clock"} {
		m, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("expected name %s, got %s", name, m.Name())
		}
	}

	if _, err := r.Get("nope"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestRegistryList(t *testing.T) {
	names := NewRegistry().List()
	if len(names) != 5 {
		t.Errorf("expected 5 models, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("list should be sorted, got %v", names)
		}
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get("clock")

	tests := []struct {
		name string
		cfg  RunConfig
	}{
		{"zero dt", RunConfig{Dt: 0, Duration: 1.0}},
		{"negative dt", RunConfig{Dt: -0.1, Duration: 1.0}},
		{"zero duration", RunConfig{Dt: 0.1, Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestClockTraceMatchesTimes(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get("clock")

	trace, err := m.Run(context.Background(), RunConfig{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if trace.Len() != 10 {
		t.Fatalf("expected 10 samples, got %d", trace.Len())
	}
	col, err := trace.Column("t")
	if err != nil {
		t.Fatalf("column: %v", err)
	}
	for i := range col {
		if math.Abs(col[i]-trace.Times[i]) > 1e-9 {
			t.Errorf("sample %d: clock output %f should equal time axis %f", i, col[i], trace.Times[i])
		}
	}
}

func TestCoolingApproachesAmbient(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get("cooling")

	trace, err := m.Run(context.Background(), RunConfig{Dt: 0.01, Duration: 20.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	temps, _ := trace.Column("temp")

	for i := 1; i < len(temps); i++ {
		if temps[i] > temps[i-1] {
			t.Fatalf("temperature should decrease monotonically, rose at sample %d", i)
		}
	}
	final := temps[len(temps)-1]
	if math.Abs(final-20.0) > 0.1 {
		t.Errorf("expected final temperature near ambient 20.0, got %f", final)
	}
}

func TestOscillatorQuarterPeriod(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get("oscillator")

	trace, err := m.Run(context.Background(), RunConfig{Dt: 0.001, Duration: 3.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	xs, _ := trace.Column("x")

	crossing := -1
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > 0 && xs[i] <= 0 {
			crossing = i
			break
		}
	}
	if crossing < 0 {
		t.Fatal("oscillator never crossed zero")
	}
	tCross := trace.Times[crossing]
	if math.Abs(tCross-math.Pi/2) > 0.05 {
		t.Errorf("expected first zero crossing near pi/2, got %f", tCross)
	}
}

func TestStepperMatchesRun(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Get("falling_ball")

	s := m.Stepper(nil)
	row := s.Step(0.1)

	if len(row) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(row))
	}
	if math.Abs(row[0]-9.804) > 1e-9 || math.Abs(row[1]-(-0.98)) > 1e-9 {
		t.Errorf("expected first step [9.804 -0.98], got %v", row)
	}
}
