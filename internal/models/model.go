package models

import (
	"context"
	"fmt"

	"github.com/tomaskol/sigflow/internal/frp"
)

// RunConfig bounds one recorded run. Params override a model's defaults;
// unknown keys are ignored.
type RunConfig struct {
	Dt       float64
	Duration float64
	Params   map[string]float64
}

func (cfg RunConfig) validate() error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("models: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("models: duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

// Stepper is the uniform step-at-a-time view of a model's signal graph,
// used by the live view. Each call advances the graph by dt and samples the
// output columns.
type Stepper interface {
	Columns() []string
	Step(dt float64) []float64
}

// Model names a signal graph and knows how to drive it.
type Model interface {
	Name() string
	Columns() []string
	Run(ctx context.Context, cfg RunConfig) (*Trace, error)
	Stepper(params map[string]float64) Stepper
}

// graphModel adapts a generically-typed signal graph to the Model interface.
type graphModel[B any] struct {
	name    string
	columns []string
	build   func(params map[string]float64) frp.SF[struct{}, B]
	sample  func(B) []float64
}

func (m *graphModel[B]) Name() string      { return m.name }
func (m *graphModel[B]) Columns() []string { return m.columns }

func (m *graphModel[B]) Run(ctx context.Context, cfg RunConfig) (*Trace, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sf := m.build(cfg.Params)
	steps := int(cfg.Duration / cfg.Dt)
	trace := NewTrace(m.columns)

	t := 0.0
	count := 0
	_, err := frp.ReactWith(ctx, sf, frp.FixedSource(cfg.Dt, struct{}{}), func(out B) bool {
		t += cfg.Dt
		trace.Append(t, m.sample(out))
		count++
		return count < steps
	})
	if err != nil {
		return trace, err
	}
	return trace, nil
}

func (m *graphModel[B]) Stepper(params map[string]float64) Stepper {
	return &graphStepper[B]{
		sf:      m.build(params),
		sample:  m.sample,
		columns: m.columns,
	}
}

type graphStepper[B any] struct {
	sf      frp.SF[struct{}, B]
	sample  func(B) []float64
	columns []string
}

func (s *graphStepper[B]) Columns() []string { return s.columns }

func (s *graphStepper[B]) Step(dt float64) []float64 {
	return s.sample(s.sf.Step(dt, struct{}{}))
}

// param reads a model parameter with a fallback default.
func param(params map[string]float64, name string, def float64) float64 {
	if params == nil {
		return def
	}
	if v, ok := params[name]; ok {
		return v
	}
	return def
}
