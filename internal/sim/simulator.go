// Package sim drives a fixed number of integration steps over a system.
package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lorenz63/internal/dynamo"
)

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	observers  []dynamo.Observer
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run applies cfg.Steps integration steps starting from x0. The result
// records the initial state plus one state per step; Times[i] is
// i*cfg.Dt, matching the step index rather than an accumulated sum.
// Observers see each post-step state, not the initial one.
//
// There is no divergence guard: NaN or Inf coordinates propagate into
// later steps and are recorded like any other value. The only error
// path is context cancellation, which returns the partial result.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg dynamo.Config) (*dynamo.Result, error) {
	if len(x0) != s.dyn.StateDim() {
		return nil, fmt.Errorf("%w: state has %d coordinates, system wants %d",
			dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}

	result := &dynamo.Result{
		States: make([]dynamo.State, 0, cfg.Steps+1),
		Times:  make([]float64, 0, cfg.Steps+1),
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, 0)

	for i := 1; i <= cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		t := float64(i) * cfg.Dt
		x = s.integrator.Step(s.dyn, x, float64(i-1)*cfg.Dt, cfg.Dt)
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)

		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}
	}

	return result, nil
}

// RunWithCallback steps until the callback returns false or cfg.Steps
// is exhausted, without accumulating a Result. Used by the live view.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 dynamo.State, cfg dynamo.Config, callback func(x dynamo.State, t float64) bool) error {
	if len(x0) != s.dyn.StateDim() {
		return fmt.Errorf("%w: state has %d coordinates, system wants %d",
			dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}

	x := x0.Clone()
	for i := 1; i <= cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		x = s.integrator.Step(s.dyn, x, float64(i-1)*cfg.Dt, cfg.Dt)
		if !callback(x, float64(i)*cfg.Dt) {
			return nil
		}
	}

	return nil
}
