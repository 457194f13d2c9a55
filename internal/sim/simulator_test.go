package sim

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/lorenz63/internal/dynamo"
	"github.com/san-kum/lorenz63/internal/integrators"
	"github.com/san-kum/lorenz63/internal/lorenz"
)

func referenceConfig() dynamo.Config {
	return dynamo.Config{Dt: 1e-3, Steps: 99}
}

func TestSimulatorIterationCount(t *testing.T) {
	s := New(lorenz.New(), integrators.NewEuler())

	result, err := s.Run(context.Background(), dynamo.State{1, 1, 1}, referenceConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// One initial state plus one state per step.
	if len(result.States) != 100 {
		t.Errorf("expected 100 states, got %d", len(result.States))
	}
	if len(result.Times) != 100 {
		t.Errorf("expected 100 times, got %d", len(result.Times))
	}
	if result.StepsTaken != 99 {
		t.Errorf("expected 99 steps taken, got %d", result.StepsTaken)
	}
}

func TestSimulatorTimesAreIndexMultiples(t *testing.T) {
	s := New(lorenz.New(), integrators.NewEuler())

	cfg := dynamo.Config{Dt: 1e-3, Steps: 10}
	result, err := s.Run(context.Background(), dynamo.State{1, 1, 1}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, tm := range result.Times {
		if tm != float64(i)*cfg.Dt {
			t.Errorf("times[%d] = %v, want %v", i, tm, float64(i)*cfg.Dt)
		}
	}
}

func TestSimulatorDeterminism(t *testing.T) {
	run := func() *dynamo.Result {
		s := New(lorenz.New(), integrators.NewEuler())
		result, err := s.Run(context.Background(), dynamo.State{1, 1, 1}, referenceConfig())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return result
	}

	a := run()
	b := run()

	if !reflect.DeepEqual(a.States, b.States) {
		t.Error("two identical runs produced different state sequences")
	}
	if !reflect.DeepEqual(a.Times, b.Times) {
		t.Error("two identical runs produced different time sequences")
	}
}

// contaminatedEuler mimics the classic in-place update bug: each
// coordinate's derivative is applied before the next coordinate's
// derivative is computed, so later components read post-update values.
type contaminatedEuler struct{}

func (c *contaminatedEuler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	result := x.Clone()
	for i := range result {
		dx := dyn.Derive(result, t)
		result[i] += dt * dx[i]
	}
	return result
}

func TestSimulatorNoCrossContamination(t *testing.T) {
	cfg := dynamo.Config{Dt: 0.01, Steps: 50}
	x0 := dynamo.State{1, 1, 1}

	clean, err := New(lorenz.New(), integrators.NewEuler()).Run(context.Background(), x0, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	dirty, err := New(lorenz.New(), &contaminatedEuler{}).Run(context.Background(), x0, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	diff := clean.Final().Sub(dirty.Final()).Norm()
	if diff < 1e-6 {
		t.Errorf("sequential-update variant did not diverge (diff %.3e); step must snapshot the pre-step state", diff)
	}
}

func TestSimulatorDivergencePropagates(t *testing.T) {
	// No bounds checking: a huge dt blows the trajectory up, and the
	// run still completes with non-finite values recorded as data.
	s := New(lorenz.New(), integrators.NewEuler())

	cfg := dynamo.Config{Dt: 10.0, Steps: 50}
	result, err := s.Run(context.Background(), dynamo.State{1, 1, 1}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 50 {
		t.Errorf("expected all 50 steps despite blowup, got %d", result.StepsTaken)
	}
	final := result.Final()
	finite := true
	for _, v := range final {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
		}
	}
	if finite {
		t.Errorf("expected non-finite final state for dt=10, got %v", final)
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	s := New(lorenz.New(), integrators.NewEuler())

	_, err := s.Run(context.Background(), dynamo.State{1, 1}, referenceConfig())
	if !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSimulatorContextCancel(t *testing.T) {
	s := New(lorenz.New(), integrators.NewEuler())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx, dynamo.State{1, 1, 1}, referenceConfig())
	if !errors.Is(err, dynamo.ErrContextCanceled) {
		t.Fatalf("expected ErrContextCanceled, got %v", err)
	}
	if len(result.States) != 1 {
		t.Errorf("expected only the initial state in the partial result, got %d", len(result.States))
	}
}

type recordingObserver struct {
	states []dynamo.State
	times  []float64
}

func (r *recordingObserver) OnStep(x dynamo.State, t float64) {
	r.states = append(r.states, x.Clone())
	r.times = append(r.times, t)
}

func TestSimulatorObserversSeePostStepStates(t *testing.T) {
	s := New(lorenz.New(), integrators.NewEuler())

	obs := &recordingObserver{}
	s.AddObserver(obs)

	result, err := s.Run(context.Background(), dynamo.State{1, 1, 1}, dynamo.Config{Dt: 1e-3, Steps: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(obs.states) != 5 {
		t.Fatalf("expected 5 observations, got %d", len(obs.states))
	}
	for i := range obs.states {
		if !reflect.DeepEqual(obs.states[i], result.States[i+1]) {
			t.Errorf("observation %d does not match recorded state %d", i, i+1)
		}
	}
}

func TestRunWithCallbackStopsEarly(t *testing.T) {
	s := New(lorenz.New(), integrators.NewEuler())

	count := 0
	err := s.RunWithCallback(context.Background(), dynamo.State{1, 1, 1}, referenceConfig(), func(x dynamo.State, t float64) bool {
		count++
		return count < 10
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if count != 10 {
		t.Errorf("expected callback to stop the run at 10, got %d", count)
	}
}
