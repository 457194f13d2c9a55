package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every coordinate is a finite number. The
// simulator never aborts on an invalid state; this exists for display
// and test code that wants to flag divergence.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

type Observer interface {
	OnStep(x State, t float64)
}

type Configurable interface {
	Params() map[string]float64
}

// Config fixes a run: step size and step count. Dt is not validated;
// dt <= 0 integrates backward or not at all.
type Config struct {
	Dt    float64
	Steps int
}

type Result struct {
	States     []State
	Times      []float64
	StepsTaken int
}

// Final returns the last recorded state, which is the initial state
// when no steps were taken.
func (r *Result) Final() State {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}
