// Package integrators provides fixed-step numerical integration schemes.
package integrators

import "github.com/san-kum/lorenz63/internal/dynamo"

// Euler is the forward (explicit) Euler scheme: x' = x + dt*f(x, t).
// The derivative is evaluated once at the pre-step state, so no
// coordinate of the update sees an already-updated neighbor. dt is
// taken as given; dt <= 0 integrates backward or not at all.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
