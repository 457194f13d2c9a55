// Package lorenz implements the Lorenz 63 convection model.
package lorenz

import "github.com/san-kum/lorenz63/internal/dynamo"

// Lorenz holds the three fixed coefficients of the model. The labels
// follow the reference run, not the conventional physical roles:
// rayleigh (8/3) multiplies (y-x) and prandtl (10) appears in dy,
// which is the opposite of the usual sigma/rho assignment.
type Lorenz struct{ prandtl, rayleigh, beta float64 }

// New returns the model with the reference coefficients 10, 8/3, 28.
func New() *Lorenz { return &Lorenz{10.0, 8.0 / 3.0, 28.0} }

// NewWith returns the model with explicit coefficients, in the
// reference run's labeling order.
func NewWith(prandtl, rayleigh, beta float64) *Lorenz {
	return &Lorenz{prandtl, rayleigh, beta}
}

func (l *Lorenz) StateDim() int { return 3 }

// Derive evaluates the Lorenz derivatives at one snapshot of s. All
// three components read the same pre-step coordinates; nothing is
// written back to s.
func (l *Lorenz) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{
		l.rayleigh * (s[1] - s[0]),
		s[0]*(l.prandtl-s[2]) - s[1],
		s[0]*s[1] - l.beta*s[2],
	}
}

// DefaultState is the reference initial position (1, 1, 1).
func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }

func (l *Lorenz) Params() map[string]float64 {
	return map[string]float64{"prandtl": l.prandtl, "rayleigh": l.rayleigh, "beta": l.beta}
}
