// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical integrator interface
//   - [Observer]: per-step trajectory consumer
//
// # Example
//
//	dyn := lorenz.New()
//	integ := integrators.NewEuler()
//	s := sim.New(dyn, integ)
//	result, _ := s.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe; a run is a single
// deterministic sequence of steps.
package dynamo
