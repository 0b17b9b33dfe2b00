package engine

import "time"

// System is one stage of the fixed per-tick pipeline
type System interface {
	// Name identifies the system in logs
	Name() string

	// Priority orders execution, lower values run first
	Priority() int

	// Phases is the set of phases the system runs in, checked against the phase at tick start
	Phases() PhaseMask

	Update(w *World, dt time.Duration, in Intents)
}
