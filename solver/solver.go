// Package solver declares the boundary contracts this module consumes
// from and hands off to its surrounding driver: a sampler that turns a
// compressed Hamiltonian into a best measurement, and a persister that
// stores a decoded result. Neither contract is implemented here — the VQE
// ansatz, optimiser, and on-disk formats are external collaborators.
package solver

import (
	"context"

	"latticefold/decode"
	"latticefold/errs"
	"latticefold/pauli"
)

// BestMeasurement is the record an external sampler reports for a
// compressed Hamiltonian: the most probable computational-basis outcome,
// its probability, the full state label it was drawn from, and the
// expectation value attached to it.
type BestMeasurement struct {
	Bitstring   string
	Probability float64
	State       string
	Value       float64
}

// Validate checks the minimal shape a BestMeasurement must have before
// decode.Decode can be handed its bitstring: a non-empty bitstring is
// required; an absent one is InvalidResult, matching spec.md's "missing
// best measurement" failure mode.
func (m BestMeasurement) Validate() error {
	if m.Bitstring == "" {
		return errs.New(errs.InvalidResult, "best measurement has no bitstring")
	}
	return nil
}

// Sampler is the external collaborator that turns a compressed cost
// operator into a best measurement. The core never inspects how sampling
// is performed (statevector, shot-based, hardware-transpiled).
type Sampler interface {
	Sample(ctx context.Context, op pauli.Op) (BestMeasurement, error)
}

// Persister is the external collaborator that accepts a decoded result and
// handles on-disk output (XYZ files, JSON dumps) — a concern this module's
// core deliberately does not own.
type Persister interface {
	Persist(ctx context.Context, result decode.DecodedResult) error
}
