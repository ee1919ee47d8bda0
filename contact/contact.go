// Package contact builds the ContactMap: one-qubit indicator operators, one
// per admissible (i,j) pair, living on a dedicated contact register of
// width (N-1)^2.
package contact

import (
	"latticefold/errs"
	"latticefold/pauli"
	"latticefold/protein"
	"latticefold/qubitutil"
)

// MinSeparation is the minimum sequence separation a pair (i,j) must have
// to be eligible for a lattice contact.
const MinSeparation = 5

// Map is a sparse table keyed by (i,j), i<j, of 0/1-valued contact-flag
// operators on a register of width (N-1)^2.
type Map struct {
	width   int
	entries map[[2]int]pauli.Op
}

// Width returns (N-1)^2, the contact register width.
func (m Map) Width() int { return m.width }

// Entry returns the operator for pair (i,j). ok is false when the pair was
// skipped (same parity, or sequence separation below MinSeparation).
func (m Map) Entry(i, j int) (pauli.Op, bool) {
	op, ok := m.entries[[2]int{i, j}]
	return op, ok
}

// Build constructs the full ContactMap for a protein.
func Build(p protein.Protein) (Map, error) {
	N := p.Len()
	width := (N - 1) * (N - 1)

	entries := make(map[[2]int]pauli.Op)
	for i := 0; i < N; i++ {
		for j := i + 1; j < N; j++ {
			if p.MainChain().Bead(i).Sublattice() == p.MainChain().Bead(j).Sublattice() {
				continue
			}
			if j-i < MinSeparation {
				continue
			}
			wire := i*(N-1) + j
			if wire < 0 || wire >= width {
				return Map{}, errs.Newf(errs.OperatorShape, "contact wire %d out of range for width %d", wire, width)
			}
			z, err := qubitutil.ZString(width, []int{wire})
			if err != nil {
				return Map{}, err
			}
			op, err := qubitutil.ToQubits(z)
			if err != nil {
				return Map{}, err
			}
			entries[[2]int{i, j}] = op
		}
	}
	return Map{width: width, entries: entries}, nil
}
