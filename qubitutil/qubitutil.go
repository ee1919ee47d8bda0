// Package qubitutil builds the turn-indicator and symmetry-reduction
// primitives on top of package pauli: full identity, turn indicators,
// Z-strings, the qubit-flag conversion, FixQubits, and the unused-qubit
// wrappers used throughout protein/distance/contact/hamiltonian.
package qubitutil

import (
	"strings"

	"latticefold/errs"
	"latticefold/pauli"
)

// NormFactor is the ½ coefficient used by TurnIndicator and ToQubits to
// turn a ±1-valued Pauli observable into a 0/1-valued qubit flag.
const NormFactor = 0.5

// FullIdentity returns the n-qubit identity scaled by c.
func FullIdentity(n int, c complex128) pauli.Op {
	return pauli.Identity(n, c)
}

// ZString returns the product of Z on every wire in indices (identity when
// indices is empty). An index outside [0,n) is an OperatorShape error.
func ZString(n int, indices []int) (pauli.Op, error) {
	label := strings.Repeat("Z", len(indices))
	return pauli.FromSparse(label, indices, 1, n)
}

// ToQubits returns ½·(I − op): the 0/1-valued qubit flag corresponding to
// the ±1-valued Pauli observable op.
func ToQubits(op pauli.Op) (pauli.Op, error) {
	id := pauli.Identity(op.N(), complex(NormFactor, 0))
	neg := op.ScalarMul(complex(-NormFactor, 0))
	sum, err := id.Add(neg)
	if err != nil {
		return pauli.Op{}, errs.Wrap(errs.OperatorShape, "ToQubits", err)
	}
	return sum.Simplify(), nil
}

// PadToNQubits is a thin wrapper around pauli.Op.PadTo.
func PadToNQubits(op pauli.Op, m int) (pauli.Op, error) {
	return op.PadTo(m)
}

// FindUnusedQubits is a thin wrapper around pauli.Op.UnusedQubits.
func FindUnusedQubits(op pauli.Op) []int {
	return op.UnusedQubits()
}

// RemoveUnusedQubits is a thin wrapper around pauli.Op.RemoveUnusedQubits.
func RemoveUnusedQubits(op pauli.Op) pauli.Op {
	return op.RemoveUnusedQubits()
}
