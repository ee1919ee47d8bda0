package qubitutil

import "latticefold/pauli"

// fixedPositions are the main-chain turn-qubit wires forced to zero by the
// tetrahedral lattice's rotational/reflection symmetry.
var fixedPositions = [4]uint{0, 1, 2, 3}

// FixQubits applies the symmetry-reduction pass: the first two (and,
// absent a side bead at main-chain position 5, the third) turns are fixed
// by symmetry, so their Z-bits are forced to zero with matching coefficient
// sign corrections, per term:
//
//  1. if the operator's qubit count is > 1 and Z bit 1 is set, negate c.
//  2. if hasSideChainAtSecondBead is false, the qubit count is > 6, and Z
//     bit 5 is set, negate c.
//  3. clear Z bits at positions {0,1,2,3}, and also at 5 when
//     hasSideChainAtSecondBead is false.
//  4. leave X unchanged.
//
// Out-of-range positions (relative to the operator's qubit count) are
// explicit no-ops rather than errors: a term that doesn't reach that far
// passes through unchanged at that position. The result is simplified
// before being returned, so the pass is idempotent.
func FixQubits(op pauli.Op, hasSideChainAtSecondBead bool) pauli.Op {
	n := op.N()
	raw := op.RawTerms()
	out := make([]pauli.Term, len(raw))
	for i, t := range raw {
		z := t.Z.Clone()
		x := t.X.Clone()
		c := t.C

		if n > 1 && z.Test(1) {
			c = -c
		}
		if !hasSideChainAtSecondBead && n > 6 && z.Test(5) {
			c = -c
		}

		for _, pos := range fixedPositions {
			if pos < uint(n) {
				z.Clear(pos)
			}
		}
		if !hasSideChainAtSecondBead && uint(5) < uint(n) {
			z.Clear(5)
		}

		out[i] = pauli.Term{Z: z, X: x, C: c}
	}
	return pauli.FromTerms(n, out).Simplify()
}
