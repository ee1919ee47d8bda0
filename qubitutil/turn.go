package qubitutil

import "latticefold/pauli"

// TurnIndicator returns ½·(I − Z_k) on n qubits: a projector (rank one
// when n == 1) that reads 1 on configurations where wire k is |1⟩, 0
// otherwise.
func TurnIndicator(k, n int) (pauli.Op, error) {
	id := pauli.Identity(n, complex(NormFactor, 0))
	zop, err := pauli.FromSparse("Z", []int{k}, complex(-NormFactor, 0), n)
	if err != nil {
		return pauli.Op{}, err
	}
	sum, err := id.Add(zop)
	if err != nil {
		return pauli.Op{}, err
	}
	return sum.Simplify(), nil
}
