// Package distance builds the DistanceMap: for every ordered pair of
// main-chain beads (i<j), the squared four-axis signed sum of intermediate
// turn indicators, fixed through qubitutil.FixQubits on each axis before it
// is squared and again on the final entry.
package distance

import (
	"fmt"

	"latticefold/errs"
	"latticefold/pauli"
	"latticefold/protein"
	"latticefold/qubitutil"
)

// Map is a sparse table keyed by (i,j), i<j, of squared-distance operators
// on the protein's turn register.
type Map struct {
	width   int
	entries map[[2]int]pauli.Op
}

// Width returns (N-1)*QubitsPerTurn, the turn register these operators live on.
func (m Map) Width() int { return m.width }

// Entry returns the operator for pair (i,j), i<j. The second return value
// is false if the pair was never built (out of range).
func (m Map) Entry(i, j int) (pauli.Op, bool) {
	op, ok := m.entries[[2]int{i, j}]
	return op, ok
}

// Build constructs the full DistanceMap for a protein.
func Build(p protein.Protein) (Map, error) {
	n := p.TurnRegisterWidth()
	hasSide5 := p.HasSideChainAtPositionFive()
	N := p.Len()

	entries := make(map[[2]int]pauli.Op)
	for i := 0; i < N; i++ {
		for j := i + 1; j < N; j++ {
			entry, err := buildEntry(p, i, j, n, hasSide5)
			if err != nil {
				return Map{}, errs.Wrap(errs.OperatorShape, fmt.Sprintf("distance map entry (%d,%d)", i, j), err)
			}
			entries[[2]int{i, j}] = entry
		}
	}
	return Map{width: n, entries: entries}, nil
}

func buildEntry(p protein.Protein, i, j, n int, hasSide5 bool) (pauli.Op, error) {
	axes := [4]pauli.Op{pauli.Zero(n), pauli.Zero(n), pauli.Zero(n), pauli.Zero(n)}

	for k := i; k < j; k++ {
		bead := p.MainChain().Bead(k)
		funcs, ok, err := bead.TurnFunctions()
		if err != nil {
			return pauli.Op{}, err
		}
		if !ok {
			continue
		}
		sign := complex(1, 0)
		if k%2 != 0 {
			sign = complex(-1, 0)
		}
		for a := 0; a < 4; a++ {
			term := funcs[a].ScalarMul(sign)
			axes[a], err = axes[a].Add(term)
			if err != nil {
				return pauli.Op{}, err
			}
		}
	}

	entry := pauli.Zero(n)
	for a := 0; a < 4; a++ {
		fixed := qubitutil.FixQubits(axes[a], hasSide5)
		squared, err := fixed.Compose(fixed)
		if err != nil {
			return pauli.Op{}, err
		}
		entry, err = entry.Add(squared)
		if err != nil {
			return pauli.Op{}, err
		}
	}

	return qubitutil.FixQubits(entry, hasSide5), nil
}
