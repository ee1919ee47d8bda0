// Package protein implements the Bead/Chain/Protein data model: residues
// carrying an index, a one-letter symbol, and a sublattice parity, with
// non-terminal main-chain beads exposing four turn-function projectors
// built on top of package qubitutil.
package protein

import (
	"latticefold/errs"
	"latticefold/pauli"
	"latticefold/qubitutil"
)

// Bead is a residue at a known position in a chain. Side and placeholder
// beads implement the same interface as main beads but return a
// NotImplemented FoldError from TurnFunctions, since the side-chain
// operator algebra is reserved and not built out here.
type Bead interface {
	Index() int
	Symbol() byte
	Sublattice() int // 0 or 1, Index() mod 2

	// TurnFunctions returns the four turn-direction projectors t0..t3 for
	// this bead. ok is false for a terminal bead (turn functions are
	// undefined there, not zero — callers use that to short-circuit).
	TurnFunctions() (funcs [4]pauli.Op, ok bool, err error)
}

// MainBead is a backbone residue. Every non-terminal MainBead owns
// QubitsPerTurn turn indicators on a register of width
// (chainLength-1)*QubitsPerTurn, placed at wires
// QubitsPerTurn*Index()+i for i in 0..QubitsPerTurn.
type MainBead struct {
	index         int
	symbol        byte
	terminal      bool
	qubitsPerTurn int
	registerWidth int
	wireBase      int
}

// NewMainBead builds the bead at position index in a main chain of the
// given total length, on a turn register sized for qubitsPerTurn (2 or 4).
func NewMainBead(index int, symbol byte, chainLength, qubitsPerTurn int) (MainBead, error) {
	if chainLength < 1 || index < 0 || index >= chainLength {
		return MainBead{}, errs.Newf(errs.ChainLength, "bead index %d out of range for chain length %d", index, chainLength)
	}
	if qubitsPerTurn != 2 && qubitsPerTurn != 4 {
		return MainBead{}, errs.Newf(errs.OperatorShape, "unsupported QubitsPerTurn %d", qubitsPerTurn)
	}
	terminal := index == chainLength-1
	return MainBead{
		index:         index,
		symbol:        symbol,
		terminal:      terminal,
		qubitsPerTurn: qubitsPerTurn,
		registerWidth: (chainLength - 1) * qubitsPerTurn,
		wireBase:      qubitsPerTurn * index,
	}, nil
}

func (b MainBead) Index() int      { return b.index }
func (b MainBead) Symbol() byte    { return b.symbol }
func (b MainBead) Sublattice() int { return b.index % 2 }
func (b MainBead) Terminal() bool  { return b.terminal }

// TurnFunctions builds t0..t3 from this bead's turn indicators: the
// one-hot indicators directly under the sparse (4-qubit) encoding, or the
// four degree-2 Boolean-decoder combinations under the dense (2-qubit)
// encoding.
func (b MainBead) TurnFunctions() ([4]pauli.Op, bool, error) {
	if b.terminal {
		return [4]pauli.Op{}, false, nil
	}
	n := b.registerWidth
	switch b.qubitsPerTurn {
	case 4:
		var out [4]pauli.Op
		for i := 0; i < 4; i++ {
			ti, err := qubitutil.TurnIndicator(b.wireBase+i, n)
			if err != nil {
				return [4]pauli.Op{}, false, err
			}
			out[i] = ti
		}
		return out, true, nil
	case 2:
		a, err := qubitutil.TurnIndicator(b.wireBase, n)
		if err != nil {
			return [4]pauli.Op{}, false, err
		}
		bb, err := qubitutil.TurnIndicator(b.wireBase+1, n)
		if err != nil {
			return [4]pauli.Op{}, false, err
		}
		id := pauli.Identity(n, 1)

		iMinusA, err := id.Add(a.ScalarMul(-1))
		if err != nil {
			return [4]pauli.Op{}, false, err
		}
		iMinusB, err := id.Add(bb.ScalarMul(-1))
		if err != nil {
			return [4]pauli.Op{}, false, err
		}
		t0, err := iMinusA.Compose(iMinusB)
		if err != nil {
			return [4]pauli.Op{}, false, err
		}

		bMinusA, err := bb.Add(a.ScalarMul(-1))
		if err != nil {
			return [4]pauli.Op{}, false, err
		}
		t1, err := bb.Compose(bMinusA)
		if err != nil {
			return [4]pauli.Op{}, false, err
		}

		aMinusB, err := a.Add(bb.ScalarMul(-1))
		if err != nil {
			return [4]pauli.Op{}, false, err
		}
		t2, err := a.Compose(aMinusB)
		if err != nil {
			return [4]pauli.Op{}, false, err
		}

		t3, err := a.Compose(bb)
		if err != nil {
			return [4]pauli.Op{}, false, err
		}

		return [4]pauli.Op{t0, t1, t2, t3}, true, nil
	default:
		return [4]pauli.Op{}, false, errs.Newf(errs.OperatorShape, "unsupported QubitsPerTurn %d", b.qubitsPerTurn)
	}
}

// ErrSideChainNotImplemented is returned by every side-chain operator
// accessor: side-chain operator algebra is not built out.
var ErrSideChainNotImplemented = errs.New(errs.NotImplemented, "side-chain operator algebra is not implemented")

// SideBead is a pendant residue. Its operator algebra is reserved; it only
// carries enough state to keep chain indexing consistent.
type SideBead struct {
	index  int
	symbol byte
}

// NewSideBead builds a side bead at the given chain position.
func NewSideBead(index int, symbol byte) SideBead {
	return SideBead{index: index, symbol: symbol}
}

func (b SideBead) Index() int      { return b.index }
func (b SideBead) Symbol() byte    { return b.symbol }
func (b SideBead) Sublattice() int { return b.index % 2 }

func (b SideBead) TurnFunctions() ([4]pauli.Op, bool, error) {
	return [4]pauli.Op{}, false, ErrSideChainNotImplemented
}

// PlaceholderBead marks an absent side bead (reserved symbol '_'); it is
// inert and keeps side-chain indexing aligned with the main chain.
type PlaceholderBead struct {
	index int
}

// NewPlaceholderBead builds the placeholder at the given chain position.
func NewPlaceholderBead(index int) PlaceholderBead {
	return PlaceholderBead{index: index}
}

func (b PlaceholderBead) Index() int      { return b.index }
func (b PlaceholderBead) Symbol() byte    { return '_' }
func (b PlaceholderBead) Sublattice() int { return b.index % 2 }

func (b PlaceholderBead) TurnFunctions() ([4]pauli.Op, bool, error) {
	return [4]pauli.Op{}, false, ErrSideChainNotImplemented
}
