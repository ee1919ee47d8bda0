package protein

import (
	"latticefold/errs"
	"latticefold/interaction"
)

// MinChainLength is the shortest main chain this module supports: below
// this length no pair can satisfy ContactMap's sequence-separation test.
const MinChainLength = 5

// Protein is the immutable pairing of a main chain and a side chain,
// constructed once and validated against an interaction table's valid
// symbol set.
type Protein struct {
	main          MainChain
	side          SideChain
	qubitsPerTurn int
}

// NewProtein builds a Protein from parallel main/side symbol strings. The
// side string uses '_' at any position with no side bead. qubitsPerTurn
// selects the sparse (4) or dense (2) turn encoding.
func NewProtein(mainSymbols, sideSymbols string, qubitsPerTurn int, table interaction.Table) (Protein, error) {
	if len(mainSymbols) != len(sideSymbols) {
		return Protein{}, errs.Newf(errs.ChainLength, "main chain length %d != side chain length %d", len(mainSymbols), len(sideSymbols))
	}
	n := len(mainSymbols)
	if n < MinChainLength {
		return Protein{}, errs.Newf(errs.ChainLength, "chain length %d below minimum %d", n, MinChainLength)
	}

	valid := table.ValidSymbols()

	mainBeads := make([]MainBead, n)
	for i := 0; i < n; i++ {
		sym := mainSymbols[i]
		if _, ok := valid[sym]; !ok {
			return Protein{}, errs.Newf(errs.UnsupportedAminoAcid, "main chain symbol %q at position %d is not valid", sym, i)
		}
		bead, err := NewMainBead(i, sym, n, qubitsPerTurn)
		if err != nil {
			return Protein{}, err
		}
		mainBeads[i] = bead
	}

	sideBeads := make([]Bead, n)
	for i := 0; i < n; i++ {
		sym := sideSymbols[i]
		if sym == '_' {
			sideBeads[i] = NewPlaceholderBead(i)
			continue
		}
		if _, ok := valid[sym]; !ok {
			return Protein{}, errs.Newf(errs.UnsupportedAminoAcid, "side chain symbol %q at position %d is not valid", sym, i)
		}
		sideBeads[i] = NewSideBead(i, sym)
	}

	return Protein{
		main:          MainChain{beads: mainBeads},
		side:          SideChain{beads: sideBeads},
		qubitsPerTurn: qubitsPerTurn,
	}, nil
}

// MainChain returns the backbone.
func (p Protein) MainChain() MainChain { return p.main }

// SideChain returns the pendant sequence.
func (p Protein) SideChain() SideChain { return p.side }

// QubitsPerTurn returns the turn encoding width (2 dense or 4 sparse).
func (p Protein) QubitsPerTurn() int { return p.qubitsPerTurn }

// Len returns the shared main/side chain length N.
func (p Protein) Len() int { return p.main.Len() }

// TurnRegisterWidth returns (N-1)*QubitsPerTurn, the width of the turn
// qubit register shared by DistanceMap and HamiltonianBuilder.
func (p Protein) TurnRegisterWidth() int {
	return (p.Len() - 1) * p.qubitsPerTurn
}

// HasSideChainAtPositionFive reports whether main-chain position 5 (the
// position fix_qubits's third-turn rule is conditioned on) has a real side
// bead. False both when the chain is too short to have a position 5 and
// when that position is a placeholder.
func (p Protein) HasSideChainAtPositionFive() bool {
	return p.side.HasRealBeadAt(5)
}
