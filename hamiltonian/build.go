// Package hamiltonian assembles the final cost operator from a protein's
// contact indicators, distance operators, pairwise interaction energies,
// and a backtracking penalty.
package hamiltonian

import (
	"latticefold/contact"
	"latticefold/distance"
	"latticefold/interaction"
	"latticefold/pauli"
	"latticefold/protein"
	"latticefold/qubitutil"
)

type shift struct{ di, dj int }

var secondNeighbourShifts = [4]shift{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Build combines contact.Map and distance.Map into the single cost
// operator H = H_bb + H_bt, padded to a common qubit width and simplified.
func Build(p protein.Protein, table interaction.Table, dm distance.Map, cm contact.Map) (pauli.Op, error) {
	bb, err := buildBackboneContactTerm(p, table, dm, cm)
	if err != nil {
		return pauli.Op{}, err
	}
	bt, err := buildBacktrackingPenalty(p)
	if err != nil {
		return pauli.Op{}, err
	}

	width := bb.N()
	if bt.N() > width {
		width = bt.N()
	}
	bbPadded, err := bb.PadTo(width)
	if err != nil {
		return pauli.Op{}, err
	}
	btPadded, err := bt.PadTo(width)
	if err != nil {
		return pauli.Op{}, err
	}

	sum, err := bbPadded.Add(btPadded)
	if err != nil {
		return pauli.Op{}, err
	}
	return sum.Simplify(), nil
}

func buildBackboneContactTerm(p protein.Protein, table interaction.Table, dm distance.Map, cm contact.Map) (pauli.Op, error) {
	hasSide5 := p.HasSideChainAtPositionFive()
	width := cm.Width() + dm.Width()
	acc := pauli.Zero(width)
	N := p.Len()

	for i := 0; i < N; i++ {
		for j := i + 1; j < N; j++ {
			if i+4 > j || (j-i)%2 == 0 {
				continue
			}
			contactOp, ok := cm.Entry(i, j)
			if !ok {
				continue
			}

			fn, err := firstNeighbour(p, table, dm, i, j, OverlapPenalty, hasSide5)
			if err != nil {
				return pauli.Op{}, err
			}
			term := contactOp.Tensor(fn)
			acc, err = acc.Add(term)
			if err != nil {
				return pauli.Op{}, err
			}

			for _, s := range secondNeighbourShifts {
				si, sj := i+s.di, j+s.dj
				if si < 0 || sj < 0 || si >= N || sj >= N || si >= sj {
					continue
				}
				if _, ok := dm.Entry(si, sj); !ok {
					continue
				}
				sn, err := secondNeighbour(p, table, dm, si, sj, OverlapPenalty, hasSide5)
				if err != nil {
					return pauli.Op{}, err
				}
				sterm := contactOp.Tensor(sn)
				acc, err = acc.Add(sterm)
				if err != nil {
					return pauli.Op{}, err
				}
			}

			acc = qubitutil.FixQubits(acc, hasSide5)
		}
	}
	return acc, nil
}

// firstNeighbour computes fix_qubits(lambda0*(x-I) + MJEnergyMultiplier*energy*I)
// where lambda0 = BoundingConstant*(j-i+1)*lambda1 and x = distance_map[i][j].
func firstNeighbour(p protein.Protein, table interaction.Table, dm distance.Map, i, j int, lambda1 float64, hasSide5 bool) (pauli.Op, error) {
	x, ok := dm.Entry(i, j)
	if !ok {
		return pauli.Op{}, nil
	}
	lambda0 := BoundingConstant * float64(j-i+1) * lambda1
	energy, err := table.Energy(p.MainChain().Bead(i).Symbol(), p.MainChain().Bead(j).Symbol())
	if err != nil {
		return pauli.Op{}, err
	}
	return assembleNeighbourTerm(x, complex(lambda0, 0), complex(-lambda0, 0), energy, hasSide5)
}

// secondNeighbour computes fix_qubits(lambda1*(2*I-x) + MJEnergyMultiplier*energy*I)
// where x = distance_map[i][j] for the (already shifted) i,j passed in.
func secondNeighbour(p protein.Protein, table interaction.Table, dm distance.Map, i, j int, lambda1 float64, hasSide5 bool) (pauli.Op, error) {
	x, ok := dm.Entry(i, j)
	if !ok {
		return pauli.Op{}, nil
	}
	energy, err := table.Energy(p.MainChain().Bead(i).Symbol(), p.MainChain().Bead(j).Symbol())
	if err != nil {
		return pauli.Op{}, err
	}
	return assembleNeighbourTerm(x, complex(-lambda1, 0), complex(2*lambda1, 0), energy, hasSide5)
}

// assembleNeighbourTerm returns fix_qubits(xCoeff*x + idCoeff*I + MJEnergyMultiplier*energy*I).
func assembleNeighbourTerm(x pauli.Op, xCoeff, idCoeff complex128, energy float64, hasSide5 bool) (pauli.Op, error) {
	n := x.N()
	id := pauli.Identity(n, idCoeff+complex(MJEnergyMultiplier*energy, 0))
	scaledX := x.ScalarMul(xCoeff)
	sum, err := scaledX.Add(id)
	if err != nil {
		return pauli.Op{}, err
	}
	return qubitutil.FixQubits(sum, hasSide5), nil
}

func buildBacktrackingPenalty(p protein.Protein) (pauli.Op, error) {
	n := p.TurnRegisterWidth()
	hasSide5 := p.HasSideChainAtPositionFive()
	acc := pauli.Zero(n)

	for i := 1; i < p.Len()-1; i++ {
		beadI := p.MainChain().Bead(i)
		beadNext := p.MainChain().Bead(i + 1)
		funcsI, okI, err := beadI.TurnFunctions()
		if err != nil {
			return pauli.Op{}, err
		}
		funcsNext, okNext, err := beadNext.TurnFunctions()
		if err != nil {
			return pauli.Op{}, err
		}
		if !okI || !okNext {
			continue
		}
		turnProduct := pauli.Zero(n)
		for a := 0; a < 4; a++ {
			prod, err := funcsI[a].Compose(funcsNext[a])
			if err != nil {
				return pauli.Op{}, err
			}
			turnProduct, err = turnProduct.Add(prod)
			if err != nil {
				return pauli.Op{}, err
			}
		}
		acc, err = acc.Add(turnProduct.ScalarMul(complex(BackPenalty, 0)))
		if err != nil {
			return pauli.Op{}, err
		}
	}
	return qubitutil.FixQubits(acc, hasSide5), nil
}
