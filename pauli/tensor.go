package pauli

import (
	"github.com/bits-and-blooms/bitset"

	"latticefold/errs"
)

// Tensor returns p⊗q. q occupies the low wires [0, q.n); p occupies the
// high wires [q.n, q.n+p.n). This is the convention ResultDecoder's
// interaction-bit / shape-bit split depends on, so it must never change
// independently of the decoder.
func (p Op) Tensor(q Op) Op {
	n := p.n + q.n
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			z := combineMasks(q.n, tq.Z, p.n, tp.Z)
			x := combineMasks(q.n, tq.X, p.n, tp.X)
			terms = append(terms, Term{Z: z, X: x, C: tp.C * tq.C})
		}
	}
	return Op{n: n, terms: terms}
}

func combineMasks(loN int, lo *bitset.BitSet, hiN int, hi *bitset.BitSet) *bitset.BitSet {
	out := newMask(loN + hiN)
	for i := 0; i < loN; i++ {
		if lo.Test(uint(i)) {
			out.Set(uint(i))
		}
	}
	for i := 0; i < hiN; i++ {
		if hi.Test(uint(i)) {
			out.Set(uint(loN + i))
		}
	}
	return out
}

// PadTo widens p to m qubits by tensoring an identity of width m-n onto the
// high side: PadTo(m) == Identity(m-n, 1).Tensor(p). A no-op when m == n;
// an OperatorShape error when m < n.
func (p Op) PadTo(m int) (Op, error) {
	if m < p.n {
		return Op{}, errs.Newf(errs.OperatorShape, "PadTo: target width %d smaller than current width %d", m, p.n)
	}
	if m == p.n {
		return p.Clone(), nil
	}
	pad := Identity(m-p.n, 1)
	return pad.Tensor(p), nil
}
