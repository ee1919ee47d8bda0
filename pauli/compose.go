package pauli

import "latticefold/errs"

// Compose returns the matrix product p*q (p applied after q, i.e. p on the
// left). For every pair of terms (ta from p, tb from q) the per-wire
// symplectic product rule applies: resulting Z/X masks are the XOR of the
// operands' masks, and the product picks up a real ±1 phase of
// (-1)^popcount(ta.X & tb.Z) from anticommuting X and Z past each other
// (Pauli squares introduce no phase, so XOR is exact regardless of bit
// overlap).
func (p Op) Compose(q Op) (Op, error) {
	if p.n != q.n {
		return Op{}, errs.Newf(errs.OperatorShape, "Compose: qubit count mismatch %d != %d", p.n, q.n)
	}
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, ta := range p.terms {
		for _, tb := range q.terms {
			overlap := ta.X.Clone()
			overlap.InPlaceIntersection(tb.Z)
			sign := complex(1, 0)
			if overlap.Count()%2 == 1 {
				sign = complex(-1, 0)
			}
			z := ta.Z.Clone()
			z.InPlaceSymmetricDifference(tb.Z)
			x := ta.X.Clone()
			x.InPlaceSymmetricDifference(tb.X)
			terms = append(terms, Term{Z: z, X: x, C: ta.C * tb.C * sign})
		}
	}
	return Op{n: p.n, terms: terms}.Simplify(), nil
}
