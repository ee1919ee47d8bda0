package pauli

import (
	"math/cmplx"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the near-zero coefficient clamp applied by Simplify: a
// coalesced term with |c| below Epsilon is dropped rather than kept as a
// vanishingly small residual.
const Epsilon = 1e-12

type bucket struct {
	z, x *bitset.BitSet
	c    complex128
}

// Simplify groups terms by identical (Z,X) masks, sums their coefficients,
// and drops any coalesced term whose magnitude falls below Epsilon. The
// result is the canonical form used for structural equality and
// serialisation.
func (p Op) Simplify() Op {
	order := make([]string, 0, len(p.terms))
	buckets := make(map[string]*bucket, len(p.terms))
	for _, t := range p.terms {
		key := canonicalKey(t.Z, t.X, p.n)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{z: t.Z.Clone(), x: t.X.Clone(), c: 0}
			buckets[key] = b
			order = append(order, key)
		}
		b.c += t.C
	}
	out := make([]Term, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		if cmplx.Abs(b.c) < Epsilon {
			continue
		}
		out = append(out, Term{Z: b.z, X: b.x, C: b.c})
	}
	return Op{n: p.n, terms: out}
}

// canonicalKey packs a (Z,X) mask pair into an exact byte-string map key:
// one bit per wire, tested via BitSet.Test, no hashing. Safe for any n.
func canonicalKey(z, x *bitset.BitSet, n int) string {
	numBytes := (n + 7) / 8
	buf := make([]byte, 2*numBytes)
	for i := 0; i < n; i++ {
		if z.Test(uint(i)) {
			buf[i/8] |= 1 << uint(i%8)
		}
		if x.Test(uint(i)) {
			buf[numBytes+i/8] |= 1 << uint(i%8)
		}
	}
	return string(buf)
}

// Equal compares the simplified canonical forms of p and q: same qubit
// count and the same multiset of (Z,X,coefficient) terms within Epsilon.
func (p Op) Equal(q Op) bool {
	if p.n != q.n {
		return false
	}
	a := p.Simplify()
	b := q.Simplify()
	if len(a.terms) != len(b.terms) {
		return false
	}
	bm := make(map[string]complex128, len(b.terms))
	for _, t := range b.terms {
		bm[canonicalKey(t.Z, t.X, b.n)] = t.C
	}
	for _, t := range a.terms {
		c, ok := bm[canonicalKey(t.Z, t.X, a.n)]
		if !ok || cmplx.Abs(c-t.C) > 1e-9 {
			return false
		}
	}
	return true
}

// MaxImagResidual returns the largest |Im(c)| across the simplified term
// list, used to detect a malformed (non-Hermitian) Hamiltonian.
func (p Op) MaxImagResidual() float64 {
	s := p.Simplify()
	var max float64
	for _, t := range s.terms {
		if v := cmplxAbsImag(t.C); v > max {
			max = v
		}
	}
	return max
}

func cmplxAbsImag(c complex128) float64 {
	im := imag(c)
	if im < 0 {
		return -im
	}
	return im
}
