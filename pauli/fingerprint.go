package pauli

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/crypto/sha3"
)

// TermView is the (Pauli label, coefficient) serialisation a sampler
// collaborator consumes: Label is a string like "IXZI" with one character
// per wire, Coeff already carries the phase implied by any wire where Z and
// X are both set (that wire reads 'Y' in Label and the i factor from Z*X=iY
// is folded into Coeff).
type TermView struct {
	Label string
	Coeff complex128
}

// Terms returns the (label, coefficient) view of every term, suitable for
// handing to an external sampler. Does not implicitly Simplify; call
// Simplify first if a canonical term list is required.
func (p Op) Terms() []TermView {
	out := make([]TermView, len(p.terms))
	for i, t := range p.terms {
		out[i] = termView(t, p.n)
	}
	return out
}

func termView(t Term, n int) TermView {
	overlap := t.Z.Clone()
	overlap.InPlaceIntersection(t.X)
	phase := iPow(overlap.Count())
	return TermView{Label: labelFor(t.Z, t.X, n), Coeff: t.C * phase}
}

func labelFor(z, x *bitset.BitSet, n int) string {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		zz := z.Test(uint(i))
		xx := x.Test(uint(i))
		switch {
		case !zz && !xx:
			buf[i] = 'I'
		case !zz && xx:
			buf[i] = 'X'
		case zz && !xx:
			buf[i] = 'Z'
		default:
			buf[i] = 'Y'
		}
	}
	return string(buf)
}

// iPow returns i^k for k>=0 via a mod-4 table, avoiding floating-point
// branch cuts from a general complex power.
func iPow(k uint) complex128 {
	switch k % 4 {
	case 0:
		return complex(1, 0)
	case 1:
		return complex(0, 1)
	case 2:
		return complex(-1, 0)
	default:
		return complex(0, -1)
	}
}

// Fingerprint returns a SHA3-256 digest of the operator's simplified,
// canonically-ordered term list: a stable content address a Sampler
// implementation can use to cache a sampling run by Hamiltonian content
// instead of by pointer identity.
func (p Op) Fingerprint() [32]byte {
	s := p.Simplify()
	views := s.Terms()
	sort.Slice(views, func(i, j int) bool { return views[i].Label < views[j].Label })
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "n=%d;", s.n)
	for _, v := range views {
		fmt.Fprintf(&buf, "%s:%.17g%+.17gi;", v.Label, real(v.Coeff), imag(v.Coeff))
	}
	return sha3.Sum256(buf.Bytes())
}
