// Package pauli implements sparse Pauli-string operator algebra over n
// qubits: construction from labels, scalar and operator arithmetic,
// composition, tensoring, simplification, and qubit-count bookkeeping.
//
// A term is a (Z-mask, X-mask, coefficient) triple. Bit k of Z set means a Z
// on wire k; bit k of X set means an X on wire k; both set means the wire
// carries the product Z*X = i*Y, with that implicit phase folded into the
// term's coefficient wherever the term is read back out as a Pauli label
// (see Terms).
package pauli

import (
	"github.com/bits-and-blooms/bitset"

	"latticefold/errs"
)

// Term is one summand of an Op: a coefficient-weighted Pauli string encoded
// as a pair of equal-length bit masks.
type Term struct {
	Z *bitset.BitSet
	X *bitset.BitSet
	C complex128
}

// Op is a sparse sum of Terms over a fixed qubit count n. Op is a value
// type: every method returns a new Op rather than mutating its receiver or
// argument, matching the immutable-value-with-deep-copy convention used
// throughout this module.
type Op struct {
	n     int
	terms []Term
}

// N returns the qubit count this operator is defined over.
func (p Op) N() int { return p.n }

// NumTerms returns the number of summands currently held (before or after
// simplification).
func (p Op) NumTerms() int { return len(p.terms) }

func newMask(n int) *bitset.BitSet { return bitset.New(uint(n)) }

// Identity returns the n-qubit identity operator scaled by c.
func Identity(n int, c complex128) Op {
	if n < 0 {
		n = 0
	}
	return Op{n: n, terms: []Term{{Z: newMask(n), X: newMask(n), C: c}}}
}

// Zero returns the n-qubit additive zero operator (no terms).
func Zero(n int) Op {
	if n < 0 {
		n = 0
	}
	return Op{n: n, terms: nil}
}

// RawTerms exposes the term list for packages built on top of pauli (such
// as qubitutil's FixQubits) that need to inspect or rewrite individual
// Z/X masks directly. The returned Terms alias this Op's bitsets: callers
// must Clone a mask before mutating it.
func (p Op) RawTerms() []Term { return p.terms }

// FromTerms builds an Op directly from an already-constructed term list,
// for callers (qubitutil's bit-level rewrites) that build Terms by hand
// instead of through composition.
func FromTerms(n int, terms []Term) Op {
	return Op{n: n, terms: terms}
}

// FromSparse places label[k] on wire indices[k] (I, X, Y, or Z), identity on
// every other wire, scaled by coeff, over n qubits.
func FromSparse(label string, indices []int, coeff complex128, n int) (Op, error) {
	if n < 0 {
		return Op{}, errs.New(errs.OperatorShape, "FromSparse: negative qubit count")
	}
	runes := []rune(label)
	if len(runes) != len(indices) {
		return Op{}, errs.Newf(errs.OperatorShape, "FromSparse: label length %d != indices length %d", len(runes), len(indices))
	}
	z := newMask(n)
	x := newMask(n)
	c := coeff
	for k, ch := range runes {
		idx := indices[k]
		if idx < 0 || idx >= n {
			return Op{}, errs.Newf(errs.OperatorShape, "FromSparse: index %d out of range for %d qubits", idx, n)
		}
		switch ch {
		case 'I':
		case 'X':
			x.Set(uint(idx))
		case 'Z':
			z.Set(uint(idx))
		case 'Y':
			z.Set(uint(idx))
			x.Set(uint(idx))
			c *= complex(0, -1)
		default:
			return Op{}, errs.Newf(errs.OperatorShape, "FromSparse: unknown Pauli label %q", ch)
		}
	}
	return Op{n: n, terms: []Term{{Z: z, X: x, C: c}}}, nil
}

// Clone returns a deep copy: every term's masks are cloned so that no two
// Ops ever alias the same underlying bitset.
func (p Op) Clone() Op {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Z: t.Z.Clone(), X: t.X.Clone(), C: t.C}
	}
	return Op{n: p.n, terms: terms}
}

// ScalarMul scales every term's coefficient by s.
func (p Op) ScalarMul(s complex128) Op {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Z: t.Z.Clone(), X: t.X.Clone(), C: t.C * s}
	}
	return Op{n: p.n, terms: terms}
}

// Add concatenates the term lists of p and q. The result is not simplified:
// callers must call Simplify before relying on structural equality or
// serialisation, matching the documented contract.
func (p Op) Add(q Op) (Op, error) {
	if p.n != q.n {
		return Op{}, errs.Newf(errs.OperatorShape, "Add: qubit count mismatch %d != %d", p.n, q.n)
	}
	terms := make([]Term, 0, len(p.terms)+len(q.terms))
	for _, t := range p.terms {
		terms = append(terms, Term{Z: t.Z.Clone(), X: t.X.Clone(), C: t.C})
	}
	for _, t := range q.terms {
		terms = append(terms, Term{Z: t.Z.Clone(), X: t.X.Clone(), C: t.C})
	}
	return Op{n: p.n, terms: terms}, nil
}

// MustAdd panics on shape mismatch. Reserved for call sites that have
// already validated equal qubit counts and want to avoid repeating the
// error-return boilerplate inline.
func (p Op) MustAdd(q Op) Op {
	r, err := p.Add(q)
	if err != nil {
		panic(err)
	}
	return r
}

// Sum adds a list of operators that are known to share a qubit count,
// returning the zero operator on that width for an empty list. The result
// is not simplified.
func Sum(n int, ops []Op) (Op, error) {
	acc := Zero(n)
	for _, op := range ops {
		var err error
		acc, err = acc.Add(op)
		if err != nil {
			return Op{}, err
		}
	}
	return acc, nil
}
