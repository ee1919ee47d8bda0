package pauli

import "github.com/bits-and-blooms/bitset"

// UnusedQubits returns the sorted wire indices that are identity (Z bit and
// X bit both zero) in every term.
func (p Op) UnusedQubits() []int {
	used := make([]bool, p.n)
	for _, t := range p.terms {
		for i := 0; i < p.n; i++ {
			if used[i] {
				continue
			}
			if t.Z.Test(uint(i)) || t.X.Test(uint(i)) {
				used[i] = true
			}
		}
	}
	var out []int
	for i := 0; i < p.n; i++ {
		if !used[i] {
			out = append(out, i)
		}
	}
	return out
}

// RemoveUnusedQubits projects out every always-identity wire, dropping
// those columns from every term's Z and X masks. Coefficients are
// unchanged. Calling this on an operator that already has zero qubits is a
// no-op, per spec.
func (p Op) RemoveUnusedQubits() Op {
	if p.n == 0 {
		return p
	}
	unused := p.UnusedQubits()
	if len(unused) == 0 {
		return p.Clone()
	}
	drop := make(map[int]bool, len(unused))
	for _, u := range unused {
		drop[u] = true
	}
	keep := make([]int, 0, p.n-len(unused))
	for i := 0; i < p.n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	newN := len(keep)
	terms := make([]Term, len(p.terms))
	for ti, t := range p.terms {
		nz := bitset.New(uint(newN))
		nx := bitset.New(uint(newN))
		for dst, src := range keep {
			if t.Z.Test(uint(src)) {
				nz.Set(uint(dst))
			}
			if t.X.Test(uint(src)) {
				nx.Set(uint(dst))
			}
		}
		terms[ti] = Term{Z: nz, X: nx, C: t.C}
	}
	return Op{n: newN, terms: terms}
}
