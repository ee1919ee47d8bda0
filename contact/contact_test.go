package contact

import (
	"strings"
	"testing"

	"latticefold/interaction"
	"latticefold/protein"
)

func mustProtein(t *testing.T, main, side string, qpt int) protein.Protein {
	t.Helper()
	mj, err := interaction.NewMJInteraction(strings.NewReader(
		"A P R L\n" +
			"A 1.0 2.0 3.0 4.0\n" +
			"P 5.0 6.0 7.0\n" +
			"R 8.0 9.0\n" +
			"L 10.0\n"))
	if err != nil {
		t.Fatalf("NewMJInteraction: %v", err)
	}
	p, err := protein.NewProtein(main, side, qpt, mj)
	if err != nil {
		t.Fatalf("NewProtein: %v", err)
	}
	return p
}

func TestBuildSkipsSameParityAndCloseSeparation(t *testing.T) {
	p := mustProtein(t, "APRLRAP", "_______", 2)
	m, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Width() != (p.Len()-1)*(p.Len()-1) {
		t.Fatalf("Width() = %d, want %d", m.Width(), (p.Len()-1)*(p.Len()-1))
	}
	// (0,1): same separation 1 < 5, skip regardless of parity.
	if _, ok := m.Entry(0, 1); ok {
		t.Fatalf("entry (0,1) should be skipped (separation < 5)")
	}
	// (0,2): opposite separation but same-ish parity check: sublattice(0)=0, sublattice(2)=0 -> same parity, skip.
	if _, ok := m.Entry(0, 2); ok {
		t.Fatalf("entry (0,2) should be skipped (same parity)")
	}
	// (0,5): separation 5, opposite parity (0 vs 1) -> eligible.
	op, ok := m.Entry(0, 5)
	if !ok {
		t.Fatalf("entry (0,5) should exist")
	}
	if op.N() != m.Width() {
		t.Fatalf("entry (0,5) width = %d, want %d", op.N(), m.Width())
	}
}

func TestWireIndexFormula(t *testing.T) {
	p := mustProtein(t, "APRLRAP", "_______", 2)
	m, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	op, ok := m.Entry(0, 5)
	if !ok {
		t.Fatalf("entry (0,5) should exist")
	}
	unused := op.UnusedQubits()
	wire := 0*(p.Len()-1) + 5
	for _, u := range unused {
		if u == wire {
			t.Fatalf("wire %d should be used by entry (0,5)", wire)
		}
	}
}
