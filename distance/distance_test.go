package distance

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

func TestBuildCoversAllPairsAndWidth(t *testing.T) {
	p := mustProtein(t, "APRLR", "_____", 2)
	m, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Width() != p.TurnRegisterWidth() {
		t.Fatalf("Width() = %d, want %d", m.Width(), p.TurnRegisterWidth())
	}
	n := p.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			op, ok := m.Entry(i, j)
			if !ok {
				t.Fatalf("missing entry (%d,%d)", i, j)
			}
			if op.N() != m.Width() {
				t.Fatalf("entry (%d,%d) has width %d, want %d", i, j, op.N(), m.Width())
			}
		}
	}
	if _, ok := m.Entry(0, n); ok {
		t.Fatalf("entry (0,%d) should not exist", n)
	}
}

func TestAdjacentPairEntryIsIdentityShaped(t *testing.T) {
	p := mustProtein(t, "APRLR", "_____", 4)
	m, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	op, ok := m.Entry(0, 1)
	if !ok {
		t.Fatalf("missing entry (0,1)")
	}
	if op.N() != m.Width() {
		t.Fatalf("entry (0,1) width = %d, want %d", op.N(), m.Width())
	}
}
