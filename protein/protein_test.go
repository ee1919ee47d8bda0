package protein

import (
	"testing"

	"latticefold/pauli"
)

type fakeTable struct {
	valid map[byte]struct{}
}

func newFakeTable(symbols string) fakeTable {
	v := make(map[byte]struct{}, len(symbols))
	for i := 0; i < len(symbols); i++ {
		v[symbols[i]] = struct{}{}
	}
	return fakeTable{valid: v}
}

func (f fakeTable) Energy(a, b byte) (float64, error) { return 0, nil }
func (f fakeTable) ValidSymbols() map[byte]struct{}    { return f.valid }

func TestNewProteinChainLengthMismatch(t *testing.T) {
	table := newFakeTable("APRL")
	if _, err := NewProtein("APRLR", "____", 2, table); err == nil {
		t.Fatalf("expected ChainLength error for mismatched lengths")
	}
}

func TestNewProteinTooShort(t *testing.T) {
	table := newFakeTable("APRL")
	if _, err := NewProtein("APRL", "____", 2, table); err == nil {
		t.Fatalf("expected ChainLength error for N < 5")
	}
}

func TestNewProteinUnsupportedAminoAcid(t *testing.T) {
	table := newFakeTable("APRL")
	if _, err := NewProtein("APRLQ", "_____", 2, table); err == nil {
		t.Fatalf("expected UnsupportedAminoAcid error")
	}
}

func TestTerminalBeadTurnFunctionsUndefined(t *testing.T) {
	table := newFakeTable("APRLR")
	p, err := NewProtein("APRLR", "_____", 2, table)
	if err != nil {
		t.Fatalf("NewProtein: %v", err)
	}
	last := p.MainChain().Bead(p.Len() - 1)
	_, ok, err := last.TurnFunctions()
	if err != nil {
		t.Fatalf("terminal bead TurnFunctions should not error: %v", err)
	}
	if ok {
		t.Fatalf("terminal bead TurnFunctions should report undefined (ok=false)")
	}
}

func TestSparseTurnFunctionsPartitionOfUnity(t *testing.T) {
	table := newFakeTable("APRLR")
	p, err := NewProtein("APRLR", "_____", 4, table)
	if err != nil {
		t.Fatalf("NewProtein: %v", err)
	}
	bead := p.MainChain().Bead(0)
	funcs, ok, err := bead.TurnFunctions()
	if err != nil || !ok {
		t.Fatalf("TurnFunctions: ok=%v err=%v", ok, err)
	}
	sum := pauli.Zero(p.TurnRegisterWidth())
	for _, f := range funcs {
		sum = sum.MustAdd(f)
	}
	id := pauli.Identity(p.TurnRegisterWidth(), 1)
	if !sum.Equal(id) {
		t.Fatalf("sparse turn functions do not sum to identity")
	}
}

func TestDenseTurnFunctionsPartitionOfUnityAndOrthogonal(t *testing.T) {
	table := newFakeTable("APRLR")
	p, err := NewProtein("APRLR", "_____", 2, table)
	if err != nil {
		t.Fatalf("NewProtein: %v", err)
	}
	bead := p.MainChain().Bead(1)
	funcs, ok, err := bead.TurnFunctions()
	if err != nil || !ok {
		t.Fatalf("TurnFunctions: ok=%v err=%v", ok, err)
	}
	sum := pauli.Zero(p.TurnRegisterWidth())
	for _, f := range funcs {
		sum = sum.MustAdd(f)
	}
	id := pauli.Identity(p.TurnRegisterWidth(), 1)
	if !sum.Equal(id) {
		t.Fatalf("dense turn functions do not sum to identity")
	}
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			prod, err := funcs[a].Compose(funcs[b])
			if err != nil {
				t.Fatalf("Compose: %v", err)
			}
			if !prod.Equal(pauli.Zero(p.TurnRegisterWidth())) {
				t.Fatalf("t%d * t%d did not simplify to zero", a, b)
			}
		}
	}
}

func TestSideBeadTurnFunctionsNotImplemented(t *testing.T) {
	table := newFakeTable("APRLR")
	p, err := NewProtein("APRLR", "_A___", 2, table)
	if err != nil {
		t.Fatalf("NewProtein: %v", err)
	}
	if !p.HasSideChainAtPositionFive() {
		// chain length 5, no position-5 index (0-indexed positions 0..4) — expected false.
	}
	side := p.SideChain().Bead(1)
	_, _, err = side.TurnFunctions()
	if err == nil {
		t.Fatalf("expected NotImplemented error from side bead")
	}
}
