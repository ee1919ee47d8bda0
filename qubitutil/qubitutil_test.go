package qubitutil

import (
	"testing"

	"latticefold/pauli"
)

func TestFixQubitsSignFlip(t *testing.T) {
	p, err := pauli.FromSparse("Z", []int{1}, 1, 6)
	if err != nil {
		t.Fatalf("FromSparse: %v", err)
	}
	got := FixQubits(p, false)
	want := pauli.Identity(6, -1)
	if !got.Equal(want) {
		t.Fatalf("FixQubits(Z_1 on 6 qubits) = %v, want -I on 6 qubits", got.Terms())
	}
}

func TestFixQubitsIdempotent(t *testing.T) {
	p, err := pauli.FromSparse("ZZ", []int{1, 5}, 1, 8)
	if err != nil {
		t.Fatalf("FromSparse: %v", err)
	}
	once := FixQubits(p, false)
	twice := FixQubits(once, false)
	if !once.Equal(twice) {
		t.Fatalf("FixQubits is not idempotent: once=%v twice=%v", once.Terms(), twice.Terms())
	}
}

func TestTurnIndicatorIsProjectorLike(t *testing.T) {
	ti, err := TurnIndicator(0, 2)
	if err != nil {
		t.Fatalf("TurnIndicator: %v", err)
	}
	if ti.N() != 2 {
		t.Fatalf("N() = %d, want 2", ti.N())
	}
	sq, err := ti.Compose(ti)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !sq.Equal(ti) {
		t.Fatalf("turn indicator is not idempotent under composition (not a projector)")
	}
}

func TestZStringEmptyIsIdentity(t *testing.T) {
	z, err := ZString(3, nil)
	if err != nil {
		t.Fatalf("ZString: %v", err)
	}
	if !z.Equal(pauli.Identity(3, 1)) {
		t.Fatalf("ZString(n, {}) should be identity")
	}
}

func TestZStringOutOfRangeFails(t *testing.T) {
	if _, err := ZString(3, []int{5}); err == nil {
		t.Fatalf("expected OperatorShape error for out-of-range index")
	}
}

func TestToQubitsConvertsSignToFlag(t *testing.T) {
	z, err := pauli.FromSparse("Z", []int{0}, 1, 1)
	if err != nil {
		t.Fatalf("FromSparse: %v", err)
	}
	q, err := ToQubits(z)
	if err != nil {
		t.Fatalf("ToQubits: %v", err)
	}
	ti, err := TurnIndicator(0, 1)
	if err != nil {
		t.Fatalf("TurnIndicator: %v", err)
	}
	if !q.Equal(ti) {
		t.Fatalf("ToQubits(Z) should equal TurnIndicator")
	}
}
