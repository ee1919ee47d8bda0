package decode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"latticefold/errs"
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

// encodeForTest builds a bitstring that Decode is expected to turn back
// into exactly the given turn sequence, by inverting Decode's own
// assembly steps. This checks internal round-trip consistency, not an
// external reference encoding. turns[0] and turns[1] must be Dir0, Dir1
// (Decode always reinstates those two regardless of what is encoded).
func encodeForTest(t *testing.T, p protein.Protein, qubitsPerTurn int, turns []TurnDirection) string {
	t.Helper()
	if turns[0] != Dir0 || turns[1] != Dir1 {
		t.Fatalf("turns[0:2] must be Dir0,Dir1 — Decode always reinstates them")
	}
	codes, err := codesFor(qubitsPerTurn)
	if err != nil {
		t.Fatalf("codesFor: %v", err)
	}

	hasSide5 := p.HasSideChainAtPositionFive()
	thirdTurnFixed := qubitsPerTurn == 2 && !hasSide5

	// Rebuild "assembled" (descending turn order, turn N-2 down to 0),
	// then undo reverseGroupOrder and strip the reinstated groups/bit.
	var assembled strings.Builder
	for i := len(turns) - 1; i >= 0; i-- {
		assembled.WriteString(codes[turns[i]])
	}
	full := assembled.String()

	shape := full[:len(full)-2*qubitsPerTurn]
	if thirdTurnFixed {
		if len(shape) == 0 {
			shape = ""
		} else {
			shape = shape[:len(shape)-1]
		}
	}

	interactionBits := strings.Repeat("0", p.Len()*(p.Len()-5)/2)
	return interactionBits + shape
}

func TestDecodeRoundTripDense(t *testing.T) {
	p := mustProtein(t, "APRLRAP", "_______", 2)
	turns := []TurnDirection{Dir0, Dir1, Dir3, Dir2, Dir1, Dir0}
	bitstring := encodeForTest(t, p, 2, turns)
	result, err := Decode(p, 2, bitstring)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(result.Turns) != len(turns) {
		t.Fatalf("decoded %d turns, want %d", len(result.Turns), len(turns))
	}
	for i, d := range turns {
		if result.Turns[i] != d {
			t.Fatalf("turn %d = %v, want %v", i, result.Turns[i], d)
		}
	}
}

func TestDecodeRoundTripSparse(t *testing.T) {
	p := mustProtein(t, "APRLRAP", "_______", 4)
	turns := []TurnDirection{Dir0, Dir1, Dir2, Dir3, Dir1, Dir2}
	bitstring := encodeForTest(t, p, 4, turns)
	result, err := Decode(p, 4, bitstring)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i, d := range turns {
		if result.Turns[i] != d {
			t.Fatalf("turn %d = %v, want %v", i, result.Turns[i], d)
		}
	}
}

func TestDecodeWalkStepLengthsAreUnitAndSigned(t *testing.T) {
	p := mustProtein(t, "APRLRAP", "_______", 2)
	turns := []TurnDirection{Dir0, Dir1, Dir3, Dir2, Dir1, Dir0}
	bitstring := encodeForTest(t, p, 2, turns)
	result, err := Decode(p, 2, bitstring)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := 0; i < len(result.Coordinates)-1; i++ {
		a := result.Coordinates[i]
		b := result.Coordinates[i+1]
		dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
		length := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if math.Abs(length-1.0) > 1e-9 {
			t.Fatalf("step %d length = %v, want 1.0", i, length)
		}
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		want := fccBasis[turns[i]].scale(sign)
		if math.Abs(dx-want.x) > 1e-9 || math.Abs(dy-want.y) > 1e-9 || math.Abs(dz-want.z) > 1e-9 {
			t.Fatalf("step %d = (%v, %v, %v), want (-1)^%d * B[%v]", i, dx, dy, dz, i, turns[i])
		}
	}
}

func TestDecodeEmptyBitstringIsInvalidResult(t *testing.T) {
	p := mustProtein(t, "APRLRAP", "_______", 2)
	if _, err := Decode(p, 2, ""); err == nil {
		t.Fatalf("expected InvalidResult for empty bitstring")
	}
}

func TestDecodeUnknownTurnGroupIsConformationEncoding(t *testing.T) {
	p := mustProtein(t, "APRLR", "_____", 4)
	// Too short to reach the expected shape length -> InvalidResult, not
	// a silent wrong decode.
	if _, err := Decode(p, 4, "0"); err == nil {
		t.Fatalf("expected an error for a too-short bitstring")
	}
	// An all-zero shape portion holds "0000" groups, which are not in the
	// one-hot code table.
	_, err := Decode(p, 4, "00000000")
	var fe *errs.FoldError
	if !errors.As(err, &fe) || fe.Kind != errs.ConformationEncoding {
		t.Fatalf("Decode with unknown turn group: err = %v, want ConformationEncoding", err)
	}
}
