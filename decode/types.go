// Package decode reverses the Protein encoding end to end: given a
// measurement bitstring, it reconstructs the turn sequence, walks the FCC
// lattice to 3-D coordinates, and reads back the set of detected
// main-chain contacts.
package decode

import "latticefold/errs"

// TurnDirection is one of the four tetrahedral step directions a bead can
// take relative to its predecessor.
type TurnDirection int

const (
	Dir0 TurnDirection = iota
	Dir1
	Dir2
	Dir3
)

// sparseCodes and denseCodes are the fixed little-endian bit groups used
// to encode/decode a turn under the one-hot (4 qubits/turn) and compact
// (2 qubits/turn) schemes, matching spec.md's literal tables.
var sparseCodes = map[TurnDirection]string{
	Dir0: "0001",
	Dir1: "0010",
	Dir2: "0100",
	Dir3: "1000",
}

var denseCodes = map[TurnDirection]string{
	Dir0: "00",
	Dir1: "01",
	Dir2: "10",
	Dir3: "11",
}

func codesFor(qubitsPerTurn int) (map[TurnDirection]string, error) {
	switch qubitsPerTurn {
	case 4:
		return sparseCodes, nil
	case 2:
		return denseCodes, nil
	default:
		return nil, errs.Newf(errs.ConformationEncoding, "unsupported QubitsPerTurn %d", qubitsPerTurn)
	}
}

func reverseLookup(codes map[TurnDirection]string) map[string]TurnDirection {
	out := make(map[string]TurnDirection, len(codes))
	for d, c := range codes {
		out[c] = d
	}
	return out
}

// BeadPosition is one entry of a decoded conformation: a bead's index,
// symbol, and 3-D coordinate.
type BeadPosition struct {
	Index  int
	Symbol byte
	X, Y, Z float64
}

// Contact is a detected main-chain contact between beads I and J (I<J).
type Contact struct {
	I, J int
}

// DecodedResult is the output of decoding a measurement bitstring: the
// turn sequence, the walked 3-D coordinates, and the detected contacts.
// All three are produced together.
type DecodedResult struct {
	Turns       []TurnDirection
	Coordinates []BeadPosition
	Contacts    []Contact
}
