package decode

import (
	"latticefold/errs"
	"latticefold/protein"
)

// Decode reverses the encoding for a measurement bitstring: it reconstructs
// the turn sequence, walks the FCC lattice, and reads the contact flags
// carried in the bitstring's interaction portion.
//
// bitstring must be the raw "0"/"1" string the external sampler reports for
// the compressed Hamiltonian, with no width padding applied by the caller.
func Decode(p protein.Protein, qubitsPerTurn int, bitstring string) (DecodedResult, error) {
	if bitstring == "" {
		return DecodedResult{}, errs.New(errs.InvalidResult, "empty measurement bitstring")
	}
	codes, err := codesFor(qubitsPerTurn)
	if err != nil {
		return DecodedResult{}, err
	}
	byCode := reverseLookup(codes)

	N := p.Len()
	hasSide5 := p.HasSideChainAtPositionFive()
	thirdTurnFixed := qubitsPerTurn == 2 && !hasSide5

	shapeLen := qubitsPerTurn * (N - 3)
	if thirdTurnFixed {
		shapeLen--
	}
	if shapeLen < 0 {
		shapeLen = 0
	}
	if len(bitstring) < shapeLen {
		return DecodedResult{}, errs.Newf(errs.InvalidResult, "bitstring shorter than expected shape length %d", shapeLen)
	}

	shape := bitstring[len(bitstring)-shapeLen:]
	interactionPortion := bitstring[:len(bitstring)-shapeLen]

	// shape lists turns N-2 down to 2, each group in low-wire-first bit
	// order, left to right in descending turn index. Reinstating the two
	// symmetry-fixed turns appends their groups so the whole assembled
	// string continues that descending order down through turn 1 and
	// turn 0; reversing the GROUP order (not the bits within a group)
	// then yields ascending turn order 0..N-2, which decodeTurns reads
	// off directly.
	assembled := shape
	if thirdTurnFixed {
		// shape's last character is turn 2's one free (low) bit; the
		// fixed high bit completes that turn's group.
		assembled += "1"
	}
	assembled += codes[Dir1] + codes[Dir0]

	orderedGroups := reverseGroupOrder(assembled, qubitsPerTurn)

	turns, err := decodeTurns(orderedGroups, qubitsPerTurn, byCode)
	if err != nil {
		return DecodedResult{}, err
	}
	if len(turns) != N-1 {
		return DecodedResult{}, errs.Newf(errs.ConformationEncoding, "decoded %d turns, want %d", len(turns), N-1)
	}

	contacts := decodeContacts(interactionPortion, N)
	coords := walk(p, turns)

	return DecodedResult{Turns: turns, Coordinates: coords, Contacts: contacts}, nil
}

func decodeTurns(bits string, qubitsPerTurn int, byCode map[string]TurnDirection) ([]TurnDirection, error) {
	if len(bits)%qubitsPerTurn != 0 {
		return nil, errs.Newf(errs.ConformationEncoding, "assembled turn bits length %d not a multiple of %d", len(bits), qubitsPerTurn)
	}
	count := len(bits) / qubitsPerTurn
	out := make([]TurnDirection, count)
	for i := 0; i < count; i++ {
		group := bits[i*qubitsPerTurn : (i+1)*qubitsPerTurn]
		d, ok := byCode[group]
		if !ok {
			return nil, errs.Newf(errs.ConformationEncoding, "unknown turn encoding %q", group)
		}
		out[i] = d
	}
	return out, nil
}

// decodeContacts consumes bits from the head of the interaction portion in
// the fixed iteration order: for i in [0,N-5), for j in [i+5,N) step 2.
func decodeContacts(bits string, N int) []Contact {
	var contacts []Contact
	pos := 0
	for i := 0; i < N-5; i++ {
		for j := i + 5; j < N; j += 2 {
			if pos >= len(bits) {
				return contacts
			}
			if bits[pos] == '1' {
				contacts = append(contacts, Contact{I: i, J: j})
			}
			pos++
		}
	}
	return contacts
}

func walk(p protein.Protein, turns []TurnDirection) []BeadPosition {
	pos := vec3{}
	coords := make([]BeadPosition, 0, p.Len())
	coords = append(coords, BeadPosition{
		Index:  0,
		Symbol: p.MainChain().Bead(0).Symbol(),
		X:      pos.x, Y: pos.y, Z: pos.z,
	})
	for i, d := range turns {
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		pos = pos.add(fccBasis[d].scale(sign))
		coords = append(coords, BeadPosition{
			Index:  i + 1,
			Symbol: p.MainChain().Bead(i + 1).Symbol(),
			X:      pos.x, Y: pos.y, Z: pos.z,
		})
	}
	return coords
}

// reverseGroupOrder splits s into groupSize-wide groups and returns them
// concatenated in reverse order, leaving each group's own bit order intact
// (this is the encoder/decoder's "endianness" correction, applied at turn
// granularity rather than bit granularity).
func reverseGroupOrder(s string, groupSize int) string {
	n := len(s) / groupSize
	out := make([]byte, 0, len(s))
	for i := n - 1; i >= 0; i-- {
		out = append(out, s[i*groupSize:(i+1)*groupSize]...)
	}
	return string(out)
}
