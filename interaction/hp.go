package interaction

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"latticefold/errs"
)

// HPInteraction is the coarse hydrophobic/polar model: −1.0 between two
// hydrophobic residues, 0.0 otherwise.
type HPInteraction struct {
	hydrophobic map[byte]struct{}
	valid       map[byte]struct{}
}

// NewHPInteraction parses a two-column table (symbol, 0|1) from r. Lines
// starting with '#' and blank lines are ignored.
func NewHPInteraction(r io.Reader) (*HPInteraction, error) {
	sc := bufio.NewScanner(r)
	hydro := make(map[byte]struct{})
	valid := make(map[byte]struct{})

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		sym := fields[0]
		if len(sym) != 1 {
			return nil, errs.Newf(errs.UnsupportedAminoAcid, "HP matrix: symbol %q must be one character", sym)
		}
		flag, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errs.Wrap(errs.UnsupportedAminoAcid, "HP matrix: parse flag", err)
		}
		valid[sym[0]] = struct{}{}
		if flag == 1 {
			hydro[sym[0]] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &HPInteraction{hydrophobic: hydro, valid: valid}, nil
}

// Energy returns −1.0 iff both a and b are hydrophobic, else 0.0. Either
// symbol absent from the parsed table is UnsupportedAminoAcid.
func (h *HPInteraction) Energy(a, b byte) (float64, error) {
	if _, ok := h.valid[a]; !ok {
		return 0, errs.Newf(errs.UnsupportedAminoAcid, "symbol %q not valid under HP model", a)
	}
	if _, ok := h.valid[b]; !ok {
		return 0, errs.Newf(errs.UnsupportedAminoAcid, "symbol %q not valid under HP model", b)
	}
	_, ha := h.hydrophobic[a]
	_, hb := h.hydrophobic[b]
	if ha && hb {
		return -1.0, nil
	}
	return 0.0, nil
}

// ValidSymbols returns the union of hydrophobic and polar symbols.
func (h *HPInteraction) ValidSymbols() map[byte]struct{} {
	return h.valid
}
