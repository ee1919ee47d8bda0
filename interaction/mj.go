package interaction

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"latticefold/errs"
)

// MJInteraction is a Miyazawa–Jernigan pair-energy table parsed from a
// whitespace-separated upper-triangular matrix: a header row of residue
// symbols, then one row per symbol holding the energies for columns
// c >= r-1 (diagonal included).
type MJInteraction struct {
	energy map[[2]byte]float64
	valid  map[byte]struct{}
}

// NewMJInteraction parses r into an MJInteraction table.
func NewMJInteraction(r io.Reader) (*MJInteraction, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var header []byte
	energy := make(map[[2]byte]float64)
	valid := make(map[byte]struct{})
	row := 0

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if header == nil {
			for _, f := range fields {
				if len(f) != 1 {
					return nil, errs.Newf(errs.UnsupportedAminoAcid, "MJ matrix: header symbol %q must be one character", f)
				}
				header = append(header, f[0])
				valid[f[0]] = struct{}{}
			}
			continue
		}
		row++
		if len(fields) < 2 {
			continue
		}
		for k, tok := range fields[1:] {
			c := (row - 1) + k
			if c >= len(header) {
				break
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errs.Wrap(errs.UnsupportedAminoAcid, "MJ matrix: parse energy", err)
			}
			a := header[c]
			b := header[row-1]
			energy[[2]byte{a, b}] = v
			energy[[2]byte{b, a}] = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &MJInteraction{energy: energy, valid: valid}, nil
}

// Energy returns the symmetric MJ pair energy for a, b. An unknown pair
// (symbol absent from the parsed header, or no cell recorded for it) is
// reported as UnsupportedAminoAcid.
func (m *MJInteraction) Energy(a, b byte) (float64, error) {
	v, ok := m.energy[[2]byte{a, b}]
	if !ok {
		return 0, errs.Newf(errs.UnsupportedAminoAcid, "no MJ energy recorded for pair %q%q", a, b)
	}
	return v, nil
}

// ValidSymbols returns the header symbol set.
func (m *MJInteraction) ValidSymbols() map[byte]struct{} {
	return m.valid
}
