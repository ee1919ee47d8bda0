// Package interaction implements pair-energy lookup for the two supported
// residue models: a Miyazawa–Jernigan matrix and a coarse HP model. Both
// are parsed once from a text table into an immutable, pure-function value.
package interaction

import (
	"io"

	"latticefold/errs"
)

// Kind selects which interaction model NewInteraction parses.
type Kind int

const (
	MJ Kind = iota
	HP
)

func (k Kind) String() string {
	switch k {
	case MJ:
		return "MJ"
	case HP:
		return "HP"
	default:
		return "unknown"
	}
}

// Table is the shared contract for a pair-energy lookup: the energy
// between two residue symbols, and the set of symbols the table accepts.
type Table interface {
	Energy(a, b byte) (float64, error)
	ValidSymbols() map[byte]struct{}
}

// NewInteraction resolves kind once, at construction time, into a concrete
// immutable Table — never a package-level switch consulted per call.
func NewInteraction(kind Kind, r io.Reader) (Table, error) {
	switch kind {
	case MJ:
		return NewMJInteraction(r)
	case HP:
		return NewHPInteraction(r)
	default:
		return nil, errs.Newf(errs.InvalidInteractionType, "unknown interaction kind %d", int(kind))
	}
}
