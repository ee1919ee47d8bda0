// Package config defines the immutable parameter structs read once at
// process start: which turn encoding and interaction model to build with,
// and the tunable penalty constants the Hamiltonian assembles with.
package config

import (
	"latticefold/errs"
	"latticefold/hamiltonian"
	"latticefold/interaction"
)

// Penalties is the set of tunable constants HamiltonianBuilder assembles
// with. hamiltonian.Build reads its own package constants and does not take
// a Penalties value. The zero value is not valid; use DefaultPenalties.
type Penalties struct {
	BoundingConstant           float64
	MJEnergyMultiplier         float64
	BackPenalty                float64
	OverlapPenalty             float64
	NormFactor                 float64
	MinDistanceBetweenContacts int
}

// DefaultPenalties returns the constants named in this module's component
// design: BoundingConstant=7, MJEnergyMultiplier=0.1, BackPenalty=10,
// OverlapPenalty=10, NormFactor=0.5, MinDistanceBetweenContacts=5.
func DefaultPenalties() Penalties {
	return Penalties{
		BoundingConstant:           hamiltonian.BoundingConstant,
		MJEnergyMultiplier:         hamiltonian.MJEnergyMultiplier,
		BackPenalty:                hamiltonian.BackPenalty,
		OverlapPenalty:             hamiltonian.OverlapPenalty,
		NormFactor:                 0.5,
		MinDistanceBetweenContacts: hamiltonian.MinDistanceBetweenContacts,
	}
}

// EncodingConfig is the immutable set of choices that determine how a
// Protein sequence is turned into an operator: the turn-qubit width and
// the interaction model.
type EncodingConfig struct {
	QubitsPerTurn   int
	InteractionKind interaction.Kind
	Penalties       Penalties
}

// NewEncodingConfig validates and builds an EncodingConfig. qubitsPerTurn
// must be 2 (dense) or 4 (sparse).
func NewEncodingConfig(qubitsPerTurn int, kind interaction.Kind, penalties Penalties) (EncodingConfig, error) {
	if qubitsPerTurn != 2 && qubitsPerTurn != 4 {
		return EncodingConfig{}, errs.Newf(errs.OperatorShape, "unsupported QubitsPerTurn %d", qubitsPerTurn)
	}
	return EncodingConfig{
		QubitsPerTurn:   qubitsPerTurn,
		InteractionKind: kind,
		Penalties:       penalties,
	}, nil
}

// NewDenseMJConfig is the common case this repo's demo CLI uses: dense
// turn encoding with a Miyazawa-Jernigan interaction table and the
// default penalty constants.
func NewDenseMJConfig() EncodingConfig {
	cfg, _ := NewEncodingConfig(2, interaction.MJ, DefaultPenalties())
	return cfg
}
