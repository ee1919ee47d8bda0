package hamiltonian

// Tunable constants shared by every sub-operator this package assembles.
const (
	// BoundingConstant scales the first-neighbour energy penalty by the
	// span of the contact pair (j-i+1).
	BoundingConstant = 7.0
	// MJEnergyMultiplier scales a raw interaction-table energy before it
	// enters the Hamiltonian as a diagonal contribution.
	MJEnergyMultiplier = 0.1
	// BackPenalty scales the backtracking (turn_product) term.
	BackPenalty = 10.0
	// OverlapPenalty is lambda-1, the shared penalty argument passed into
	// both firstNeighbour and secondNeighbour.
	OverlapPenalty = 10.0
	// MinDistanceBetweenContacts mirrors contact.MinSeparation; kept here
	// too since the BB-BB double loop's own range test is phrased in
	// these exact terms (i+4 <= j, j-i odd).
	MinDistanceBetweenContacts = 5
)
