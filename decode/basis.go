package decode

import "math"

// vec3 is a minimal 3-D vector; the decoder has no other use for a linear
// algebra package, matching the teacher's preference for small ad hoc
// structs over a dependency for single-purpose arithmetic.
type vec3 struct{ x, y, z float64 }

func (v vec3) scale(s float64) vec3 { return vec3{v.x * s, v.y * s, v.z * s} }
func (v vec3) add(o vec3) vec3      { return vec3{v.x + o.x, v.y + o.y, v.z + o.z} }

// fccBasis holds the four tetrahedral step directions, normalised so that
// each has unit length (B[0]=(-1,1,1)/sqrt(3), ...).
var fccBasis = func() [4]vec3 {
	raw := [4]vec3{
		{-1, 1, 1},
		{1, 1, -1},
		{-1, -1, -1},
		{1, -1, 1},
	}
	norm := math.Sqrt(3)
	for i := range raw {
		raw[i] = raw[i].scale(1 / norm)
	}
	return raw
}()
