package geometry

import (
	"math"

	"github.com/jtay/glowcube/pkg/core"
)

// invSqrt3 normalizes the L1 plane distance used by Octahedron.
var invSqrt3 = 1.0 / math.Sqrt(3.0)

// Octahedron returns a signed distance bound to an axis-aligned octahedron
// with the given scale. This is the cheap (|x|+|y|+|z|-s)/sqrt(3) form: a
// lower bound rather than an exact Euclidean distance. The scene only uses
// it as a subtraction operand, where the looser bound is acceptable.
func Octahedron(p core.Vec3, s float64) float64 {
	a := p.Abs()
	return (a.X + a.Y + a.Z - s) * invSqrt3
}
