package geometry

import (
	"math"

	"github.com/jtay/glowcube/pkg/core"
)

// CappedCylinder returns the exact signed distance from p to a finite
// cylinder aligned on the Y axis, centered at the origin, with the given
// half height and radius.
func CappedCylinder(p core.Vec3, halfHeight, radius float64) float64 {
	dRadial := math.Hypot(p.X, p.Z) - radius
	dAxial := math.Abs(p.Y) - halfHeight

	inside := min(max(dRadial, dAxial), 0.0)
	outside := math.Hypot(max(dRadial, 0.0), max(dAxial, 0.0))
	return inside + outside
}
