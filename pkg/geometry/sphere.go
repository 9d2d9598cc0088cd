package geometry

import (
	"github.com/jtay/glowcube/pkg/core"
)

// Sphere returns the exact signed distance from p to a sphere of the
// given radius centered at the origin.
func Sphere(p core.Vec3, radius float64) float64 {
	return p.Length() - radius
}
