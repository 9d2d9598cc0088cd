// Package geometry provides closed-form signed distance functions for the
// primitives the scene is assembled from, plus the CSG combinators that
// join them. Distances are negative inside a shape and positive outside.
package geometry

import (
	"github.com/jtay/glowcube/pkg/core"
)

// Box returns the signed distance from p to an axis-aligned box centered
// at the origin with the given half extents. Exact outside; inside the
// distance is the (negative) depth to the nearest face.
func Box(p, halfExtents core.Vec3) float64 {
	q := p.Abs().Subtract(halfExtents)
	outside := q.MaxVec(core.Vec3{}).Length()
	inside := min(q.MaxComponent(), 0.0)
	return outside + inside
}
