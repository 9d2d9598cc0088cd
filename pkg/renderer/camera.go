package renderer

import (
	"github.com/jtay/glowcube/pkg/core"
)

// Camera distances observed for this scene. DefaultCameraDistance is the
// canonical framing; AltCameraDistance is the slightly wider variant kept
// selectable for hosts that prefer it.
const (
	DefaultCameraDistance = 2.35
	AltCameraDistance     = 2.75
)

// Camera generates rays for rendering. It sits on the -Z axis looking
// down +Z; the scene is centered at the origin.
type Camera struct {
	Distance float64 // distance from the origin along -Z
}

// NewCamera creates a camera at the given distance, falling back to the
// default framing for non-positive values.
func NewCamera(distance float64) Camera {
	if distance <= 0 {
		distance = DefaultCameraDistance
	}
	return Camera{Distance: distance}
}

// GetRay builds the camera ray for normalized device coordinates (u, v),
// where both range over roughly [-1, 1] and u is pre-scaled by aspect
// ratio. The ray direction is normalize((u, v, 1)).
func (c Camera) GetRay(u, v float64) core.Ray {
	origin := core.NewVec3(0, 0, -c.Distance)
	direction := core.NewVec3(u, v, 1).Normalize()
	return core.NewRay(origin, direction)
}

// PixelRay builds the camera ray for a pixel center, mapping pixel
// coordinates to NDC with +v up and u scaled by the aspect ratio.
func (c Camera) PixelRay(px, py, width, height int) core.Ray {
	aspect := float64(width) / float64(height)
	u := (2.0*(float64(px)+0.5)/float64(width) - 1.0) * aspect
	v := 1.0 - 2.0*(float64(py)+0.5)/float64(height)
	return c.GetRay(u, v)
}
