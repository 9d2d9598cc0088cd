// Package scene defines the implicit scene: a plastic body with an
// octahedral cutout in its front face, a flattened glass panel inside it,
// and a small indicator LED near the bottom-right corner. The whole scene
// is a single signed distance field tagged with material ids.
package scene

import (
	"math"

	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/geometry"
)

// Scene geometry constants. The body and LED rotate with the pointer; the
// panel intentionally stays fixed in world space so it reads as an inner
// screen the body rotates around.
var (
	bodyHalfExtents = core.NewVec3(1.2, 1.0, 1.0)
	cutoutOffset    = core.NewVec3(0, 0, 1) // moves the cutout onto the front face
	ledCenter       = core.NewVec3(1.1, -0.9, -1.0)
)

const (
	cutoutScale     = 1.2
	cutoutXStretch  = 1.2 // widens the cutout to match the body's X extent
	panelZOffset    = 0.75
	panelXScale     = 0.125 // flattens the cylinder into a wide thin panel
	panelHalfHeight = 1.0
	panelRadius     = 0.2
	ledRadius       = 0.02

	// NormalEpsilon is the central-difference step for gradient estimation
	NormalEpsilon = 0.001
)

// cutoutRotation is the fixed 45 degree roll applied to the cutout so the
// octahedron presents a square opening on the front face.
var cutoutRotation = core.RotationZ(math.Pi / 4)

// Scene holds the per-frame orientation and LED color. Build one from a
// FrameInputs snapshot; it is immutable and safe for concurrent reads.
type Scene struct {
	rotation core.Mat3
	ledColor core.Vec3
}

// New creates a scene for one frame's inputs. Roll is reserved for a
// future control input and fixed at zero.
func New(inputs core.FrameInputs) *Scene {
	return &Scene{
		rotation: core.Orientation(inputs.Pitch, inputs.Yaw, 0),
		ledColor: inputs.LedColor,
	}
}

// LedColor returns the emissive color for the indicator light
func (s *Scene) LedColor() core.Vec3 {
	return s.ledColor
}

// Map evaluates the scene's signed distance field at p and returns the
// distance together with the material of the nearest sub-object.
// Selection runs in fixed order (body, panel, LED) and replaces the
// running minimum only on strictly smaller distances, so the LED wins
// overlaps with the panel and the panel wins over the body.
func (s *Scene) Map(p core.Vec3) core.SceneSample {
	rp := s.rotation.MulVec(p)

	body := geometry.Box(rp, bodyHalfExtents)

	// Octahedral cutout carved out of the front face: translate onto the
	// face, stretch X to match the body width, then roll 45 degrees so the
	// opening is a square
	cq := rp.Add(cutoutOffset)
	cq.X /= cutoutXStretch
	cq = cutoutRotation.MulVec(cq)
	bodyWithCutout := geometry.Subtract(body, geometry.Octahedron(cq, cutoutScale))

	// Glass panel: a flattened cylinder in unrotated world space, clipped
	// to the solid (hole-free) body volume
	pq := core.NewVec3(p.X*panelXScale, p.Y, p.Z+panelZOffset)
	panel := geometry.Intersect(geometry.CappedCylinder(pq, panelHalfHeight, panelRadius), body)

	led := geometry.Sphere(rp.Subtract(ledCenter), ledRadius)

	sample := core.SceneSample{Distance: bodyWithCutout, Material: core.MaterialPlastic}
	if panel < sample.Distance {
		sample = core.SceneSample{Distance: panel, Material: core.MaterialGlass}
	}
	if led < sample.Distance {
		sample = core.SceneSample{Distance: led, Material: core.MaterialLed}
	}
	return sample
}

// Normal estimates the surface normal at p from the central-difference
// gradient of the distance field. Costs six Map evaluations.
func (s *Scene) Normal(p core.Vec3) core.Vec3 {
	dx := core.NewVec3(NormalEpsilon, 0, 0)
	dy := core.NewVec3(0, NormalEpsilon, 0)
	dz := core.NewVec3(0, 0, NormalEpsilon)

	grad := core.NewVec3(
		s.Map(p.Add(dx)).Distance-s.Map(p.Subtract(dx)).Distance,
		s.Map(p.Add(dy)).Distance-s.Map(p.Subtract(dy)).Distance,
		s.Map(p.Add(dz)).Distance-s.Map(p.Subtract(dz)).Distance,
	)

	// Degenerate gradients can occur exactly on CSG seams; fall back to a
	// camera-facing normal instead of emitting NaN
	return grad.NormalizeOr(core.NewVec3(0, 0, -1))
}
