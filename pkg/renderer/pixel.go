package renderer

import (
	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/material"
	"github.com/jtay/glowcube/pkg/scene"
)

// lightDirection is the single fixed directional light for the scene
var lightDirection = core.NewVec3(0.5, 0.5, -1).Normalize()

// Gamma is the display gamma applied after shading
const Gamma = 2.2

// RenderPixel computes the color and alpha for one camera ray: march the
// field, shade the hit with the material's model, gamma correct. A ray
// that escapes past MaxDistance produces a fully transparent pixel.
func RenderPixel(s *scene.Scene, ray core.Ray) (core.Vec3, float64) {
	t, mat := March(s, ray)
	if t >= MaxDistance {
		return core.Vec3{}, 0
	}

	point := ray.At(t)
	normal := s.Normal(point)
	view := ray.Direction.Negate().NormalizeOr(core.NewVec3(0, 0, -1))
	diffuse := max(0.0, normal.Dot(lightDirection))

	color := material.Shade(mat, normal, view, lightDirection, diffuse, s.LedColor())
	color = color.Clamp(0, 1).GammaCorrect(Gamma)
	return color, 1
}
