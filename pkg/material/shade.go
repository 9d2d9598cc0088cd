// Package material implements the three closed-form shading models used
// by the scene: a fresnel-heavy glass, a warm matte plastic, and an
// unlit emissive LED. All functions return linear RGB; gamma correction
// happens later in the pixel pipeline.
package material

import (
	"math"

	"github.com/jtay/glowcube/pkg/core"
)

var (
	plasticBase = core.NewVec3(0.9, 0.85, 0.7)
	glassGray   = core.NewVec3(0.1, 0.1, 0.1)

	// Fallback is the diagnostic magenta returned for a material id the
	// shading dispatch does not recognize. Seeing it in output means the
	// scene's material tagging is broken.
	Fallback = core.NewVec3(1, 0, 1)
)

// Glass shades the internal panel: a near-black base with a grazing-angle
// fresnel term and a tight specular highlight, blended most of the way
// toward a fixed gray to fake translucency. Diffuse lighting is ignored.
func Glass(normal, view, light core.Vec3) core.Vec3 {
	fresnel := math.Pow(1.0-max(0.0, view.Dot(normal)), 3.0) * 0.3

	half := light.Add(view).NormalizeOr(normal)
	specular := math.Pow(max(0.0, normal.Dot(half)), 64.0) * 0.8

	color := core.NewVec3(fresnel+specular, fresnel+specular, fresnel+specular)
	return color.Lerp(glassGray, 0.7)
}

// Plastic shades the solid body: a warm base with a lifted diffuse floor
// so unlit areas stay readable, plus a broad low-weight highlight.
func Plastic(normal, view, light core.Vec3, diffuse float64) core.Vec3 {
	shading := 0.4 + 0.6*diffuse

	half := light.Add(view).NormalizeOr(normal)
	specular := math.Pow(max(0.0, normal.Dot(half)), 16.0) * 0.2

	return plasticBase.Multiply(shading).Add(core.NewVec3(specular, specular, specular))
}

// Led returns the externally supplied emissive color verbatim; the
// indicator is always self-lit.
func Led(emissive core.Vec3) core.Vec3 {
	return emissive
}

// Shade dispatches to the shading model selected by the material id.
// An unknown id yields the diagnostic magenta; that branch is unreachable
// when the scene tags samples correctly.
func Shade(m core.Material, normal, view, light core.Vec3, diffuse float64, emissive core.Vec3) core.Vec3 {
	switch m {
	case core.MaterialGlass:
		return Glass(normal, view, light)
	case core.MaterialPlastic:
		return Plastic(normal, view, light, diffuse)
	case core.MaterialLed:
		return Led(emissive)
	default:
		return Fallback
	}
}
