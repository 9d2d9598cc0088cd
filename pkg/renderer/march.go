package renderer

import (
	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/scene"
)

// Sphere-tracing parameters. The distance field is 1-Lipschitz for the
// union/intersection parts, so advancing by the field value never steps
// through a surface; MaxSteps is a safety bound, not a convergence
// guarantee.
const (
	MaxSteps    = 100
	MaxDistance = 100.0
	HitEpsilon  = 0.001
)

// March sphere-traces a ray against the scene and returns the distance
// traveled plus the material of the last evaluated sample. It does not
// signal hit/miss itself: callers check t < MaxDistance, since a ray that
// escapes keeps the material tag of whatever field it sampled last.
func March(s *scene.Scene, ray core.Ray) (float64, core.Material) {
	t := 0.0
	mat := core.MaterialPlastic

	for i := 0; i < MaxSteps; i++ {
		sample := s.Map(ray.At(t))
		mat = sample.Material
		if sample.Distance < HitEpsilon || t > MaxDistance {
			break
		}
		t += sample.Distance
	}

	return t, mat
}
