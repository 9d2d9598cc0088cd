package renderer

import (
	"math"
	"testing"

	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/scene"
)

func newTestScene(pitch, yaw float64, led core.Vec3) *scene.Scene {
	return scene.New(core.FrameInputs{
		Width:    320,
		Height:   240,
		Pitch:    pitch,
		Yaw:      yaw,
		LedColor: led,
	})
}

func TestMarch_HitsLedSphere(t *testing.T) {
	s := newTestScene(0, 0, core.NewVec3(0, 1, 0))

	// Aim straight at the LED center; the sphere protrudes past the front
	// face, so it is reached just before the body
	origin := core.NewVec3(0, 0, -DefaultCameraDistance)
	toLed := core.NewVec3(1.1, -0.9, -1.0).Subtract(origin)
	ray := core.NewRay(origin, toLed.Normalize())

	hitT, mat := March(s, ray)

	if hitT >= MaxDistance {
		t.Fatalf("Expected hit, ray escaped at t=%f", hitT)
	}
	if mat != core.MaterialLed {
		t.Errorf("Expected Led material, got %v", mat)
	}

	expected := toLed.Length() - 0.02 // sphere radius
	if math.Abs(hitT-expected) > 0.005 {
		t.Errorf("Expected hit distance ~%f, got %f", expected, hitT)
	}
}

func TestMarch_CenterRayHitsGlassPanel(t *testing.T) {
	s := newTestScene(0, 0, core.Vec3{})

	// Straight down the axis the ray passes through the cutout and lands
	// on the front of the internal panel at z = -0.95
	ray := core.NewRay(core.NewVec3(0, 0, -DefaultCameraDistance), core.NewVec3(0, 0, 1))

	hitT, mat := March(s, ray)

	if hitT >= MaxDistance {
		t.Fatalf("Expected hit, ray escaped at t=%f", hitT)
	}
	if mat != core.MaterialGlass {
		t.Errorf("Expected Glass material through the cutout, got %v", mat)
	}

	expected := DefaultCameraDistance - 0.95
	if math.Abs(hitT-expected) > 0.005 {
		t.Errorf("Expected hit distance ~%f, got %f", expected, hitT)
	}
}

func TestMarch_MissEscapes(t *testing.T) {
	s := newTestScene(0, 0, core.Vec3{})

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, -DefaultCameraDistance), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, -DefaultCameraDistance), core.NewVec3(0, 1, 0)),
		core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)),
	}

	for _, ray := range rays {
		if hitT, _ := March(s, ray); hitT < MaxDistance {
			t.Errorf("Expected ray %v to escape, stopped at t=%f", ray.Direction, hitT)
		}
	}
}

func TestMarch_FrontFaceIsPlastic(t *testing.T) {
	s := newTestScene(0, 0, core.Vec3{})

	// Outside the cutout opening but on the face: near the top-left corner
	origin := core.NewVec3(0, 0, -DefaultCameraDistance)
	target := core.NewVec3(-1.1, 0.9, -1.0)
	ray := core.NewRay(origin, target.Subtract(origin).Normalize())

	hitT, mat := March(s, ray)

	if hitT >= MaxDistance {
		t.Fatalf("Expected hit, ray escaped at t=%f", hitT)
	}
	if mat != core.MaterialPlastic {
		t.Errorf("Expected Plastic on the face corner, got %v", mat)
	}
}
