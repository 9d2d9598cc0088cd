package core

// Material identifies which shading model applies to a surface point
type Material int

const (
	MaterialPlastic Material = iota // solid body
	MaterialGlass                   // internal panel
	MaterialLed                     // indicator light
)

// String returns a human-readable material name
func (m Material) String() string {
	switch m {
	case MaterialPlastic:
		return "plastic"
	case MaterialGlass:
		return "glass"
	case MaterialLed:
		return "led"
	default:
		return "unknown"
	}
}

// SceneSample is a signed distance paired with the material of the
// sub-object that produced it
type SceneSample struct {
	Distance float64
	Material Material
}

// FrameInputs is the immutable per-frame snapshot the renderer reads.
// The host updates angles and LED color between frames; nothing in the
// render path mutates it.
type FrameInputs struct {
	Width    int     // framebuffer width in pixels
	Height   int     // framebuffer height in pixels
	Pitch    float64 // radians, pre-clamped by the input tracker
	Yaw      float64 // radians, pre-clamped by the input tracker
	LedColor Vec3    // emissive RGB in [0,1]
}
