// Package input converts host pointer events into the clamped rotation
// angles the renderer consumes, and manages the indicator LED's palette.
package input

import (
	"math"
	"time"

	"github.com/jtay/glowcube/pkg/core"
)

const (
	// Sensitivity converts pointer pixels into accumulated radians
	Sensitivity = 0.01

	// RawClamp bounds the raw accumulated drag angles
	RawClamp = math.Pi / 4

	// AngleScale rescales raw angles before use; combined with RawClamp
	// the shading inputs stay within ±π/8. This is the single clamp
	// policy for the whole host.
	AngleScale = 0.5
)

// PointerTracker accumulates pointer drag deltas into pitch and yaw.
// Horizontal drag yaws the body, vertical drag pitches it.
type PointerTracker struct {
	dragging     bool
	lastX, lastY int
	rawPitch     float64
	rawYaw       float64
}

// Update feeds one pointer sample into the tracker. Deltas only
// accumulate while the pointer stays pressed across consecutive samples,
// so a press that starts a drag never causes a jump.
func (pt *PointerTracker) Update(x, y int, pressed bool) {
	if pressed && pt.dragging {
		pt.rawYaw = clamp(pt.rawYaw+float64(x-pt.lastX)*Sensitivity, -RawClamp, RawClamp)
		pt.rawPitch = clamp(pt.rawPitch+float64(y-pt.lastY)*Sensitivity, -RawClamp, RawClamp)
	}
	pt.lastX, pt.lastY = x, y
	pt.dragging = pressed
}

// Angles returns the pitch and yaw to feed the renderer, rescaled and
// re-clamped from the raw accumulation.
func (pt *PointerTracker) Angles() (pitch, yaw float64) {
	limit := RawClamp * AngleScale
	pitch = clamp(pt.rawPitch*AngleScale, -limit, limit)
	yaw = clamp(pt.rawYaw*AngleScale, -limit, limit)
	return pitch, yaw
}

// Reset recenters the orientation
func (pt *PointerTracker) Reset() {
	pt.rawPitch = 0
	pt.rawYaw = 0
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Status selects the indicator LED state
type Status int

const (
	StatusIdle    Status = iota // LED off
	StatusSuccess               // green
	StatusError                 // red
)

// RevertAfter is how long success/error states glow before the LED
// returns to idle.
const RevertAfter = 2 * time.Second

// statusColor maps each status to its fixed palette entry
func statusColor(s Status) core.Vec3 {
	switch s {
	case StatusSuccess:
		return core.NewVec3(0, 1, 0)
	case StatusError:
		return core.NewVec3(1, 0, 0)
	default:
		return core.Vec3{}
	}
}

// StatusLight holds the indicator LED state with timed reversion to idle
type StatusLight struct {
	status Status
	until  time.Time
}

// Set switches the LED to the given status at the given time. Non-idle
// states revert automatically after RevertAfter.
func (sl *StatusLight) Set(status Status, now time.Time) {
	sl.status = status
	if status == StatusIdle {
		sl.until = time.Time{}
	} else {
		sl.until = now.Add(RevertAfter)
	}
}

// Color returns the LED color for the given time, reverting expired
// states to idle.
func (sl *StatusLight) Color(now time.Time) core.Vec3 {
	if sl.status != StatusIdle && now.After(sl.until) {
		sl.status = StatusIdle
		sl.until = time.Time{}
	}
	return statusColor(sl.status)
}
