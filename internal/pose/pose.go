// Package pose holds the bone transform value type: one snapshot of the
// avatar's joint angles. Poses are plain comparable values, freely
// copied, never shared mutably across frames.
package pose

// Leg indexes the four legs in a Pose.
type Leg int

const (
	FrontLeft Leg = iota
	FrontRight
	BackLeft
	BackRight

	LegCount
)

// Pose is a single skeleton snapshot. Angles are radians; positive
// values rotate clockwise in canvas coordinates (y down). Angles are
// expressed for a right-facing figure; mirroring is the painter's job.
type Pose struct {
	TorsoAngle float64
	HeadAngle  float64
	TailAngle  float64

	// LegAngle is the hip/shoulder swing per leg; KneeAngle bends the
	// lower segment relative to the upper one.
	LegAngle  [LegCount]float64
	KneeAngle [LegCount]float64

	// VerticalOffset displaces the whole body vertically for bounce and
	// bob effects, as a fraction of body height (positive = down).
	VerticalOffset float64

	FacingRight bool
}

// Neutral is the rest pose: all angles and offset zero, facing right.
var Neutral = Pose{FacingRight: true}

// Lerp interpolates every numeric field independently with t clamped to
// [0, 1], so extreme timing factors from callers can never produce an
// out-of-range pose. FacingRight is not interpolated: the result takes
// b's facing from the temporal midpoint (t >= 0.5) onward, a's before.
func Lerp(a, b Pose, t float64) Pose {
	t = clamp01(t)

	// Exact at the endpoints regardless of float rounding.
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}

	out := Pose{
		TorsoAngle:     lerp(a.TorsoAngle, b.TorsoAngle, t),
		HeadAngle:      lerp(a.HeadAngle, b.HeadAngle, t),
		TailAngle:      lerp(a.TailAngle, b.TailAngle, t),
		VerticalOffset: lerp(a.VerticalOffset, b.VerticalOffset, t),
		FacingRight:    a.FacingRight,
	}
	for i := Leg(0); i < LegCount; i++ {
		out.LegAngle[i] = lerp(a.LegAngle[i], b.LegAngle[i], t)
		out.KneeAngle[i] = lerp(a.KneeAngle[i], b.KneeAngle[i], t)
	}
	if t >= 0.5 {
		out.FacingRight = b.FacingRight
	}
	return out
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
