package anim

import (
	"math"

	"pup-avatar-renderer/internal/pose"
)

// Oscillation amplitudes, radians unless noted. Tuned by eye against
// rendered frame sheets.
const (
	idleBobAmp   = 0.012 // fraction of body height
	idleTailAmp  = 0.12
	walkSwingAmp = 0.45
	walkKneeAmp  = 0.28
	walkBobAmp   = 0.02
	walkTorsoAmp = 0.04
	wagTailAmp   = 0.75
	wagBobAmp    = 0.01
	tiltHeadAmp  = 0.38

	idleHz = 0.4
	walkHz = 1.4
	wagHz  = 2.5
	tiltHz = 0.5

	sitEaseSeconds = 0.6
)

// seated is the pose Sitting settles into: rear down, back legs folded,
// front legs planted, head up.
var seated = pose.Pose{
	TorsoAngle:     -0.35,
	HeadAngle:      -0.10,
	TailAngle:      0.25,
	LegAngle:       [pose.LegCount]float64{pose.FrontLeft: 0.10, pose.FrontRight: 0.06, pose.BackLeft: 1.15, pose.BackRight: 1.20},
	KneeAngle:      [pose.LegCount]float64{pose.FrontLeft: -0.05, pose.FrontRight: -0.05, pose.BackLeft: 1.35, pose.BackRight: 1.30},
	VerticalOffset: 0.06,
	FacingRight:    true,
}

// PoseAt synthesizes the pose for a state at the given elapsed time in
// seconds. Motion is smooth and periodic; every frequency scales by the
// breed's animation speed multiplier. The result always faces right,
// matching pose.Neutral; facing is decided by the caller.
func PoseAt(s State, speedMult, elapsed float64) pose.Pose {
	w := 2 * math.Pi * speedMult
	p := pose.Neutral

	switch s {
	case Walking:
		// Trot phase: diagonal leg pairs swing together.
		ph := w * walkHz * elapsed
		p.LegAngle[pose.FrontLeft] = walkSwingAmp * math.Sin(ph)
		p.LegAngle[pose.BackRight] = walkSwingAmp * math.Sin(ph)
		p.LegAngle[pose.FrontRight] = walkSwingAmp * math.Sin(ph+math.Pi)
		p.LegAngle[pose.BackLeft] = walkSwingAmp * math.Sin(ph+math.Pi)
		for i := pose.Leg(0); i < pose.LegCount; i++ {
			p.KneeAngle[i] = walkKneeAmp * math.Sin(ph+phaseOf(i)+0.6)
		}
		p.TorsoAngle = walkTorsoAmp * math.Sin(2*ph)
		p.TailAngle = 0.2 * math.Sin(ph)
		p.VerticalOffset = walkBobAmp * math.Abs(math.Sin(ph))

	case Sitting:
		t := elapsed / sitEaseSeconds
		p = pose.Lerp(pose.Neutral, seated, smoothstep(t))
		p.VerticalOffset += idleBobAmp * 0.5 * math.Sin(w*idleHz*elapsed)

	case TailWag:
		ph := w * wagHz * elapsed
		p.TailAngle = wagTailAmp * math.Sin(ph)
		p.VerticalOffset = wagBobAmp * math.Abs(math.Sin(ph))
		p.HeadAngle = 0.05 * math.Sin(ph)

	case HeadTilt:
		ph := w * tiltHz * elapsed
		p.HeadAngle = tiltHeadAmp * math.Sin(ph)
		p.TailAngle = 0.08 * math.Sin(ph)

	default: // Idle
		// Secondary motion shares the base period so one cycle loops
		// seamlessly; phase lags keep it from looking mechanical.
		ph := w * idleHz * elapsed
		p.VerticalOffset = idleBobAmp * math.Sin(ph)
		p.TailAngle = idleTailAmp * math.Sin(ph+0.8)
		p.HeadAngle = 0.03 * math.Sin(ph+1.9)
	}

	return p
}

// CycleSeconds returns the period of one full loop of a state's primary
// oscillation, used when sampling frame sequences.
func CycleSeconds(s State, speedMult float64) float64 {
	hz := idleHz
	switch s {
	case Walking:
		hz = walkHz
	case TailWag:
		hz = wagHz
	case HeadTilt:
		hz = tiltHz
	case Sitting:
		// One ease-in plus a breathing cycle.
		return sitEaseSeconds + 1/(idleHz*speedMult)
	}
	return 1 / (hz * speedMult)
}

func phaseOf(l pose.Leg) float64 {
	if l == pose.FrontRight || l == pose.BackLeft {
		return math.Pi
	}
	return 0
}

func smoothstep(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
