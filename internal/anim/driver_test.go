package anim

import (
	"math"
	"testing"

	"pup-avatar-renderer/internal/pose"
)

func TestPoseAtZeroIsNearNeutral(t *testing.T) {
	for _, s := range States() {
		p := PoseAt(s, 1.0, 0)
		if !p.FacingRight {
			t.Errorf("%v: pose at t=0 should face right", s)
		}
		if math.Abs(p.VerticalOffset) > 0.001 {
			t.Errorf("%v: vertical offset %v at t=0", s, p.VerticalOffset)
		}
	}
}

func TestPoseAtIsPeriodic(t *testing.T) {
	for _, s := range []State{Idle, Walking, TailWag, HeadTilt} {
		for _, speed := range []float64{0.5, 1.0, 1.6} {
			cycle := CycleSeconds(s, speed)
			a := PoseAt(s, speed, 0.37)
			b := PoseAt(s, speed, 0.37+cycle)
			if !posesClose(a, b, 1e-6) {
				t.Errorf("%v speed %v: pose not periodic over %v s", s, speed, cycle)
			}
		}
	}
}

func TestWalkingLegsAlternate(t *testing.T) {
	// Sample a quarter cycle in: diagonal pairs move together, the two
	// pairs oppose each other.
	cycle := CycleSeconds(Walking, 1.0)
	p := PoseAt(Walking, 1.0, cycle/4)

	fl := p.LegAngle[pose.FrontLeft]
	if fl == 0 {
		t.Fatal("front-left leg should be swinging at quarter cycle")
	}
	if p.LegAngle[pose.BackRight] != fl {
		t.Error("diagonal pair front-left/back-right should swing together")
	}
	if math.Abs(p.LegAngle[pose.FrontRight]+fl) > 1e-9 {
		t.Error("front-right should oppose front-left")
	}
	if math.Abs(p.LegAngle[pose.BackLeft]+fl) > 1e-9 {
		t.Error("back-left should oppose front-left")
	}
}

func TestSittingSettlesIntoSeatedPose(t *testing.T) {
	p := PoseAt(Sitting, 1.0, 10)
	if p.LegAngle[pose.BackLeft] < 1.0 || p.LegAngle[pose.BackRight] < 1.0 {
		t.Errorf("back legs not folded after settling: %v %v",
			p.LegAngle[pose.BackLeft], p.LegAngle[pose.BackRight])
	}
	if p.TorsoAngle > -0.3 {
		t.Errorf("torso not tilted when seated: %v", p.TorsoAngle)
	}
	if p.VerticalOffset <= 0 {
		t.Errorf("body should sit lower: offset %v", p.VerticalOffset)
	}
}

func TestSittingEaseIsMonotonicEarly(t *testing.T) {
	prev := PoseAt(Sitting, 1.0, 0).LegAngle[pose.BackLeft]
	for _, tt := range []float64{0.1, 0.2, 0.3, 0.4, 0.5} {
		cur := PoseAt(Sitting, 1.0, tt).LegAngle[pose.BackLeft]
		if cur < prev {
			t.Fatalf("seated ease reversed at t=%v: %v < %v", tt, cur, prev)
		}
		prev = cur
	}
}

func TestSpeedMultiplierScalesMotion(t *testing.T) {
	// At a fixed early time the faster dog is further through its wag.
	slow := PoseAt(TailWag, 0.5, 0.03).TailAngle
	fast := PoseAt(TailWag, 2.0, 0.03).TailAngle
	if fast <= slow {
		t.Errorf("faster multiplier should advance the wag: slow %v fast %v", slow, fast)
	}
}

func TestTailWagOscillatesBothWays(t *testing.T) {
	cycle := CycleSeconds(TailWag, 1.0)
	up := PoseAt(TailWag, 1.0, cycle/4).TailAngle
	down := PoseAt(TailWag, 1.0, 3*cycle/4).TailAngle
	if up <= 0 || down >= 0 {
		t.Errorf("wag should cross zero: quarter %v, three-quarter %v", up, down)
	}
}

func TestCycleSecondsPositive(t *testing.T) {
	for _, s := range States() {
		for _, speed := range []float64{0.5, 1.0, 2.0} {
			if c := CycleSeconds(s, speed); c <= 0 {
				t.Errorf("CycleSeconds(%v, %v) = %v", s, speed, c)
			}
		}
	}
}

func posesClose(a, b pose.Pose, eps float64) bool {
	if a.FacingRight != b.FacingRight {
		return false
	}
	diffs := []float64{
		a.TorsoAngle - b.TorsoAngle,
		a.HeadAngle - b.HeadAngle,
		a.TailAngle - b.TailAngle,
		a.VerticalOffset - b.VerticalOffset,
	}
	for i := pose.Leg(0); i < pose.LegCount; i++ {
		diffs = append(diffs, a.LegAngle[i]-b.LegAngle[i], a.KneeAngle[i]-b.KneeAngle[i])
	}
	for _, d := range diffs {
		if math.Abs(d) > eps {
			return false
		}
	}
	return true
}
