package pose

import (
	"math"
	"testing"
)

// sample is an arbitrary non-trivial pose used across the lerp tests.
var sample = Pose{
	TorsoAngle:     0.4,
	HeadAngle:      -0.2,
	TailAngle:      0.9,
	LegAngle:       [LegCount]float64{0.1, -0.3, 0.5, -0.7},
	KneeAngle:      [LegCount]float64{0.2, 0.4, -0.6, 0.8},
	VerticalOffset: 0.05,
	FacingRight:    false,
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(Neutral, sample, 0); got != Neutral {
		t.Errorf("Lerp(neutral, x, 0) = %+v, want neutral", got)
	}
	if got := Lerp(Neutral, sample, 1); got != sample {
		t.Errorf("Lerp(neutral, x, 1) = %+v, want x", got)
	}
}

func TestLerpMidpoint(t *testing.T) {
	got := Lerp(Neutral, sample, 0.5)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"torso", got.TorsoAngle, sample.TorsoAngle / 2},
		{"head", got.HeadAngle, sample.HeadAngle / 2},
		{"tail", got.TailAngle, sample.TailAngle / 2},
		{"verticalOffset", got.VerticalOffset, sample.VerticalOffset / 2},
	}
	for i := Leg(0); i < LegCount; i++ {
		checks = append(checks,
			struct {
				name string
				got  float64
				want float64
			}{"leg", got.LegAngle[i], sample.LegAngle[i] / 2},
			struct {
				name string
				got  float64
				want float64
			}{"knee", got.KneeAngle[i], sample.KneeAngle[i] / 2},
		)
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("midpoint %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLerpClampsOutOfRangeT(t *testing.T) {
	a, b := Neutral, sample
	if Lerp(a, b, -0.5) != Lerp(a, b, 0) {
		t.Error("Lerp with t=-0.5 should equal t=0")
	}
	if Lerp(a, b, 1.5) != Lerp(a, b, 1) {
		t.Error("Lerp with t=1.5 should equal t=1")
	}
	if Lerp(a, b, math.Inf(-1)) != a {
		t.Error("Lerp with t=-inf should equal a")
	}
	if Lerp(a, b, math.Inf(1)) != b {
		t.Error("Lerp with t=+inf should equal b")
	}
}

func TestLerpFacingSwitchesAtMidpoint(t *testing.T) {
	right := Pose{FacingRight: true}
	left := Pose{FacingRight: false}

	tests := []struct {
		t    float64
		want bool
	}{
		{0.0, true},
		{0.25, true},
		{0.49999, true},
		{0.5, false}, // exactly the midpoint takes b
		{0.75, false},
		{1.0, false},
	}
	for _, tt := range tests {
		if got := Lerp(right, left, tt.t).FacingRight; got != tt.want {
			t.Errorf("Lerp(right, left, %v).FacingRight = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestNeutralIsZeroFacingRight(t *testing.T) {
	want := Pose{FacingRight: true}
	if Neutral != want {
		t.Errorf("Neutral = %+v", Neutral)
	}
}
