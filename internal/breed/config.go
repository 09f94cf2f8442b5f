package breed

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Config describes one breed's body proportions, coloring and structural
// features. Values are constants for the process lifetime; the painter
// and the animation driver read them, nothing writes them.
type Config struct {
	// Breed is the enum value this config belongs to. Overlay dispatch
	// in the painter switches on it.
	Breed Breed

	// HeightScale is the overall body scale relative to canvas height.
	// Range (0.4, 1.1].
	HeightScale float64

	// TorsoAspectRatio is torso width over height. Range (0, 4.0].
	// Long-and-low breeds carry the highest values.
	TorsoAspectRatio float64

	// Proportions relative to body size. Each within [0.05, 0.8].
	LegLengthRatio    float64
	LegThicknessRatio float64
	HeadSizeRatio     float64
	TailLengthRatio   float64

	// AnimationSpeedMultiplier scales gait and wag frequency.
	// Range [0.5, 2.0]; short legs cycle faster.
	AnimationSpeedMultiplier float64

	EarsFloppy         bool
	TailCurledOverBack bool

	PrimaryCoatColor   gg.RGBA
	SecondaryCoatColor gg.RGBA
	AccentColor        gg.RGBA
}

// ConfigFor returns the immutable configuration for a breed. Every enum
// value is handled individually; there is no fallback breed.
func ConfigFor(b Breed) Config {
	switch b {
	case GoldenRetriever:
		return Config{
			Breed:                    GoldenRetriever,
			HeightScale:              0.82,
			TorsoAspectRatio:         1.55,
			LegLengthRatio:           0.42,
			LegThicknessRatio:        0.13,
			HeadSizeRatio:            0.30,
			TailLengthRatio:          0.50,
			AnimationSpeedMultiplier: 1.0,
			EarsFloppy:               true,
			TailCurledOverBack:       true,
			PrimaryCoatColor:         gg.Hex("#d9a441"),
			SecondaryCoatColor:       gg.Hex("#f0cd8a"),
			AccentColor:              gg.Hex("#6b4a1f"),
		}
	case GermanShepherd:
		return Config{
			Breed:                    GermanShepherd,
			HeightScale:              0.92,
			TorsoAspectRatio:         1.40,
			LegLengthRatio:           0.46,
			LegThicknessRatio:        0.12,
			HeadSizeRatio:            0.28,
			TailLengthRatio:          0.45,
			AnimationSpeedMultiplier: 0.9,
			EarsFloppy:               false,
			TailCurledOverBack:       false,
			PrimaryCoatColor:         gg.Hex("#a9763c"),
			SecondaryCoatColor:       gg.Hex("#2e2620"),
			AccentColor:              gg.Hex("#d8b98a"),
		}
	case Dachshund:
		return Config{
			Breed:                    Dachshund,
			HeightScale:              0.55,
			TorsoAspectRatio:         2.60,
			LegLengthRatio:           0.18,
			LegThicknessRatio:        0.14,
			HeadSizeRatio:            0.32,
			TailLengthRatio:          0.35,
			AnimationSpeedMultiplier: 1.6,
			EarsFloppy:               true,
			TailCurledOverBack:       false,
			PrimaryCoatColor:         gg.Hex("#5b3a24"),
			SecondaryCoatColor:       gg.Hex("#8a5f3c"),
			AccentColor:              gg.Hex("#c79a6b"),
		}
	default:
		// Unreachable for catalog breeds; loud for anything else.
		panic(fmt.Sprintf("breed: no config for %d", int(b)))
	}
}

// Validate checks every documented range. Called by diagnostic tooling
// and tests; catalog entries must always pass.
func (c Config) Validate() error {
	if c.HeightScale <= 0.4 || c.HeightScale > 1.1 {
		return fmt.Errorf("breed %s: heightScale %.2f outside (0.4, 1.1]", c.Breed, c.HeightScale)
	}
	if c.TorsoAspectRatio <= 0 || c.TorsoAspectRatio > 4.0 {
		return fmt.Errorf("breed %s: torsoAspectRatio %.2f outside (0, 4.0]", c.Breed, c.TorsoAspectRatio)
	}
	ratios := map[string]float64{
		"legLengthRatio":    c.LegLengthRatio,
		"legThicknessRatio": c.LegThicknessRatio,
		"headSizeRatio":     c.HeadSizeRatio,
		"tailLengthRatio":   c.TailLengthRatio,
	}
	for name, v := range ratios {
		if v < 0.05 || v > 0.8 {
			return fmt.Errorf("breed %s: %s %.2f outside [0.05, 0.8]", c.Breed, name, v)
		}
	}
	if c.AnimationSpeedMultiplier < 0.5 || c.AnimationSpeedMultiplier > 2.0 {
		return fmt.Errorf("breed %s: animationSpeedMultiplier %.2f outside [0.5, 2.0]", c.Breed, c.AnimationSpeedMultiplier)
	}
	return nil
}
