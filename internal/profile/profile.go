// Package profile holds the render profile: which dog to draw, in what
// mood, onto what canvas. Profiles live in TOML files; CLI flags
// override individual fields.
package profile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Profile describes one render. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
type Profile struct {
	Breed      string `toml:"breed"`
	Mood       string `toml:"mood"`
	Expression string `toml:"expression"`

	Size        int     `toml:"size"`
	Supersample int     `toml:"supersample"`
	Quality     int     `toml:"quality"`
	TimeOffset  float64 `toml:"timeOffset"`

	OutputDir string `toml:"outputDir"`
	Backdrop  string `toml:"backdrop"`
}

// Flags holds CLI flag values that override profile file settings.
type Flags struct {
	Breed      string
	Mood       string
	Expression string
	Size       int
	OutputDir  string
	Backdrop   string
	Quality    int
}

// Load reads a TOML profile file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: read %s: %w", path, err)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	return p, nil
}

// Resolve merges CLI overrides and fills defaults. Flags win when set.
func (p *Profile) Resolve(flags Flags) {
	if flags.Breed != "" {
		p.Breed = flags.Breed
	}
	if flags.Mood != "" {
		p.Mood = flags.Mood
	}
	if flags.Expression != "" {
		p.Expression = flags.Expression
	}
	if flags.Size > 0 {
		p.Size = flags.Size
	}
	if flags.OutputDir != "" {
		p.OutputDir = flags.OutputDir
	}
	if flags.Backdrop != "" {
		p.Backdrop = flags.Backdrop
	}
	if flags.Quality > 0 {
		p.Quality = flags.Quality
	}

	if p.Breed == "" {
		p.Breed = "goldenRetriever"
	}
	if p.Expression == "" {
		p.Expression = "neutral"
	}
	if p.Size <= 0 {
		p.Size = 512
	}
	if p.Supersample <= 0 {
		p.Supersample = 2
	}
	if p.Quality <= 0 {
		p.Quality = 90
	}
	if p.OutputDir == "" {
		p.OutputDir = "renders"
	}
}
