// Package painter turns a (breed config, pose, expression) triple into a
// drawn dog figure. Drawing is two-pass: every part's silhouette is
// stroked first so overlapping parts share one consistent dark edge,
// then the parts are filled back to front, then face details and
// breed-conditional overlays go on top.
package painter

import (
	"image"

	"github.com/gogpu/gg"

	"pup-avatar-renderer/internal/anim"
	"pup-avatar-renderer/internal/breed"
	"pup-avatar-renderer/internal/pose"
)

var outlineColor = gg.RGBA{R: 0.13, G: 0.10, B: 0.09, A: 1}

// Painter draws one frame. It is a value: comparing two painters is how
// the host decides whether a repaint is needed.
type Painter struct {
	Config     breed.Config
	Pose       pose.Pose
	Expression anim.Expression
}

// ShouldRepaint reports whether this frame differs from the previous
// one. False only when configuration, pose and expression are all
// unchanged, so static frames skip the redraw without ever missing an
// update.
func (p Painter) ShouldRepaint(prev Painter) bool {
	return p.Config != prev.Config || p.Pose != prev.Pose || p.Expression != prev.Expression
}

// Paint draws the figure onto dc. It returns a non-nil error only when
// the underlying rasterizer fails; every (breed, expression, pose)
// combination from the closed catalogs draws cleanly.
func (p Painter) Paint(dc *gg.Context) error {
	g := p.layout(dc.Width(), dc.Height())

	dc.Push()
	defer dc.Pop()

	// Mirroring is one transform about the canvas midline, applied
	// before any part-specific drawing. Part geometry is always built
	// for a right-facing figure.
	if !p.Pose.FacingRight {
		dc.Translate(g.w, 0)
		dc.Scale(-1, 1)
	}
	dc.Translate(0, p.Pose.VerticalOffset*g.unit)

	parts := p.parts(g)

	// Outline pass: silhouette strokes beneath everything.
	dc.SetColor(outlineColor.Color())
	dc.SetLineWidth(g.outline)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, pt := range parts {
		pt.trace(dc)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	// Fill pass: back to front over the same ordered list.
	for _, pt := range parts {
		pt.trace(dc)
		dc.SetColor(pt.fill.Color())
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if err := p.drawOverlays(dc, g); err != nil {
		return err
	}
	return p.drawFace(dc, g)
}

// Render paints one frame on a fresh transparent canvas and returns it
// as NRGBA. Supersampling renders at a multiple of size; callers
// downscale afterwards.
func Render(cfg breed.Config, ps pose.Pose, expr anim.Expression, size, supersample int) (*image.NRGBA, error) {
	if supersample < 1 {
		supersample = 1
	}
	dc := gg.NewContext(size*supersample, size*supersample)
	defer dc.Close()

	p := Painter{Config: cfg, Pose: ps, Expression: expr}
	if err := p.Paint(dc); err != nil {
		return nil, err
	}
	return toNRGBA(dc.Image()), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return dst
}

// geom is the per-frame pixel geometry derived from the breed
// proportions and the canvas size.
type geom struct {
	w, h    float64
	cx      float64
	groundY float64

	unit       float64 // canvasHeight * HeightScale, the body reference
	torsoHalfW float64
	torsoHalfH float64
	torsoCY    float64
	legLen     float64
	legW       float64
	headR      float64
	tailLen    float64
	outline    float64
}

func (p Painter) layout(w, h int) geom {
	c := p.Config
	g := geom{w: float64(w), h: float64(h)}
	g.cx = g.w / 2
	g.groundY = g.h * 0.88
	g.unit = g.h * c.HeightScale

	g.torsoHalfH = g.unit * 0.20
	g.torsoHalfW = g.unit * 0.32 * c.TorsoAspectRatio * 0.5
	g.legLen = g.unit * c.LegLengthRatio
	g.legW = g.unit * c.LegThicknessRatio
	g.headR = g.unit * c.HeadSizeRatio * 0.55
	g.tailLen = g.unit * c.TailLengthRatio
	g.outline = g.unit * 0.035
	if g.outline < 1 {
		g.outline = 1
	}

	g.torsoCY = g.groundY - g.legLen - g.torsoHalfH*0.55
	return g
}
