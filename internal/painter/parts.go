package painter

import (
	"math"

	"github.com/gogpu/gg"

	"pup-avatar-renderer/internal/pose"
)

// part is one body element: a shape generator plus a fill color. The
// outline pass and the fill pass both walk the same ordered list, so
// per-part geometry lives in exactly one place.
type part struct {
	fill  gg.RGBA
	trace func(dc *gg.Context)
}

// parts returns the body parts in back-to-front paint order for a
// right-facing figure: far legs, tail, torso, near legs, then the head
// group. The near side is the right side; mirroring swaps it visually
// without touching shape logic.
func (p Painter) parts(g geom) []part {
	c, ps := p.Config, p.Pose

	farShade := c.PrimaryCoatColor.Lerp(outlineColor, 0.28)
	nearEarShade := c.PrimaryCoatColor.Lerp(outlineColor, 0.12)

	shoulder := point{g.cx + g.torsoHalfW*0.62, g.torsoCY + g.torsoHalfH*0.35}
	hip := point{g.cx - g.torsoHalfW*0.62, g.torsoCY + g.torsoHalfH*0.35}
	farOff := point{-g.legW * 0.45, 0}

	return []part{
		p.legPart(g, hip.add(farOff), ps.LegAngle[pose.BackLeft], ps.KneeAngle[pose.BackLeft], farShade),
		p.legPart(g, shoulder.add(farOff), ps.LegAngle[pose.FrontLeft], ps.KneeAngle[pose.FrontLeft], farShade),
		p.tailPart(g),
		p.torsoPart(g),
		p.legPart(g, hip, ps.LegAngle[pose.BackRight], ps.KneeAngle[pose.BackRight], c.PrimaryCoatColor),
		p.legPart(g, shoulder, ps.LegAngle[pose.FrontRight], ps.KneeAngle[pose.FrontRight], c.PrimaryCoatColor),
		p.earPart(g, false, farShade),
		p.headPart(g),
		p.muzzlePart(g),
		p.earPart(g, true, nearEarShade),
	}
}

func (p Painter) torsoPart(g geom) part {
	angle := p.Pose.TorsoAngle
	return part{
		fill: p.Config.PrimaryCoatColor,
		trace: func(dc *gg.Context) {
			dc.Push()
			dc.RotateAbout(angle, g.cx, g.torsoCY)
			dc.DrawEllipse(g.cx, g.torsoCY, g.torsoHalfW, g.torsoHalfH)
			dc.Pop()
		},
	}
}

// legPart builds a two-segment limb: upper segment swung by the leg
// angle from the attachment point, lower segment bent further by the
// knee angle. Segments are quads with joint circles; the nonzero fill
// rule unions them into one capsule chain.
func (p Painter) legPart(g geom, attach point, legAngle, kneeAngle float64, fill gg.RGBA) part {
	upper := g.legLen * 0.58
	lower := g.legLen * 0.58
	knee := attach.add(rot(point{0, upper}, legAngle))
	foot := knee.add(rot(point{0, lower}, legAngle+kneeAngle))
	w := g.legW

	return part{
		fill: fill,
		trace: func(dc *gg.Context) {
			traceSegment(dc, attach, knee, w)
			traceSegment(dc, knee, foot, w*0.85)
			dc.DrawCircle(attach.x, attach.y, w*0.5)
			dc.DrawCircle(knee.x, knee.y, w*0.46)
			dc.DrawCircle(foot.x, foot.y, w*0.55)
		},
	}
}

// tailPart traces the tail as a tapering chain of circles along the
// rest curve. The rest curve branches on TailCurledOverBack; the pose's
// tail angle swings the whole chain.
func (p Painter) tailPart(g geom) part {
	pts, radii := p.tailChain(g)
	return part{
		fill: p.Config.PrimaryCoatColor,
		trace: func(dc *gg.Context) {
			for i, pt := range pts {
				dc.DrawCircle(pt.x, pt.y, radii[i])
			}
		},
	}
}

// tailChain computes the circle centers and radii making up the tail.
// Shared between the base part and the plume overlay.
func (p Painter) tailChain(g geom) ([]point, []float64) {
	const steps = 6
	base := point{g.cx - g.torsoHalfW*0.92, g.torsoCY - g.torsoHalfH*0.30}

	// Direction angles use math convention (0 = +x, positive = up).
	theta := math.Pi - 0.9 // up and back
	curve := -0.55         // droop toward the ground
	if p.Config.TailCurledOverBack {
		theta = math.Pi - 1.1
		curve = 1.15 // sweep over the back
	}
	theta += p.Pose.TailAngle

	step := g.tailLen / steps
	pts := make([]point, 0, steps+1)
	radii := make([]float64, 0, steps+1)
	cur := base
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		pts = append(pts, cur)
		radii = append(radii, g.legW*(0.55-0.32*t))
		cur = cur.add(point{math.Cos(theta) * step, -math.Sin(theta) * step})
		theta += curve / steps
	}
	return pts, radii
}

// neck is the pivot the whole head group rotates about.
func (g geom) neck() point {
	return point{g.cx + g.torsoHalfW*0.80, g.torsoCY - g.torsoHalfH*0.45}
}

func (g geom) headCenter() point {
	n := g.neck()
	return point{n.x + g.headR*0.5, n.y - g.headR*1.05}
}

func (p Painter) headPart(g geom) part {
	n := g.neck()
	hc := g.headCenter()
	angle := p.Pose.HeadAngle
	return part{
		fill: p.Config.PrimaryCoatColor,
		trace: func(dc *gg.Context) {
			dc.Push()
			dc.RotateAbout(angle, n.x, n.y)
			// Neck wedge keeps the head visually attached to the torso.
			traceSegment(dc, n, hc, g.headR*0.9)
			dc.DrawCircle(hc.x, hc.y, g.headR)
			dc.Pop()
		},
	}
}

func (p Painter) muzzlePart(g geom) part {
	n := g.neck()
	hc := g.headCenter()
	angle := p.Pose.HeadAngle
	return part{
		fill: p.Config.SecondaryCoatColor,
		trace: func(dc *gg.Context) {
			dc.Push()
			dc.RotateAbout(angle, n.x, n.y)
			dc.DrawEllipse(hc.x+g.headR*0.85, hc.y+g.headR*0.20, g.headR*0.60, g.headR*0.42)
			dc.Pop()
		},
	}
}

// earPart traces one ear. Floppy ears hang beside the skull as a
// teardrop; erect ears are upright triangles. near selects the
// viewer-side ear, which sits slightly forward.
func (p Painter) earPart(g geom, near bool, fill gg.RGBA) part {
	n := g.neck()
	hc := g.headCenter()
	angle := p.Pose.HeadAngle
	e := g.headR * 0.8
	base := point{hc.x - g.headR*0.45, hc.y - g.headR*0.70}
	if near {
		base.x += g.headR * 0.42
	}
	floppy := p.Config.EarsFloppy

	return part{
		fill: fill,
		trace: func(dc *gg.Context) {
			dc.Push()
			dc.RotateAbout(angle, n.x, n.y)
			if floppy {
				dc.MoveTo(base.x-e*0.30, base.y)
				dc.QuadraticTo(base.x-e*1.10, base.y+e*0.30, base.x-e*0.55, base.y+e*1.25)
				dc.QuadraticTo(base.x+e*0.15, base.y+e*0.85, base.x+e*0.30, base.y+e*0.05)
				dc.ClosePath()
			} else {
				dc.MoveTo(base.x-e*0.45, base.y+e*0.10)
				dc.LineTo(base.x-e*0.05, base.y-e*1.15)
				dc.LineTo(base.x+e*0.40, base.y+e*0.15)
				dc.ClosePath()
			}
			dc.Pop()
		},
	}
}

type point struct{ x, y float64 }

func (p point) add(q point) point { return point{p.x + q.x, p.y + q.y} }

// rot rotates a vector by angle in canvas coordinates (y down, positive
// angle = clockwise).
func rot(v point, a float64) point {
	c, s := math.Cos(a), math.Sin(a)
	return point{v.x*c - v.y*s, v.x*s + v.y*c}
}

// traceSegment adds a quad spanning a thick line from a to b. Vertex
// order matches the winding of DrawCircle so overlapping subpaths union
// under the nonzero fill rule instead of cancelling.
func traceSegment(dc *gg.Context, a, b point, w float64) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		dc.DrawCircle(a.x, a.y, w/2)
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	dc.MoveTo(a.x+nx, a.y+ny)
	dc.LineTo(a.x-nx, a.y-ny)
	dc.LineTo(b.x-nx, b.y-ny)
	dc.LineTo(b.x+nx, b.y+ny)
	dc.ClosePath()
}
