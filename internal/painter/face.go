package painter

import (
	"math"

	"github.com/gogpu/gg"

	"pup-avatar-renderer/internal/anim"
	"pup-avatar-renderer/internal/breed"
)

var tongueColor = gg.Hex("#e06a7a")

// drawOverlays applies breed-conditional markings after the base body.
// Dispatch is on the breed enum: the saddle fires for GermanShepherd
// only, the tail plume for GoldenRetriever only, and any breed added
// later gets nothing until its case is written here.
func (p Painter) drawOverlays(dc *gg.Context, g geom) error {
	switch p.Config.Breed {
	case breed.GermanShepherd:
		return p.drawSaddle(dc, g)
	case breed.GoldenRetriever:
		return p.drawTailPlume(dc, g)
	case breed.Dachshund:
		return nil
	default:
		return nil
	}
}

// drawSaddle paints the dark saddle marking across the back.
func (p Painter) drawSaddle(dc *gg.Context, g geom) error {
	dc.Push()
	dc.RotateAbout(p.Pose.TorsoAngle, g.cx, g.torsoCY)
	dc.DrawEllipse(g.cx-g.torsoHalfW*0.15, g.torsoCY-g.torsoHalfH*0.30, g.torsoHalfW*0.62, g.torsoHalfH*0.68)
	dc.Pop()
	dc.SetColor(p.Config.SecondaryCoatColor.Color())
	return dc.Fill()
}

// drawTailPlume adds fluffy feathering along the tail.
func (p Painter) drawTailPlume(dc *gg.Context, g geom) error {
	pts, radii := p.tailChain(g)
	for i := 1; i < len(pts)-1; i++ {
		dc.DrawCircle(pts[i].x, pts[i].y-radii[i]*0.4, radii[i]*1.5)
	}
	dc.SetColor(p.Config.SecondaryCoatColor.Color())
	return dc.Fill()
}

// drawFace paints the eye, nose and mouth for the current expression,
// inside the same rotated head frame the head parts use.
func (p Painter) drawFace(dc *gg.Context, g geom) error {
	n := g.neck()
	hc := g.headCenter()

	dc.Push()
	defer dc.Pop()
	dc.RotateAbout(p.Pose.HeadAngle, n.x, n.y)

	eye := point{hc.x + g.headR*0.35, hc.y - g.headR*0.18}
	nose := point{hc.x + g.headR*1.38, hc.y + g.headR*0.02}
	mouth := point{hc.x + g.headR*0.95, hc.y + g.headR*0.45}

	// Nose is expression-independent.
	dc.DrawCircle(nose.x, nose.y, g.headR*0.14)
	dc.SetColor(outlineColor.Color())
	if err := dc.Fill(); err != nil {
		return err
	}

	switch p.Expression {
	case anim.ExprHappy:
		if err := fillCircle(dc, eye, g.headR*0.13, outlineColor); err != nil {
			return err
		}
		// Open smiling mouth with tongue.
		dc.DrawArc(mouth.x, mouth.y, g.headR*0.30, 0.1*math.Pi, 0.9*math.Pi)
		dc.ClosePath()
		dc.SetColor(outlineColor.Color())
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.DrawEllipse(mouth.x, mouth.y+g.headR*0.26, g.headR*0.14, g.headR*0.20)
		dc.SetColor(tongueColor.Color())
		return dc.Fill()

	case anim.ExprSleepy:
		// Closed eye: a stroked lid arc instead of a filled eye.
		dc.DrawArc(eye.x, eye.y, g.headR*0.15, 0.15*math.Pi, 0.85*math.Pi)
		dc.SetColor(outlineColor.Color())
		dc.SetLineWidth(g.outline * 0.9)
		if err := dc.Stroke(); err != nil {
			return err
		}
		return strokeMouth(dc, mouth, g, 0.16)

	case anim.ExprExcited:
		// Wide eye with highlight and an open mouth.
		if err := fillCircle(dc, eye, g.headR*0.20, outlineColor); err != nil {
			return err
		}
		if err := fillCircle(dc, point{eye.x + g.headR*0.05, eye.y - g.headR*0.06}, g.headR*0.06, gg.RGBA{R: 1, G: 1, B: 1, A: 1}); err != nil {
			return err
		}
		dc.DrawArc(mouth.x, mouth.y, g.headR*0.34, 0.08*math.Pi, 0.92*math.Pi)
		dc.ClosePath()
		dc.SetColor(outlineColor.Color())
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.DrawEllipse(mouth.x, mouth.y+g.headR*0.32, g.headR*0.16, g.headR*0.24)
		dc.SetColor(tongueColor.Color())
		return dc.Fill()

	default: // neutral
		if err := fillCircle(dc, eye, g.headR*0.13, outlineColor); err != nil {
			return err
		}
		return strokeMouth(dc, mouth, g, 0.22)
	}
}

func fillCircle(dc *gg.Context, c point, r float64, col gg.RGBA) error {
	dc.DrawCircle(c.x, c.y, r)
	dc.SetColor(col.Color())
	return dc.Fill()
}

func strokeMouth(dc *gg.Context, mouth point, g geom, sweep float64) error {
	dc.DrawArc(mouth.x, mouth.y-g.headR*0.05, g.headR*0.26, (0.5-sweep)*math.Pi, (0.5+sweep)*math.Pi)
	dc.SetColor(outlineColor.Color())
	dc.SetLineWidth(g.outline * 0.9)
	return dc.Stroke()
}
