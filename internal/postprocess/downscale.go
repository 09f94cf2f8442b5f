// Package postprocess reduces supersampled renders to their target
// size. The avatar is drawn at a multiple of the output resolution and
// filtered down, which keeps curved outlines crisp.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downscale resizes img to target x target with premultiplied-alpha
// CatmullRom filtering. Filtering straight alpha directly bleeds the
// transparent black background into edge pixels; premultiplying first
// avoids the dark halo.
func Downscale(img *image.NRGBA, target int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= target && b.Dy() <= target {
		return img
	}

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		a := float64(dst.Pix[i+3])
		out.Pix[i+3] = dst.Pix[i+3]
		if a <= 1 {
			continue
		}
		inv := 255.0 / a
		out.Pix[i] = clamp8(float64(dst.Pix[i]) * inv)
		out.Pix[i+1] = clamp8(float64(dst.Pix[i+1]) * inv)
		out.Pix[i+2] = clamp8(float64(dst.Pix[i+2]) * inv)
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
