// Package backdrop loads the optional background image drawn behind
// the avatar.
package backdrop

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"
)

// Load reads a PNG, JPEG or TGA file and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("backdrop: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("backdrop: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// Fit scales the backdrop to cover a square canvas of the given size,
// cropping the overflow so the avatar always sits on a full background.
func Fit(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	scale := float64(size) / float64(srcW)
	if s := float64(size) / float64(srcH); s > scale {
		scale = s
	}
	newW := int(float64(srcW)*scale + 0.5)
	newH := int(float64(srcH)*scale + 0.5)

	scaled := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)

	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	offX := (size - newW) / 2
	offY := (size - newH) / 2
	draw.Draw(canvas, canvas.Bounds(), scaled, image.Pt(-offX, -offY), draw.Src)
	return canvas
}

// Compose draws fg over bg and returns the result. Both must share the
// same canvas size.
func Compose(bg, fg *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(bg.Bounds())
	draw.Draw(out, out.Bounds(), bg, bg.Bounds().Min, draw.Src)
	draw.Draw(out, out.Bounds(), fg, fg.Bounds().Min, draw.Over)
	return out
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
