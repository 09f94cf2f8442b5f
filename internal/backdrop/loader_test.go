package backdrop

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	path := filepath.Join(t.TempDir(), "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writeTestPNG(t, 40, 30)
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestFitCoversCanvas(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	got := Fit(src, 64)
	if got.Bounds().Dx() != 64 || got.Bounds().Dy() != 64 {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	// Cover mode: no transparent gaps.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got.NRGBAAt(x, y).A == 0 {
				t.Fatalf("transparent gap at (%d,%d)", x, y)
			}
		}
	}
}

func TestCompose(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bg.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}
	fg := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fg.SetNRGBA(4, 4, color.NRGBA{255, 0, 0, 255})

	out := Compose(bg, fg)
	if c := out.NRGBAAt(4, 4); c.R != 255 || c.B != 0 {
		t.Errorf("foreground pixel not on top: %+v", c)
	}
	if c := out.NRGBAAt(0, 0); c.B != 255 {
		t.Errorf("background lost: %+v", c)
	}
}
