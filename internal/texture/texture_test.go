package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h)) // single-channel source
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 7)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")
	writePNG(t, path, 12, 8)

	h, err := FileLoader{}.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer h.Release()

	w, ht := h.Size()
	if w != 12 || ht != 8 {
		t.Errorf("Size = %dx%d, want 12x8", w, ht)
	}
	// Source was single-channel; result must be 4-channel NRGBA.
	if _, ok := h.Image().(*image.NRGBA); !ok {
		t.Errorf("Image type = %T, want *image.NRGBA", h.Image())
	}
}

func TestLoadJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	writeJPEG(t, path, 5, 9)

	h, err := FileLoader{}.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer h.Release()

	w, ht := h.Size()
	if w != 5 || ht != 9 {
		t.Errorf("Size = %dx%d, want 5x9", w, ht)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := (FileLoader{}).Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileLoader{}).Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestSizeSurvivesRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.png")
	writePNG(t, path, 3, 4)

	h, err := FileLoader{}.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	h.Release()
	if w, ht := h.Size(); w != 3 || ht != 4 {
		t.Errorf("Size after Release = %dx%d, want 3x4", w, ht)
	}
}
