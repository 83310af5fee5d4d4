package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecognized(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.PNG", false}, // suffix match is case-sensitive
		{"photo.JPG", false},
		{"photo.gif", false},
		{"photo.txt", false},
		{"png", false},
		{"archive.png.gz", false},
	}
	for _, tt := range tests {
		if got := Recognized(tt.name); got != tt.want {
			t.Errorf("Recognized(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestListImagesFiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpg", "c.txt", "d.jpeg", "e.PNG"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	images := DirScanner{}.ListImages(dir)

	want := map[string]bool{
		filepath.Join(dir, "a.png"):  true,
		filepath.Join(dir, "b.jpg"):  true,
		filepath.Join(dir, "d.jpeg"): true,
	}
	if len(images) != len(want) {
		t.Fatalf("got %d images %v, want %d", len(images), images, len(want))
	}
	for _, img := range images {
		if !want[img] {
			t.Errorf("unexpected image %q", img)
		}
	}
}

func TestListImagesSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "real.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	images := DirScanner{}.ListImages(dir)
	if len(images) != 1 || images[0] != filepath.Join(dir, "real.png") {
		t.Fatalf("got %v, want only real.png", images)
	}
}

func TestListImagesMissingDirectory(t *testing.T) {
	if images := (DirScanner{}).ListImages(filepath.Join(t.TempDir(), "nope")); len(images) != 0 {
		t.Fatalf("missing directory should yield no images, got %v", images)
	}
}

func TestListImagesNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if images := (DirScanner{}).ListImages(file); len(images) != 0 {
		t.Fatalf("file path should yield no images, got %v", images)
	}
}

func TestListImagesEmptyDirectory(t *testing.T) {
	if images := (DirScanner{}).ListImages(t.TempDir()); len(images) != 0 {
		t.Fatalf("empty directory should yield no images, got %v", images)
	}
}
