// Package scan enumerates recognized image files in a directory.
package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// recognizedSuffixes are the file name endings treated as images.
// Matching is case-sensitive, so ".PNG" is not recognized.
var recognizedSuffixes = []string{".png", ".jpg", ".jpeg"}

// Recognized reports whether a file name ends in a recognized image suffix.
func Recognized(name string) bool {
	for _, suffix := range recognizedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// DirScanner lists image files from the local filesystem.
type DirScanner struct{}

// ListImages returns the regular files in dir whose names end in a
// recognized image suffix, joined with dir, in directory enumeration
// order. A missing or non-directory path yields an empty result, never
// an error: the caller treats "nothing to show" as a valid state.
func (DirScanner) ListImages(dir string) []string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var images []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if Recognized(entry.Name()) {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	return images
}
