package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// systemDataDirs are the fixed system-wide install locations checked
// after the per-checkout candidates.
var systemDataDirs = []string{
	"/usr/local/share/triptych/data",
	"/opt/local/share/triptych/data",
	"/usr/share/triptych/data",
}

// DataDir resolves the base asset directory via an ordered fallback search:
//
//  1. macOS app bundle: <bundle>/Contents/Resources/data next to the executable
//  2. data under the current working directory (development checkout)
//  3. data next to the executable
//  4. the fixed system-wide install locations
//
// If none exist it returns "./data" anyway; callers treat a missing
// directory as an empty image collection, not an error.
func DataDir() string {
	if runtime.GOOS == "darwin" {
		if dir, ok := bundleResourcesData(); ok {
			return dir
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		if dir := filepath.Join(cwd, "data"); isDir(dir) {
			return dir
		}
	}

	if exe, err := os.Executable(); err == nil {
		if dir := filepath.Join(filepath.Dir(exe), "data"); isDir(dir) {
			return dir
		}
	}

	for _, dir := range systemDataDirs {
		if isDir(dir) {
			return dir
		}
	}

	return filepath.Join(".", "data")
}

// bundleResourcesData returns Contents/Resources/data for a macOS .app
// layout, where the executable lives in Contents/MacOS.
func bundleResourcesData() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	dir := filepath.Join(filepath.Dir(filepath.Dir(exe)), "Resources", "data")
	return dir, isDir(dir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
