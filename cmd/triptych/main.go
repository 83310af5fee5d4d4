// Triptych - three-panel desktop image viewer
package main

import (
	"os"

	"github.com/triptychview/triptych/internal/cli"
	"github.com/triptychview/triptych/internal/version"
)

// Version information, overridable via ldflags at build time.
var (
	Version   = "v0.3.1"
	BuildTime = "unknown"
)

func main() {
	// The version package is the canonical source for all packages.
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
