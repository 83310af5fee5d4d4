package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return buf.String()
}

func TestScanCommandListsRecognizedImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpg", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	out := runCommand(t, "scan", dir)

	if !strings.Contains(out, filepath.Join(dir, "a.png")) {
		t.Errorf("output missing a.png:\n%s", out)
	}
	if !strings.Contains(out, filepath.Join(dir, "b.jpg")) {
		t.Errorf("output missing b.jpg:\n%s", out)
	}
	if strings.Contains(out, "c.txt") {
		t.Errorf("output should not list c.txt:\n%s", out)
	}
}

func TestScanCommandMissingDirectory(t *testing.T) {
	out := runCommand(t, "scan", filepath.Join(t.TempDir(), "nope"))
	if strings.TrimSpace(out) != "" {
		t.Errorf("expected no listing for a missing directory, got:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	if !strings.Contains(out, "triptych") {
		t.Errorf("version output = %q, want it to name the binary", out)
	}
}
