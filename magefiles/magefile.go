//go:build mage

// Package main contains Mage build targets for deckgen developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// All builds the binary and runs the test suite.
func All() {
	mg.SerialDeps(Build, Test)
}

const (
	binDir  = "bin"
	binName = "deckgen"
	cmdPkg  = "./cmd/deckgen"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Sample creates an example slides tree under slides/ with two folders:
// a CSV table slide and a notes slide, useful for a smoke run.
func Sample() error {
	type sampleFile struct {
		path    string
		content string
	}
	files := []sampleFile{
		{"slides/slide1/meta.txt", "Quarterly Sales\nRegional breakdown, FY26 Q2\n"},
		{"slides/slide1/sales.csv", "Region,Target,Actual\nAmericas,120,134\nEMEA,90,88\nAPAC,75,81\n"},
		{"slides/slide2/meta.txt", "Highlights\n"},
		{"slides/slide2/notes.txt", "# Summary\n- Americas ahead of plan (+11.6%)\n- EMEA slightly behind (-2.2%)\n"},
	}

	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(f.path), err)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
		fmt.Println("  ", f.path)
	}
	fmt.Println("Sample slides tree initialized.")
	return nil
}
