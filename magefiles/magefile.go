//go:build mage

// Package main provides build targets for the listicle project using Mage.
//
// Usage:
//
//	mage build      Compile the listicle binary to bin/
//	mage test       Run all tests
//	mage testunit   Run the short unit tests only
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install listicle to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "listicle"
	binaryDir  = "bin"
	cmdDir     = "./cmd/listicle"
)

// Build compiles the listicle binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestUnit runs the unit tests only, skipping anything marked long-running.
func TestUnit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Lint runs golangci-lint over the whole module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
