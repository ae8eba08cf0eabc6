//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "polyglot"

// Build compiles the polyglot binary into ./bin
func Build() error {
	fmt.Println("Building", binaryName, "...")
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/polyglot")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install builds and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", "./cmd/polyglot")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}
