//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the text2ipa binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "text2ipa", "./cmd/text2ipa")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install runs the tests and installs the binary.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/text2ipa")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("text2ipa")
}
