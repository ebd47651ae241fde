//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the render binary into bin/.
func (Build) Render() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/render", "./cmd/render"), withStream())
	return err
}

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
