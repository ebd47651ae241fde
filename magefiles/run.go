//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the four-cube scene to cube.png.
func (Run) Cube() error {
	mg.Deps(Build.Render)
	_, err := executeCmd("bin/render", withArgs("-config", "scenes/cube.toml"), withStream())
	return err
}

// Renders the single debug-shaded triangle to triangle.png.
func (Run) Triangle() error {
	mg.Deps(Build.Render)
	_, err := executeCmd("bin/render", withArgs("-config", "scenes/triangle.json"), withStream())
	return err
}
