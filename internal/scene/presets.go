package scene

import (
	"fmt"
	"sort"

	"tri-rasterizer/internal/mathutil"
	"tri-rasterizer/internal/mesh"
	"tri-rasterizer/internal/raster"
)

// Output size shared by the presets.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultWeightScale is the "weights" shader scale. With perspective the
// edge values are homogeneous, on the order of 1/w, so a plain ×255 leaves
// them dim.
const DefaultWeightScale = 255 * 4

// DefaultCamera looks at the origin from above and in front.
var DefaultCamera = Camera{
	Eye:    mathutil.Vec3{0, 3.75, 6.5},
	LookAt: mathutil.Vec3{0, 0, 0},
	Up:     mathutil.Vec3{0, 1, 0},
	FOV:    60,
	Near:   0.1,
	Far:    100,
}

// CubeInstances are the four placements of the cube scene.
var CubeInstances = []Instance{
	{Translate: mathutil.Vec3{0, 0, 2}, Axis: mathutil.Vec3{0, 1, 0}, Angle: 45},
	{Translate: mathutil.Vec3{-3.75, 0, 0}, Axis: mathutil.Vec3{1, 0, 0}, Angle: 30},
	{Translate: mathutil.Vec3{3.75, 0, 0}, Axis: mathutil.Vec3{0, 1, 0}, Angle: 60},
	{Translate: mathutil.Vec3{0, 0, -2}, Axis: mathutil.Vec3{0, 0, 1}, Angle: 90},
}

var presets = map[string]func() Scene{
	"triangle": Triangle,
	"cube":     Cube,
}

// Triangle is one triangle mapped straight to pixels, shaded with its weights.
func Triangle() Scene {
	return Scene{
		Name:     "triangle",
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Identity: true,
		Geometry: mesh.SingleTriangle(),
		Shader:   raster.DebugWeights(),
	}
}

// Cube is four cubes seen through the default camera, one flat color per
// triangle.
func Cube() Scene {
	return Scene{
		Name:      "cube",
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Camera:    DefaultCamera,
		Instances: append([]Instance(nil), CubeInstances...),
		Geometry:  mesh.Cube(),
		Shader:    raster.Palette(raster.DefaultPalette),
	}
}

// Preset returns a fresh copy of the named scene.
func Preset(name string) (Scene, error) {
	build, ok := presets[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
