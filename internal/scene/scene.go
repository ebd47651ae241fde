// Package scene describes what gets rendered: a camera, an output size and a
// flat list of instances of one mesh.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"tri-rasterizer/internal/mathutil"
	"tri-rasterizer/internal/raster"
)

var (
	ErrUnknownPreset = errors.New("unknown scene preset")
	ErrUnknownShader = errors.New("unknown shader")
	ErrInvalid       = errors.New("invalid scene")
)

// Camera holds the look-at and perspective parameters.
type Camera struct {
	Eye    mathutil.Vec3
	LookAt mathutil.Vec3
	Up     mathutil.Vec3
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
}

// Instance places one copy of the scene mesh: translate first, then rotate
// Angle degrees about Axis inside the translated frame.
type Instance struct {
	Translate mathutil.Vec3
	Axis      mathutil.Vec3
	Angle     float64
}

// Model returns T(Translate) · R(Axis, Angle).
func (in Instance) Model() mathutil.Mat4 {
	return mathutil.Translate(in.Translate).Mul(mathutil.Rotate(in.Axis, in.Angle))
}

// Scene is everything one render needs.
type Scene struct {
	Name   string
	Width  int
	Height int
	Camera Camera

	// Identity renders without view and projection, mapping positions to
	// pixels with raster.FixedRaster.
	Identity bool

	Instances   []Instance
	Geometry    raster.Geometry
	Shader      raster.Shader
	BoundingBox bool
}

// View returns the camera's look-at matrix.
func (s *Scene) View() mathutil.Mat4 {
	if s.Identity {
		return mathutil.Mat4Identity()
	}
	return mathutil.LookAt(s.Camera.Eye, s.Camera.LookAt, s.Camera.Up)
}

// Projection returns the perspective matrix for the output aspect ratio.
func (s *Scene) Projection() mathutil.Mat4 {
	if s.Identity {
		return mathutil.Mat4Identity()
	}
	aspect := float64(s.Width) / float64(s.Height)
	return mathutil.Perspective(s.Camera.FOV, aspect, s.Camera.Near, s.Camera.Far)
}

// Objects pairs every instance with the scene geometry, in instance order.
// A scene without instances draws the geometry once, untransformed.
func (s *Scene) Objects() []raster.Object {
	if len(s.Instances) == 0 {
		return []raster.Object{{Model: mathutil.Mat4Identity(), Geometry: s.Geometry}}
	}
	objects := make([]raster.Object, len(s.Instances))
	for i, in := range s.Instances {
		objects[i] = raster.Object{Model: in.Model(), Geometry: s.Geometry}
	}
	return objects
}

// Renderer returns a renderer configured for this scene.
func (s *Scene) Renderer() *raster.Renderer {
	r := &raster.Renderer{
		Width:       s.Width,
		Height:      s.Height,
		Shader:      s.Shader,
		BoundingBox: s.BoundingBox,
	}
	if s.Identity {
		r.Mapper = raster.FixedRaster
	}
	return r
}

// Render draws the scene into a fresh frame store.
func (s *Scene) Render() (*raster.FrameStore, raster.Stats) {
	return s.Renderer().Render(s.Projection(), s.View(), s.Objects())
}

// Validate reports parameters no render can use.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, s.Width, s.Height)
	}
	if s.Geometry == nil {
		return fmt.Errorf("%w: no geometry", ErrInvalid)
	}
	if s.Identity {
		return nil
	}
	c := s.Camera
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.FOV)
	}
	if !(c.Near > 0 && c.Far > c.Near) {
		return fmt.Errorf("%w: near %v, far %v", ErrInvalid, c.Near, c.Far)
	}
	if c.LookAt.Sub(c.Eye).Len() < 1e-12 {
		return fmt.Errorf("%w: eye and look-at coincide", ErrInvalid)
	}
	if c.LookAt.Sub(c.Eye).Cross(c.Up).Len() < 1e-12 {
		return fmt.Errorf("%w: up is parallel to the view direction", ErrInvalid)
	}
	return nil
}

// ShaderFor maps a shader name to a color policy. scale only applies to
// "weights"; zero selects DefaultWeightScale.
func ShaderFor(name string, scale float64) (raster.Shader, error) {
	switch name {
	case "debug":
		return raster.DebugWeights(), nil
	case "palette":
		return raster.Palette(raster.DefaultPalette), nil
	case "weights":
		if scale == 0 || math.IsNaN(scale) {
			scale = DefaultWeightScale
		}
		return raster.ScaledWeights(scale), nil
	case "solid":
		return raster.Solid(color.White), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShader, name)
}
