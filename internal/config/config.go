package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"tri-rasterizer/internal/mathutil"
	"tri-rasterizer/internal/mesh"
	"tri-rasterizer/internal/scene"
)

// Config holds one render job: the scene description and where it goes.
// Every scene field is optional and overrides the chosen preset.
type Config struct {
	// Scene
	Preset      string           `json:"preset" toml:"preset"`
	Width       int              `json:"width" toml:"width"`
	Height      int              `json:"height" toml:"height"`
	Camera      *CameraConfig    `json:"camera,omitempty" toml:"camera,omitempty"`
	Instances   []InstanceConfig `json:"instances,omitempty" toml:"instances,omitempty"`
	Mesh        string           `json:"mesh" toml:"mesh"` // OBJ file, relative to the config file
	Shader      string           `json:"shader" toml:"shader"`
	ShaderScale float64          `json:"shader_scale" toml:"shader_scale"`
	BoundingBox bool             `json:"bounding_box" toml:"bounding_box"`

	// Output
	Output   string `json:"output" toml:"output"`
	Workers  int    `json:"workers" toml:"workers"`
	LogLevel string `json:"log_level" toml:"log_level"`

	dir string
}

// CameraConfig overrides individual camera parameters. Nil vectors and zero
// numbers keep the preset's value.
type CameraConfig struct {
	Eye    *mathutil.Vec3 `json:"eye,omitempty" toml:"eye,omitempty"`
	LookAt *mathutil.Vec3 `json:"look_at,omitempty" toml:"look_at,omitempty"`
	Up     *mathutil.Vec3 `json:"up,omitempty" toml:"up,omitempty"`
	FOV    float64        `json:"fov" toml:"fov"`
	Near   float64        `json:"near" toml:"near"`
	Far    float64        `json:"far" toml:"far"`
}

// InstanceConfig places one copy of the mesh.
type InstanceConfig struct {
	Translate mathutil.Vec3 `json:"translate" toml:"translate"`
	Axis      mathutil.Vec3 `json:"axis" toml:"axis"`
	Angle     float64       `json:"angle" toml:"angle"` // degrees
}

// Load reads a JSON or TOML (by .toml extension) config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Preset   string
	Output   string
	Width    int
	Height   int
	Shader   string
	Workers  int
	LogLevel string
}

// Resolve applies CLI overrides, then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Shader != "" {
		c.Shader = flags.Shader
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Preset == "" {
		c.Preset = "cube"
	}
	if c.Output == "" {
		c.Output = "image.png"
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Mesh != "" && !filepath.IsAbs(c.Mesh) && c.dir != "" {
		c.Mesh = filepath.Join(c.dir, c.Mesh)
	}
}

// Scene builds the scene: the preset first, then every override, loading
// the mesh file if one is named.
func (c *Config) Scene() (scene.Scene, error) {
	s, err := scene.Preset(c.Preset)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("config: %w", err)
	}

	if c.Width > 0 {
		s.Width = c.Width
	}
	if c.Height > 0 {
		s.Height = c.Height
	}
	if c.Camera != nil {
		applyCamera(&s.Camera, c.Camera)
	}
	if len(c.Instances) > 0 {
		s.Instances = make([]scene.Instance, len(c.Instances))
		for i, in := range c.Instances {
			s.Instances[i] = scene.Instance{Translate: in.Translate, Axis: in.Axis, Angle: in.Angle}
		}
	}
	if c.Mesh != "" {
		m, err := mesh.LoadOBJ(c.Mesh)
		if err != nil {
			return scene.Scene{}, err
		}
		s.Geometry = m
		s.Name = m.Name
	}
	if c.Shader != "" || c.ShaderScale != 0 {
		name := c.Shader
		if name == "" {
			name = "weights"
		}
		sh, err := scene.ShaderFor(name, c.ShaderScale)
		if err != nil {
			return scene.Scene{}, fmt.Errorf("config: %w", err)
		}
		s.Shader = sh
	}
	s.BoundingBox = s.BoundingBox || c.BoundingBox

	if err := s.Validate(); err != nil {
		return scene.Scene{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

func applyCamera(dst *scene.Camera, src *CameraConfig) {
	if src.Eye != nil {
		dst.Eye = *src.Eye
	}
	if src.LookAt != nil {
		dst.LookAt = *src.LookAt
	}
	if src.Up != nil {
		dst.Up = *src.Up
	}
	if src.FOV > 0 {
		dst.FOV = src.FOV
	}
	if src.Near > 0 {
		dst.Near = src.Near
	}
	if src.Far > 0 {
		dst.Far = src.Far
	}
}
