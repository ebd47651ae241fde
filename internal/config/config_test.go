package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tri-rasterizer/internal/mathutil"
	"tri-rasterizer/internal/scene"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSONAndTOML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "scene.json", `{
  "preset": "cube",
  "width": 320,
  "height": 240,
  "camera": {"eye": [0, 2, 8], "fov": 45},
  "instances": [{"translate": [1, 0, 0], "axis": [0, 1, 0], "angle": 30}],
  "shader": "weights",
  "shader_scale": 500,
  "output": "out.webp"
}`)
	tomlPath := writeFile(t, dir, "scene.toml", `
preset = "cube"
width = 320
height = 240
shader = "weights"
shader_scale = 500.0
output = "out.webp"

[camera]
eye = [0.0, 2.0, 8.0]
fov = 45.0

[[instances]]
translate = [1.0, 0.0, 0.0]
axis = [0.0, 1.0, 0.0]
angle = 30.0
`)

	for _, path := range []string{jsonPath, tomlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Width != 320 || cfg.Height != 240 || cfg.Output != "out.webp" || cfg.ShaderScale != 500 {
				t.Errorf("cfg = %+v", cfg)
			}
			if cfg.Camera == nil || cfg.Camera.Eye == nil || *cfg.Camera.Eye != (mathutil.Vec3{0, 2, 8}) {
				t.Fatalf("camera = %+v", cfg.Camera)
			}
			if cfg.Camera.LookAt != nil {
				t.Errorf("look_at set without being in the file")
			}
			want := InstanceConfig{Translate: mathutil.Vec3{1, 0, 0}, Axis: mathutil.Vec3{0, 1, 0}, Angle: 30}
			if len(cfg.Instances) != 1 || cfg.Instances[0] != want {
				t.Errorf("instances = %+v", cfg.Instances)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
	bad := writeFile(t, dir, "bad.toml", "width = [")
	if _, err := Load(bad); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestResolve(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Preset != "cube" || cfg.Output != "image.png" || cfg.Workers != 1 || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}

	cfg = Config{Preset: "cube", Output: "a.png", Width: 100}
	cfg.Resolve(Flags{Preset: "triangle", Output: "b.bmp", Width: 64, Height: 32, Workers: 3})
	if cfg.Preset != "triangle" || cfg.Output != "b.bmp" || cfg.Width != 64 || cfg.Height != 32 || cfg.Workers != 3 {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestSceneOverrides(t *testing.T) {
	eye := mathutil.Vec3{0, 2, 8}
	cfg := Config{
		Width:  320,
		Height: 240,
		Camera: &CameraConfig{Eye: &eye, FOV: 45},
		Instances: []InstanceConfig{
			{Translate: mathutil.Vec3{1, 0, 0}},
		},
		BoundingBox: true,
	}
	cfg.Resolve(Flags{})
	s, err := cfg.Scene()
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}
	if s.Width != 320 || s.Height != 240 || !s.BoundingBox {
		t.Errorf("scene = %+v", s)
	}
	if s.Camera.Eye != eye || s.Camera.FOV != 45 || s.Camera.Far != scene.DefaultCamera.Far {
		t.Errorf("camera = %+v", s.Camera)
	}
	if len(s.Instances) != 1 {
		t.Errorf("instances = %+v", s.Instances)
	}
}

func TestSceneMeshRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "models")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "tri.obj", "v -1 -1 0\nv 1 -1 0\nv 0 1 0\nf 1 2 3\n")
	path := writeFile(t, dir, "scene.json", `{"mesh": "models/tri.obj", "width": 64, "height": 48}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{})
	s, err := cfg.Scene()
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}
	if s.Name != "tri" || s.Geometry.VertexCount() != 3 {
		t.Errorf("scene %q with %d vertices", s.Name, s.Geometry.VertexCount())
	}
}

func TestSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"preset", Config{Preset: "teapot"}, scene.ErrUnknownPreset},
		{"shader", Config{Shader: "phong"}, scene.ErrUnknownShader},
		{"camera", Config{Camera: &CameraConfig{Near: 200}}, scene.ErrInvalid},
		{"mesh", Config{Mesh: "/does/not/exist.obj"}, os.ErrNotExist},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Resolve(Flags{})
			if _, err := tc.cfg.Scene(); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestShippedScenes(t *testing.T) {
	for _, name := range []string{"cube.toml", "triangle.json"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(filepath.Join("..", "..", "scenes", name))
			if err != nil {
				t.Fatal(err)
			}
			cfg.Resolve(Flags{})
			s, err := cfg.Scene()
			if err != nil {
				t.Fatalf("Scene: %v", err)
			}
			preset, _ := scene.Preset(cfg.Preset)
			if s.Camera != preset.Camera || len(s.Instances) != len(preset.Instances) {
				t.Errorf("%s drifted from the %s preset", name, cfg.Preset)
			}
			for i := range s.Instances {
				if s.Instances[i] != preset.Instances[i] {
					t.Errorf("instance %d = %+v, want %+v", i, s.Instances[i], preset.Instances[i])
				}
			}
		})
	}
}
