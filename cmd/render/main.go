package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"tri-rasterizer/internal/batch"
	"tri-rasterizer/internal/config"
	"tri-rasterizer/internal/logging"
	"tri-rasterizer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a scene config (.json or .toml); more may follow as arguments")
	preset := flag.String("preset", "", "Scene preset: "+strings.Join(scene.PresetNames(), ", ")+" (default: cube)")
	output := flag.String("output", "", "Output image; extension picks png, webp, bmp, tiff or tga (default: image.png)")
	width := flag.Int("width", 0, "Output width in pixels (default: 800)")
	height := flag.Int("height", 0, "Output height in pixels (default: 600)")
	shader := flag.String("shader", "", "Color policy: debug, palette, weights, solid")
	workers := flag.Int("workers", 0, "Scenes rendered concurrently (default: 1)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")
	manifest := flag.String("manifest", "", "Write a JSON run manifest to this path")

	flag.Parse()

	flags := config.Flags{
		Preset:   *preset,
		Output:   *output,
		Width:    *width,
		Height:   *height,
		Shader:   *shader,
		Workers:  *workers,
		LogLevel: *logLevel,
	}

	paths := flag.Args()
	if *configFile != "" {
		paths = append([]string{*configFile}, paths...)
	}
	if len(paths) > 1 && *output != "" {
		fmt.Fprintln(os.Stderr, "Error: -output names a single image; set output in each config instead.")
		os.Exit(1)
	}

	// Load configs; a missing or invalid scene is fatal before anything renders
	var cfgs []config.Config
	if len(paths) == 0 {
		cfg := config.Config{}
		cfg.Resolve(flags)
		cfgs = append(cfgs, cfg)
	}
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			logging.Fatal("loading config", "err", err)
		}
		cfg.Resolve(flags)
		cfgs = append(cfgs, cfg)
	}

	if err := logging.SetLevel(cfgs[0].LogLevel); err != nil {
		logging.Fatal("log level", "err", err)
	}

	jobs := make([]batch.Job, 0, len(cfgs))
	for i, cfg := range cfgs {
		s, err := cfg.Scene()
		if err != nil {
			logging.Fatal("building scene", "err", err)
		}
		name := s.Name
		if i < len(paths) {
			name = paths[i]
		}
		jobs = append(jobs, batch.Job{Name: name, Scene: s, Output: cfg.Output})
		logging.Debug("job", "name", name, "size", fmt.Sprintf("%dx%d", s.Width, s.Height), "output", cfg.Output)
	}

	start := time.Now()
	results := batch.Run(batch.Config{Workers: cfgs[0].Workers, Progress: 2 * time.Second}, jobs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			logging.Error("render failed", "job", r.Name, "err", r.Error)
			continue
		}
		logging.Info("wrote image", "job", r.Name, "output", r.Output,
			"triangles", r.Stats.Triangles, "culled", r.Stats.Culled, "elapsed", r.Elapsed.Round(time.Millisecond))
	}
	logging.Info("done", "rendered", len(results)-failed, "of", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	if *manifest != "" {
		if err := batch.WriteManifest(*manifest, batch.NewManifest(jobs, results)); err != nil {
			logging.Warn("manifest write failed", "err", err)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
