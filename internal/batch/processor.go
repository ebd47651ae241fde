package batch

import (
	"sync"
	"sync/atomic"
	"time"

	"tri-rasterizer/internal/imagesink"
	"tri-rasterizer/internal/logging"
	"tri-rasterizer/internal/raster"
	"tri-rasterizer/internal/scene"
)

// Job is one scene rendered to one image file.
type Job struct {
	Name   string
	Scene  scene.Scene
	Output string
}

// Config controls a batch run.
type Config struct {
	Workers  int
	Progress time.Duration // zero disables progress lines
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	Output  string
	Success bool
	Error   string
	Stats   raster.Stats
	Elapsed time.Duration
}

// Run renders every job using a worker pool. Each job owns its frame store
// and renders on a single goroutine; results come back in job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					logging.Info("progress", "done", p, "total", total, "elapsed", time.Since(start).Round(time.Millisecond))
				}
			}
		}()
	}

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(job Job) Result {
	start := time.Now()
	res := Result{Name: job.Name, Output: job.Output}

	fb, stats := job.Scene.Render()
	res.Stats = stats
	logging.Debug("rendered", "job", job.Name,
		"triangles", stats.Triangles, "culled", stats.Culled, "fragments", stats.Fragments)

	if err := imagesink.Save(job.Output, fb.Image()); err != nil {
		res.Error = err.Error()
		res.Elapsed = time.Since(start)
		return res
	}

	res.Success = true
	res.Elapsed = time.Since(start)
	return res
}
