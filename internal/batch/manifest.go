package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Manifest records one batch run.
type Manifest struct {
	RunID   string          `json:"run_id"`
	Created time.Time       `json:"created"`
	Entries []ManifestEntry `json:"entries"`
}

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Triangles int    `json:"triangles"`
	Culled    int    `json:"culled"`
	Fragments int    `json:"fragments"`
}

// NewManifest pairs jobs with their results under a fresh run id.
func NewManifest(jobs []Job, results []Result) Manifest {
	m := Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		Entries: make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		e := ManifestEntry{
			Name:      r.Name,
			Image:     r.Output,
			Success:   r.Success,
			Error:     r.Error,
			Triangles: r.Stats.Triangles,
			Culled:    r.Stats.Culled,
			Fragments: r.Stats.Fragments,
		}
		if i < len(jobs) {
			e.Width, e.Height = jobs[i].Scene.Width, jobs[i].Scene.Height
		}
		m.Entries[i] = e
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return nil
}
