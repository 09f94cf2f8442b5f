// Package batch renders animation frame sequences for many
// (breed, state) combinations in parallel and encodes them to WebP.
package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"pup-avatar-renderer/internal/anim"
	"pup-avatar-renderer/internal/breed"
	"pup-avatar-renderer/internal/painter"
	"pup-avatar-renderer/internal/postprocess"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir   string
	Size        int
	Supersample int
	FrameCount  int
	Workers     int
}

// Job is one frame sequence to render.
type Job struct {
	Breed      breed.Breed
	State      anim.State
	Expression anim.Expression
}

// Result holds the outcome of rendering one sequence.
type Result struct {
	Job     Job
	Frames  []string
	Success bool
	Error   string
}

// Run renders all jobs using a worker pool and reports progress every
// couple of seconds.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f sequences/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = renderSequence(cfg, jobs[idx])
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

// renderSequence samples one full animation cycle at evenly spaced
// times and writes each frame as WebP under
// <out>/<breedKey>/<state>/<expression>_NNN.webp.
func renderSequence(cfg Config, job Job) Result {
	fail := func(err error) Result {
		return Result{Job: job, Error: err.Error()}
	}

	bc := breed.ConfigFor(job.Breed)
	cycle := anim.CycleSeconds(job.State, bc.AnimationSpeedMultiplier)

	dir := filepath.Join(cfg.OutputDir, job.Breed.Key(), job.State.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(err)
	}

	frames := make([]string, 0, cfg.FrameCount)
	for f := 0; f < cfg.FrameCount; f++ {
		t := cycle * float64(f) / float64(cfg.FrameCount)
		ps := anim.PoseAt(job.State, bc.AnimationSpeedMultiplier, t)

		img, err := painter.Render(bc, ps, job.Expression, cfg.Size, cfg.Supersample)
		if err != nil {
			return fail(fmt.Errorf("batch: render %s/%s frame %d: %w", job.Breed, job.State, f, err))
		}
		if cfg.Supersample > 1 {
			img = postprocess.Downscale(img, cfg.Size)
		}

		outPath := filepath.Join(dir, fmt.Sprintf("%s_%03d.webp", job.Expression, f))
		if err := writeWebP(outPath, img); err != nil {
			return fail(err)
		}
		frames = append(frames, outPath)
	}

	return Result{Job: job, Frames: frames, Success: true}
}

func writeWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("batch: webp encode %s: %w", path, err)
	}
	return nil
}

// Manifest indexes every frame produced by a run.
type Manifest struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Size        int             `json:"size"`
	Sequences   []ManifestEntry `json:"sequences"`
}

// ManifestEntry describes one rendered sequence.
type ManifestEntry struct {
	Breed      string   `json:"breed"`
	State      string   `json:"state"`
	Expression string   `json:"expression"`
	Frames     []string `json:"frames"`
}

// WriteManifest saves a JSON index of all successful sequences.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{GeneratedAt: time.Now().UTC(), Size: cfg.Size}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Sequences = append(m.Sequences, ManifestEntry{
			Breed:      r.Job.Breed.Key(),
			State:      r.Job.State.String(),
			Expression: r.Job.Expression.String(),
			Frames:     r.Frames,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest write %s: %w", path, err)
	}
	return nil
}
