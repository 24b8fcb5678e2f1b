package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"softraster/internal/imageio"
	"softraster/internal/mesh"
	"softraster/internal/render"
)

// Config holds all shared settings for a batch run. Every item gets its own
// render pass; nothing mutable is shared between workers.
type Config struct {
	OutputDir string
	Format    imageio.Format
	Options   render.Options
	Fit       bool
	Scale     int
	Workers   int
}

// Item is one mesh to render.
type Item struct {
	Name string // output stem, relative to the scanned directory
	Path string
}

// Result holds the outcome of processing one item.
type Result struct {
	Name    string
	Image   string
	Stats   render.Stats
	Success bool
	Error   string
}

// Discover lists every .obj file below dir, sorted by path.
func Discover(dir string) ([]Item, error) {
	var items []Item
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".obj") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		items = append(items, Item{
			Name: strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel)),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, nil
}

// Run processes all items using a worker pool.
func Run(cfg Config, items []Item) []Result {
	total := len(items)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	log := render.Logger()

	// Progress reporter
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
					log.Info("batch progress", "done", p, "total", total,
						"rate", fmt.Sprintf("%.1f/s", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	itemChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range itemChan {
				results[idx] = processItem(cfg, items[idx])
				if !results[idx].Success {
					log.Warn("batch item failed", "name", results[idx].Name, "error", results[idx].Error)
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range items {
		itemChan <- i
	}
	close(itemChan)

	wg.Wait()
	close(done)

	return results
}

func processItem(cfg Config, item Item) Result {
	res := Result{Name: item.Name}

	m, err := mesh.LoadOBJ(item.Path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if cfg.Fit {
		m = mesh.Fit(m)
	}

	pass := render.NewPass(m, cfg.Options)
	res.Stats = pass.Run()

	img := imageio.Upscale(pass.Image(), cfg.Scale)

	format := cfg.Format
	if format == "" {
		format = imageio.PNG
	}
	res.Image = item.Name + "." + string(format)
	if err := imageio.Save(filepath.Join(cfg.OutputDir, filepath.FromSlash(res.Image)), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
