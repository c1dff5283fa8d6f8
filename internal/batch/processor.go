package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"idlib/internal/config"
	"idlib/internal/postprocess"
	"idlib/internal/raster"
	"idlib/internal/scene"
	"idlib/internal/texture"
	"idlib/rgb"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string
	TexResolver texture.Resolver
	RenderSize  int
	Supersample int
	FillRatio   float64    // 0 keeps the camera framing
	Background  *rgb.Color // nil keeps transparency
	Workers     int

	// Progress receives periodic progress lines. nil disables reporting.
	Progress io.Writer
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// Run renders all scenes using a worker pool. Results are in scene order.
func Run(cfg Config, scenes []*scene.Scene) []Result {
	total := len(scenes)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		if cfg.Progress == nil {
			return
		}
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
					rate := float64(p) / elapsed
					fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	workers := max(cfg.Workers, 1)
	sceneChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = processScene(cfg, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range scenes {
		sceneChan <- i
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

// ImageName returns the output file name for a scene.
func ImageName(name, format string) string {
	return name + "." + format
}

func processScene(cfg Config, sc *scene.Scene) Result {
	res := Result{Name: sc.Name, Image: ImageName(sc.Name, cfg.Format)}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	var tex *image.NRGBA
	if sc.Texture != "" {
		if cfg.TexResolver != nil {
			tex = cfg.TexResolver.Resolve(sc.TexturePath())
		}
		if tex == nil {
			return fail(fmt.Errorf("texture not found: %s", sc.Texture))
		}
	}

	img, err := raster.Render(sc, tex, cfg.RenderSize, cfg.Supersample)
	if err != nil {
		return fail(err)
	}

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize, cfg.RenderSize)
	}
	if cfg.FillRatio > 0 {
		img = postprocess.Fit(img, cfg.RenderSize, cfg.FillRatio)
	}
	if cfg.Background != nil {
		img = postprocess.Flatten(img, *cfg.Background)
	}

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}
	if err := WriteImage(outPath, img, cfg.Format); err != nil {
		return fail(err)
	}

	res.Success = true
	return res
}

// WriteImage encodes img to path in the given format.
func WriteImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img as lossless WebP or TGA.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case config.FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case config.FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
	return nil
}
