package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"idlib/internal/batch"
	"idlib/internal/config"
	"idlib/internal/scene"
	"idlib/internal/texture"
	"idlib/rgb"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")
	only := flag.String("only", "", "Comma-separated scene names to render")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	scenesDir := flag.String("scenes", "", "Directory of YAML scene files (default: scenes)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenesDir:   *scenesDir,
		OutputDir:   *outputDir,
		Format:      *format,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var background *rgb.Color
	if cfg.Background != "" {
		c, err := rgb.ParseHex(cfg.Background)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: background: %v\n", err)
			os.Exit(1)
		}
		background = &c
	}

	// Load scenes
	scenes, err := scene.LoadDir(cfg.ScenesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenes: %v\n", err)
		os.Exit(1)
	}

	// Filter by name
	if *only != "" {
		want := make(map[string]bool)
		for _, n := range strings.Split(*only, ",") {
			want[strings.TrimSpace(n)] = true
		}
		var filtered []*scene.Scene
		for _, sc := range scenes {
			if want[sc.Name] {
				filtered = append(filtered, sc)
			}
		}
		scenes = filtered
	}

	// Limit for testing
	if *testN > 0 && *testN < len(scenes) {
		scenes = scenes[:*testN]
	}

	if len(scenes) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TexturesDir, cfg.ScenesDir)
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	// Print summary
	mode := ""
	if *only != "" {
		mode = fmt.Sprintf(" (only %s)", *only)
	} else if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Scene preview renderer → %s%s\n", strings.ToUpper(cfg.Format), mode)
	fmt.Printf("Scenes: %d, Workers: %d, Size: %d (x%d)\n", len(scenes), cfg.Workers, cfg.RenderSize, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		TexResolver: texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		FillRatio:   cfg.FillRatio,
		Background:  background,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	}

	results := batch.Run(batchCfg, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(scenes))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors[:min(len(errors), 20)] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, scenes, results, cfg.RenderSize); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
