package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"idlib/internal/batch"
	"idlib/internal/config"
	"idlib/internal/texture"
)

// texdump decodes texture files and re-encodes them as WebP or TGA, to check
// what the renderer will sample.
func main() {
	format := config.FormatTGA
	args := os.Args[1:]
	if len(args) > 0 && strings.HasPrefix(args[0], "-") {
		format = strings.TrimPrefix(args[0], "-")
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: texdump [-webp|-tga] texture...")
		os.Exit(2)
	}

	failed := 0
	for _, src := range args {
		img, err := texture.LoadTexture(src)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", src, err)
			failed++
			continue
		}
		dst := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + "_dump." + format
		if err := batch.WriteImage(dst, img, format); err != nil {
			fmt.Printf("FAIL %s: %v\n", src, err)
			failed++
			continue
		}
		b := img.Bounds()
		fmt.Printf("OK  %s -> %s  (%dx%d)\n", src, dst, b.Dx(), b.Dy())
	}

	fmt.Printf("\n%d/%d textures dumped\n", len(args)-failed, len(args))
	if failed > 0 {
		os.Exit(1)
	}
}
