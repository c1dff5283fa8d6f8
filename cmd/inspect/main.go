package main

import (
	"fmt"
	"math"
	"os"

	"idlib/internal/raster"
	"idlib/internal/scene"
	"idlib/mathutil"
)

func printMat(name string, m mathutil.Mat4[float64]) {
	fmt.Printf("  %s:\n", name)
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		fmt.Printf("    [%9.4f %9.4f %9.4f %9.4f]\n", row[0], row[1], row[2], row[3])
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect scene.yaml [size]")
		os.Exit(2)
	}
	size := 256
	if len(os.Args) > 2 {
		if _, err := fmt.Sscan(os.Args[2], &size); err != nil || size <= 0 {
			fmt.Fprintf(os.Stderr, "Error: bad size %q\n", os.Args[2])
			os.Exit(2)
		}
	}

	sc, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	m, err := sc.BuildMesh()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	model, _ := sc.ModelMatrix()
	view, _ := sc.ViewMatrix()
	proj, _ := sc.ProjectionMatrix(1)

	fmt.Printf("Scene %q: mesh=%s, verts=%d, tris=%d, color=%s, texture=%q\n",
		sc.Name, sc.Mesh, len(m.Verts), len(m.Tris), sc.Color, sc.Texture)
	printMat("Model", model)
	printMat("View", view)
	printMat("Projection", proj)

	world := m.Transform(model)
	lo, hi := world.Bounds()
	fmt.Printf("  BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("  Size: %.2f x %.2f x %.2f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])

	// Surface area by dominant normal direction, in world space
	areaByDir := map[string]float64{}
	for _, tri := range world.Tris {
		v0, v1, v2 := world.Verts[tri.VI[0]], world.Verts[tri.VI[1]], world.Verts[tri.VI[2]]
		c := v1.Sub(v0).Cross(v2.Sub(v0))
		area := 0.5 * c.Length()
		acx, acy, acz := math.Abs(c[0]), math.Abs(c[1]), math.Abs(c[2])
		dir := ""
		if acx >= acy && acx >= acz {
			if c[0] > 0 { dir = "+X(right)" } else { dir = "-X(left)" }
		} else if acy >= acx && acy >= acz {
			if c[1] > 0 { dir = "+Y(top)" } else { dir = "-Y(bottom)" }
		} else {
			if c[2] > 0 { dir = "+Z(front)" } else { dir = "-Z(back)" }
		}
		areaByDir[dir] += area
	}
	fmt.Println("  --- Surface area by direction ---")
	for _, d := range []string{"+Z(front)", "-Z(back)", "+X(right)", "-X(left)", "+Y(top)", "-Y(bottom)"} {
		fmt.Printf("  %s: %.2f sq units\n", d, areaByDir[d])
	}

	// Screen positions at the requested size
	sv, ok := raster.ProjectVertices(world.Verts, mathutil.Mat4Mul(proj, view), size, size)
	fmt.Printf("  --- Screen positions (%dx%d) ---\n", size, size)
	for i, v := range sv {
		if !ok[i] {
			fmt.Printf("  vert[%2d] behind camera\n", i)
			continue
		}
		fmt.Printf("  vert[%2d] (%7.1f, %7.1f) depth=%.4f\n", i, v.X, v.Y, v.Z)
	}
}
