package batch

import (
	"encoding/json"
	"os"

	"idlib/internal/scene"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name       string `json:"name"`
	Mesh       string `json:"mesh"`
	Camera     string `json:"camera"`
	Projection string `json:"projection"`
	Image      string `json:"image"`
	Size       int    `json:"size"`
}

// WriteManifest writes the manifest of every successfully rendered scene.
// scenes and results must be parallel slices as returned by Run.
func WriteManifest(path string, scenes []*scene.Scene, results []Result, size int) error {
	entries := make([]ManifestEntry, 0, len(results))
	for i, r := range results {
		if !r.Success {
			continue
		}
		sc := scenes[i]
		cam := sc.Camera.Preset
		if sc.Camera.Eye != nil {
			cam = "look_at"
		} else if cam == "" {
			cam = scene.DefaultPreset
		}
		entries = append(entries, ManifestEntry{
			Name:       sc.Name,
			Mesh:       sc.Mesh,
			Camera:     cam,
			Projection: sc.Projection.Kind,
			Image:      r.Image,
			Size:       size,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
