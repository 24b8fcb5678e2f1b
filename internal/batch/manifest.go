package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one rendered mesh in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Faces  int    `json:"faces"`
	Drawn  int    `json:"drawn"`
	Culled int    `json:"culled"`
}

// WriteManifest writes the successful results as JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Image:  r.Image,
			Faces:  r.Stats.Faces,
			Drawn:  r.Stats.Drawn,
			Culled: r.Stats.Culled,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
