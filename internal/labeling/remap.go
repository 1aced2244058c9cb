package labeling

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Remap rewrites derived slugs that collide with, or read ambiguously next
// to, labels the moderation service already uses.
type Remap map[string]string

// DefaultRemap returns the built-in slug corrections.
func DefaultRemap() Remap {
	return Remap{
		"3d":   "three-d",
		"nsfw": "nsfw-content",
	}
}

// LoadRemap returns DefaultRemap merged with the entries of the YAML file at
// path. File entries win. An empty path returns the defaults.
//
// The file is a flat mapping:
//
//	3d: three-dimensional
//	sea-otter: otter
func LoadRemap(path string) (Remap, error) {
	r := DefaultRemap()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("labeling.LoadRemap: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("labeling.LoadRemap: parse %s: %w", path, err)
	}

	for from, to := range overrides {
		if from == "" || to == "" {
			return nil, fmt.Errorf("labeling.LoadRemap: empty slug in %s (%q: %q)", path, from, to)
		}
		r[from] = to
	}
	return r, nil
}

// Apply returns the published slug for a derived one.
func (r Remap) Apply(slug string) string {
	if to, ok := r[slug]; ok {
		return to
	}
	return slug
}
