package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a project aggregate from a YAML file. The slug is derived
// from the name when the file leaves it empty.
func LoadFile(path string) (*Full, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}

	var full Full
	if err := yaml.Unmarshal(data, &full); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	if full.Slug == "" {
		full.Slug = Slugify(full.Name)
	}
	if full.Status == "" {
		full.Status = StatusDraft
	}
	return &full, nil
}

// SaveFile writes a project aggregate to a YAML file.
func SaveFile(path string, full *Full) error {
	data, err := yaml.Marshal(full)
	if err != nil {
		return fmt.Errorf("marshalling project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing project file %s: %w", path, err)
	}
	return nil
}
