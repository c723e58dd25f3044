// Package document reads Development documents from YAML or JSON and turns
// them into fully-populated model snapshots in a single normalization pass.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/rcdetail/internal/model"
)

// Warning reports a value the normalization pass could not use as given.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return w.Path + ": " + w.Message
}

// Load reads and normalizes the document at path.
func Load(path string) (model.Development, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Development{}, nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML (or JSON) bytes and normalizes them.
func Parse(data []byte) (model.Development, []Warning, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return model.Development{}, nil, fmt.Errorf("failed to parse document: %w", err)
	}
	dev, warnings := Normalize(raw)
	return dev, warnings, nil
}
