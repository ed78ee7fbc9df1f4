package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of a portfolio seed file.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the seed file.
func (l *Loader) Load() (File, error) {
	var f File

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return f, fmt.Errorf("failed to read seed file: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return f, nil
}
