package mazefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Load reads the grid stored at path. Files ending in .yaml or .yml are
// decoded as documents; anything else as numeric form.
func Load(path string) (*maze.Grid, error) {
	_, g, err := LoadDocument(path)
	return g, err
}

// LoadDocument is Load that also returns the Document. For numeric files
// the Document is synthesized, named after the file.
func LoadDocument(path string) (*Document, *maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mazefile: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, g, err := ReadYAML(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, g, nil
	default:
		g, err := ReadNumeric(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		doc, err := NewDocument(name, g)
		if err != nil {
			return nil, nil, err
		}
		return doc, g, nil
	}
}
