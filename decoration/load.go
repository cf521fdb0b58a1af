package decoration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the site descriptor at path, choosing the parser by file
// extension (.xml, .yaml, .yml, .toml).
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error while opening descriptor %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return LoadXML(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".toml":
		return LoadTOML(f)
	default:
		return nil, fmt.Errorf("unsupported descriptor format: %s", path)
	}
}
