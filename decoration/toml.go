package decoration

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// LoadTOML parses a TOML site descriptor. Tables map to elements the
// same way LoadYAML maps YAML mappings:
//
//	[custom.languages-tool]
//	languages-navigation = "true"
//	default-language = "en"
//	language = ["de", "en"]
//	languages-navigation-exclude = ["faq.html"]
func LoadTOML(r io.Reader) (*Document, error) {
	var raw map[string]any

	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error while parsing toml descriptor: %w", err)
	}

	return documentFromRoot(elementFromMap("", raw)), nil
}
