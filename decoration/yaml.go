package decoration

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadYAML parses a YAML site descriptor. Mappings become elements,
// scalar entries become attributes and sequences of scalars become
// repeated child elements holding text values:
//
//	custom:
//	  languages-tool:
//	    languages-navigation: "true"
//	    default-language: en
//	    language: [de, en]
//	    languages-navigation-exclude: [faq.html]
func LoadYAML(r io.Reader) (*Document, error) {
	var raw map[string]any

	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error while parsing yaml descriptor: %w", err)
	}

	return documentFromRoot(elementFromMap("", raw)), nil
}

// elementFromMap converts a decoded mapping into an Element the same way
// for every non-XML descriptor format. Keys are visited in sorted order
// to keep the resulting tree deterministic.
func elementFromMap(name string, m map[string]any) *Element {
	element := &Element{Name: name}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch value := m[key].(type) {
		case map[string]any:
			element.Elements = append(element.Elements, elementFromMap(key, value))
		case []any:
			for _, item := range value {
				element.Elements = append(element.Elements, &Element{
					Name: key,
					Text: scalarString(item),
				})
			}
		default:
			if element.Attrs == nil {
				element.Attrs = make(map[string]string)
			}
			element.Attrs[key] = scalarString(value)
		}
	}

	return element
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}
