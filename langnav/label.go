package langnav

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayLabel returns the human-readable label for a language tag as
// shown in the navigation element: the language's own name for itself,
// followed by its name in the currently rendered language in
// parentheses, e.g. "Deutsch (German)" when rendering "en".
//
// Name resolution is delegated to the CLDR data shipped with
// golang.org/x/text; tags without a known name fall back to their raw
// identifier. The label is not HTML-escaped.
func DisplayLabel(id, currentID string) string {
	return selfName(id) + " (" + nameIn(id, currentID) + ")"
}

func selfName(id string) string {
	tag, err := language.Parse(id)
	if err != nil {
		return id
	}

	if name := display.Self.Name(tag); name != "" {
		return name
	}

	return id
}

func nameIn(id, currentID string) string {
	tag, err := language.Parse(id)
	if err != nil {
		return id
	}

	current, err := language.Parse(currentID)
	if err != nil {
		return id
	}

	if name := display.Tags(current).Name(tag); name != "" {
		return name
	}

	return id
}
