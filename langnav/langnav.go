// Package langnav renders the HTML language navigation select element
// for multi-language documentation sites.
//
// The decoration document needs to specify language configuration
// elements like:
//
//	<custom>
//	  <languages-tool languages-navigation="true" default-language="en">
//	    <language>de</language>
//	    <language>en</language>
//	    <languages-navigation-exclude>faq.html</languages-navigation-exclude>
//	  </languages-tool>
//	</custom>
//
// Pages of the default language live at the site root; every other
// language lives in a subdirectory named by its tag.
package langnav

import (
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/jDTAUS/jdtaus-skin-tools/decoration"
)

// ErrMissingParam reports that a mandatory call parameter was absent.
var ErrMissingParam = errors.New("missing parameter")

const selectOpenTag = `<select class="langnav" name="langnav" size="1" ` +
	`onchange="javascript:document.location=this.options[this.options.selectedIndex].value">`

// NavigationSelect creates the HTML language navigation select element
// for a given page.
//
// currentLang is the currently rendered language tag, relativePath the
// relative path from the current page to the site root (no trailing
// slash) and currentFileName the file name of the currently rendered
// page. It returns an empty string when the document specifies no usable
// configuration or the page is excluded from navigation.
func NavigationSelect(doc *decoration.Document, currentLang, relativePath, currentFileName string) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("param doc is not set: %w", ErrMissingParam)
	}

	return Render(ParseConfig(doc), currentLang, relativePath, currentFileName)
}

// Render is NavigationSelect for an already extracted configuration,
// allowing hosts to reuse one parsed Config across the pages of a site.
// A nil config renders nothing.
func Render(config *Config, currentLang, relativePath, currentFileName string) (string, error) {
	if currentLang == "" {
		return "", fmt.Errorf("param currentLang is not set: %w", ErrMissingParam)
	}
	if relativePath == "" {
		return "", fmt.Errorf("param relativePath is not set: %w", ErrMissingParam)
	}
	if currentFileName == "" {
		return "", fmt.Errorf("param currentFileName is not set: %w", ErrMissingParam)
	}

	if config == nil ||
		!config.Enabled ||
		config.DefaultLanguage == "" ||
		len(config.Languages) == 0 ||
		config.Excludes(currentFileName) {
		return "", nil
	}

	type option struct {
		id    string
		label string
	}

	options := make([]option, 0, len(config.Languages))
	for _, id := range config.Languages {
		options = append(options, option{
			id:    id,
			label: DisplayLabel(id, currentLang),
		})
	}

	// Ordinal comparison of the display labels, not locale collation.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].label < options[j].label
	})

	var b strings.Builder

	b.WriteString(selectOpenTag)

	for _, opt := range options {
		target, selected := linkTarget(config, opt.id, currentLang, relativePath, currentFileName)

		b.WriteString(`<option value="`)
		b.WriteString(target)
		if selected {
			b.WriteString(`" selected="selected">`)
		} else {
			b.WriteString(`">`)
		}
		b.WriteString(html.EscapeString(opt.label))
		b.WriteString("</option>")
	}

	b.WriteString("</select>")

	return b.String(), nil
}

// linkTarget computes the link for one language option. Default-language
// pages live at the site root, so switching to or from the default
// language steps across the language subdirectory level.
func linkTarget(config *Config, id, currentLang, relativePath, currentFileName string) (string, bool) {
	switch {
	case id == currentLang:
		return relativePath + "/" + currentFileName, true
	case currentLang == config.DefaultLanguage:
		return relativePath + "/" + id + "/" + currentFileName, false
	case id == config.DefaultLanguage:
		return relativePath + "/../" + currentFileName, false
	default:
		return relativePath + "/../" + id + "/" + currentFileName, false
	}
}
