package langnav

import (
	"slices"
	"strings"

	"github.com/jDTAUS/jdtaus-skin-tools/decoration"
)

const (
	toolElementName    = "languages-tool"
	enabledAttrName    = "languages-navigation"
	defaultAttrName    = "default-language"
	languageElemName   = "language"
	excludeElementName = "languages-navigation-exclude"
)

// Config is the navigation configuration read from the decoration
// document. It is rebuilt from the document on every render call; the
// fields are exported so that hosts may cache it between pages of one
// site.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	// Languages holds the configured language tags in declaration
	// order, duplicates included.
	Languages []string
	// ExcludedPages holds page file names the navigation is suppressed on.
	ExcludedPages []string
}

// Excludes reports whether navigation is suppressed for the given page
// file name.
func (c *Config) Excludes(fileName string) bool {
	return slices.Contains(c.ExcludedPages, fileName)
}

// ParseConfig extracts the navigation configuration from the decoration
// document. It returns nil when the document carries no languages-tool
// block or the block lacks the enabled or default-language attribute;
// that is absence, not an error.
func ParseConfig(doc *decoration.Document) *Config {
	if doc == nil || doc.Custom == nil {
		return nil
	}

	tool := doc.Custom.Child(toolElementName)
	if tool == nil {
		return nil
	}

	enabled, ok := tool.Attribute(enabledAttrName)
	if !ok {
		return nil
	}

	defaultLanguage, ok := tool.Attribute(defaultAttrName)
	if !ok {
		return nil
	}

	config := &Config{
		Enabled:         strings.EqualFold(enabled, "true"),
		DefaultLanguage: defaultLanguage,
	}

	for _, language := range tool.Children(languageElemName) {
		if value := language.Value(); value != "" {
			config.Languages = append(config.Languages, value)
		}
	}

	for _, exclude := range tool.Children(excludeElementName) {
		if value := exclude.Value(); value != "" {
			config.ExcludedPages = append(config.ExcludedPages, value)
		}
	}

	return config
}
