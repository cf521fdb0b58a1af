package decoration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jDTAUS/jdtaus-skin-tools/decoration"
)

const xmlDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<project name="Test Site">
  <custom>
    <languages-tool languages-navigation="true" default-language="en">
      <language>de</language>
      <language>en</language>
      <languages-navigation-exclude>faq.html</languages-navigation-exclude>
    </languages-tool>
  </custom>
</project>
`

const yamlDescriptor = `custom:
  languages-tool:
    languages-navigation: "true"
    default-language: en
    language:
      - de
      - en
    languages-navigation-exclude:
      - faq.html
`

const tomlDescriptor = `[custom.languages-tool]
languages-navigation = "true"
default-language = "en"
language = ["de", "en"]
languages-navigation-exclude = ["faq.html"]
`

// checkDescriptor verifies the lookups the navigation tool performs,
// which must behave identically for every descriptor format.
func checkDescriptor(t *testing.T, doc *decoration.Document) {
	t.Helper()

	if doc.Custom == nil {
		t.Fatal("expected custom subtree")
	}

	tool := doc.Custom.Child("languages-tool")
	if tool == nil {
		t.Fatal("expected languages-tool element")
	}

	if value, ok := tool.Attribute("languages-navigation"); !ok || value != "true" {
		t.Errorf("unexpected languages-navigation attribute: %q, %v", value, ok)
	}

	if value, ok := tool.Attribute("default-language"); !ok || value != "en" {
		t.Errorf("unexpected default-language attribute: %q, %v", value, ok)
	}

	languages := tool.Children("language")
	if len(languages) != 2 {
		t.Fatalf("unexpected number of languages: %d", len(languages))
	}

	excludes := tool.Children("languages-navigation-exclude")
	if len(excludes) != 1 || excludes[0].Value() != "faq.html" {
		t.Errorf("unexpected excludes: %v", excludes)
	}
}

func TestLoadXML(t *testing.T) {
	doc, err := decoration.LoadXML(strings.NewReader(xmlDescriptor))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkDescriptor(t, doc)
}

func TestLoadXML_NoCustomBlock(t *testing.T) {
	doc, err := decoration.LoadXML(strings.NewReader(`<project name="Test Site"></project>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Custom != nil {
		t.Errorf("unexpected custom subtree: %v", doc.Custom)
	}
}

func TestLoadXML_Malformed(t *testing.T) {
	if _, err := decoration.LoadXML(strings.NewReader(`<project><custom></project>`)); err == nil {
		t.Error("expected error")
	}
}

func TestLoadYAML(t *testing.T) {
	doc, err := decoration.LoadYAML(strings.NewReader(yamlDescriptor))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkDescriptor(t, doc)
}

func TestLoadTOML(t *testing.T) {
	doc, err := decoration.LoadTOML(strings.NewReader(tomlDescriptor))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkDescriptor(t, doc)
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name      string
		fileName  string
		content   string
		expectErr bool
	}{
		{
			name:     "xml descriptor",
			fileName: "site.xml",
			content:  xmlDescriptor,
		},
		{
			name:     "yaml descriptor",
			fileName: "site.yaml",
			content:  yamlDescriptor,
		},
		{
			name:     "toml descriptor",
			fileName: "site.toml",
			content:  tomlDescriptor,
		},
		{
			name:      "unsupported format",
			fileName:  "site.json",
			content:   "{}",
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()

			path := filepath.Join(dir, tc.fileName)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			doc, err := decoration.Load(path)
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			checkDescriptor(t, doc)
		})
	}
}

func TestLoad_FileDoesNotExist(t *testing.T) {
	if _, err := decoration.Load(filepath.Join(t.TempDir(), "site.xml")); err == nil {
		t.Error("expected error")
	}
}
