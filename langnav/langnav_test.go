package langnav_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jDTAUS/jdtaus-skin-tools/decoration"
	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
)

const selectOpenTag = `<select class="langnav" name="langnav" size="1" ` +
	`onchange="javascript:document.location=this.options[this.options.selectedIndex].value">`

func navDocument(enabled, defaultLanguage string, languages, excludes []string) *decoration.Document {
	tool := &decoration.Element{
		Name: "languages-tool",
		Attrs: map[string]string{
			"languages-navigation": enabled,
			"default-language":     defaultLanguage,
		},
	}

	for _, language := range languages {
		tool.Elements = append(tool.Elements, &decoration.Element{Name: "language", Text: language})
	}

	for _, exclude := range excludes {
		tool.Elements = append(tool.Elements, &decoration.Element{Name: "languages-navigation-exclude", Text: exclude})
	}

	return toolDocument(tool)
}

func TestNavigationSelect_MissingParams(t *testing.T) {
	doc := navDocument("true", "en", []string{"de", "en"}, nil)

	for _, tc := range []struct {
		name            string
		doc             *decoration.Document
		currentLang     string
		relativePath    string
		currentFileName string
		expectedParam   string
	}{
		{
			name:            "missing document",
			doc:             nil,
			currentLang:     "en",
			relativePath:    ".",
			currentFileName: "index.html",
			expectedParam:   "doc",
		},
		{
			name:            "missing current language",
			doc:             doc,
			currentLang:     "",
			relativePath:    ".",
			currentFileName: "index.html",
			expectedParam:   "currentLang",
		},
		{
			name:            "missing relative path",
			doc:             doc,
			currentLang:     "en",
			relativePath:    "",
			currentFileName: "index.html",
			expectedParam:   "relativePath",
		},
		{
			name:            "missing current file name",
			doc:             doc,
			currentLang:     "en",
			relativePath:    ".",
			currentFileName: "",
			expectedParam:   "currentFileName",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := langnav.NavigationSelect(tc.doc, tc.currentLang, tc.relativePath, tc.currentFileName)
			if !errors.Is(err, langnav.ErrMissingParam) {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(err.Error(), "param "+tc.expectedParam) {
				t.Errorf("error does not name the parameter: %v", err)
			}
		})
	}
}

func TestNavigationSelect_RendersNothing(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  *decoration.Document
		file string
	}{
		{
			name: "no languages-tool block",
			doc:  &decoration.Document{Custom: &decoration.Element{Name: "custom"}},
			file: "index.html",
		},
		{
			name: "navigation disabled",
			doc:  navDocument("false", "en", []string{"de", "en"}, nil),
			file: "index.html",
		},
		{
			name: "no configured languages",
			doc:  navDocument("true", "en", nil, nil),
			file: "index.html",
		},
		{
			name: "current page excluded",
			doc:  navDocument("true", "en", []string{"de", "en"}, []string{"faq.html"}),
			file: "faq.html",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			html, err := langnav.NavigationSelect(tc.doc, "en", ".", tc.file)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if html != "" {
				t.Errorf("expected empty output, got: %s", html)
			}
		})
	}
}

func TestNavigationSelect_DefaultLanguagePage(t *testing.T) {
	doc := navDocument("true", "en", []string{"de", "en"}, nil)

	html, err := langnav.NavigationSelect(doc, "en", ".", "index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := selectOpenTag +
		`<option value="./de/index.html">Deutsch (German)</option>` +
		`<option value="./index.html" selected="selected">English (English)</option>` +
		`</select>`

	if html != expected {
		t.Errorf("unexpected output:\n%s", html)
	}
}

func TestNavigationSelect_NonDefaultLanguagePage(t *testing.T) {
	doc := navDocument("true", "en", []string{"de", "en"}, nil)

	html, err := langnav.NavigationSelect(doc, "de", ".", "index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := selectOpenTag +
		`<option value="./index.html" selected="selected">Deutsch (Deutsch)</option>` +
		`<option value="./../index.html">English (Englisch)</option>` +
		`</select>`

	if html != expected {
		t.Errorf("unexpected output:\n%s", html)
	}
}

func TestNavigationSelect_SiblingLanguageLink(t *testing.T) {
	doc := navDocument("true", "en", []string{"de", "en", "fr"}, nil)

	html, err := langnav.NavigationSelect(doc, "fr", "..", "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Neither fr nor de is the default: step up out of the fr
	// subdirectory, then into de.
	if !strings.Contains(html, `<option value="../../de/page.html">`) {
		t.Errorf("unexpected sibling language link:\n%s", html)
	}

	if !strings.Contains(html, `<option value="../../page.html">`) {
		t.Errorf("unexpected default language link:\n%s", html)
	}

	if !strings.Contains(html, `<option value="../page.html" selected="selected">`) {
		t.Errorf("unexpected selected link:\n%s", html)
	}
}

// Danish precedes German by identifier (da < de) but follows it by
// display label ("dansk" sorts after "Deutsch" byte-wise). The options
// must be ordered by label.
func TestNavigationSelect_SortsByDisplayLabel(t *testing.T) {
	doc := navDocument("true", "en", []string{"da", "de"}, nil)

	html, err := langnav.NavigationSelect(doc, "en", ".", "index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	german := strings.Index(html, "Deutsch (German)")
	danish := strings.Index(html, "dansk (Danish)")

	if german < 0 || danish < 0 {
		t.Fatalf("expected both labels in output:\n%s", html)
	}

	if german > danish {
		t.Errorf("expected German option before Danish option:\n%s", html)
	}
}

func TestNavigationSelect_EscapesLabels(t *testing.T) {
	doc := navDocument("true", "en", []string{"en", "x&<y>"}, nil)

	html, err := langnav.NavigationSelect(doc, "en", ".", "index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The unparseable tag falls back to its raw identifier, which must
	// be escaped in the emitted label.
	if !strings.Contains(html, "x&amp;&lt;y&gt; (x&amp;&lt;y&gt;)") {
		t.Errorf("expected escaped label in output:\n%s", html)
	}

	if strings.Contains(html, ">x&<y> (") {
		t.Errorf("unescaped label in output:\n%s", html)
	}
}

func TestRender_NilConfig(t *testing.T) {
	html, err := langnav.Render(nil, "en", ".", "index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if html != "" {
		t.Errorf("expected empty output, got: %s", html)
	}
}
