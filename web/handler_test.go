package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
)

type fixedConfigProvider struct {
	config *langnav.Config
}

func (p *fixedConfigProvider) Config(_ context.Context) (*langnav.Config, error) {
	return p.config, nil
}

func writeTestPages(t testing.TB) string {
	t.Helper()

	dir := t.TempDir()

	pages := map[string]string{
		"index.html":    "<html><body><!-- languages-navigation --></body></html>",
		"de/index.html": "<html><body><!-- languages-navigation --></body></html>",
	}

	for name, content := range pages {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func testNavConfig() *langnav.Config {
	return &langnav.Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Languages:       []string{"de", "en"},
	}
}

func TestSitePageHandler(t *testing.T) {
	siteDir := writeTestPages(t)

	handler := createSitePageHandler(siteDir, &fixedConfigProvider{config: testNavConfig()})

	for _, tc := range []struct {
		name             string
		path             string
		expectedStatus   int
		expectedContains string
	}{
		{
			name:             "default language page gets the navigation",
			path:             "/index.html",
			expectedStatus:   http.StatusOK,
			expectedContains: `<option value="./index.html" selected="selected">`,
		},
		{
			name:             "translated page links back to the root",
			path:             "/de/index.html",
			expectedStatus:   http.StatusOK,
			expectedContains: `<option value="./../index.html">`,
		},
		{
			name:             "empty path serves the root index page",
			path:             "/",
			expectedStatus:   http.StatusOK,
			expectedContains: `<select class="langnav"`,
		},
		{
			name:           "missing page",
			path:           "/nonexistent.html",
			expectedStatus: http.StatusNotFound,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if rec.Code != tc.expectedStatus {
				t.Fatalf("unexpected status: %d", rec.Code)
			}

			if tc.expectedContains != "" && !strings.Contains(rec.Body.String(), tc.expectedContains) {
				t.Errorf("unexpected body:\n%s", rec.Body.String())
			}
		})
	}
}

func TestSitePageHandler_NoConfiguration(t *testing.T) {
	siteDir := writeTestPages(t)

	handler := createSitePageHandler(siteDir, &fixedConfigProvider{config: nil})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "langnav") || strings.Contains(body, "languages-navigation") {
		t.Errorf("expected marker to be stripped without navigation:\n%s", body)
	}
}

func TestIndexHandler(t *testing.T) {
	model := NewSiteModel()
	model.Set(IndexModel{
		Languages: []LanguageModel{
			{Tag: "en", Label: "English (English)", Root: true, PageCount: 2},
			{Tag: "de", Label: "Deutsch (German)", PageCount: 1},
		},
	})

	handler := createIndexHandler(model)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	body := rec.Body.String()

	if !strings.Contains(body, "Deutsch (German)") {
		t.Errorf("expected language label in body:\n%s", body)
	}

	if !strings.Contains(body, `href="/site/index.html"`) {
		t.Errorf("expected root language link in body:\n%s", body)
	}

	if !strings.Contains(body, `href="/site/de/index.html"`) {
		t.Errorf("expected translated language link in body:\n%s", body)
	}
}
