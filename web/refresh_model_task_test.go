package web

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jDTAUS/jdtaus-skin-tools/sitescan"
)

func TestRefreshModelTask(t *testing.T) {
	siteDir := t.TempDir()

	for _, name := range []string{
		"index.html",
		"about.html",
		"de/index.html",
	} {
		path := filepath.Join(siteDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	model := NewSiteModel()

	task := NewRefreshModelTask(
		&fixedConfigProvider{config: testNavConfig()},
		&sitescan.Scanner{SiteDir: siteDir},
		model,
	)

	if err := task.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	expected := IndexModel{
		Languages: []LanguageModel{
			{Tag: "en", Label: "English (English)", Root: true, PageCount: 2},
			{Tag: "de", Label: "Deutsch (German)", PageCount: 1},
		},
	}

	if index := model.Get(); !reflect.DeepEqual(index, expected) {
		t.Errorf("unexpected index model: %+v", index)
	}
}

func TestRefreshModelTask_NoConfiguration(t *testing.T) {
	model := NewSiteModel()
	model.Set(IndexModel{
		Languages: []LanguageModel{{Tag: "en"}},
	})

	task := NewRefreshModelTask(
		&fixedConfigProvider{config: nil},
		&sitescan.Scanner{SiteDir: t.TempDir()},
		model,
	)

	if err := task.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if index := model.Get(); len(index.Languages) != 0 {
		t.Errorf("expected an empty index model: %+v", index)
	}
}
