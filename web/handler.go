package web

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jDTAUS/jdtaus-skin-tools/inject"
	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
	"github.com/jDTAUS/jdtaus-skin-tools/sitescan"
)

//go:embed index.html
var indexHTML string

func createIndexHandler(model *SiteModel) http.HandlerFunc {
	indexTmpl := template.Must(template.New("index.html").Parse(indexHTML))

	return func(w http.ResponseWriter, r *http.Request) {
		if err := indexTmpl.Execute(w, model.Get()); err != nil {
			log.Println(err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}
	}
}

// createSitePageHandler serves the site directory, injecting the
// language navigation fragment into HTML pages on the fly.
func createSitePageHandler(siteDir string, configProvider ConfigProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relPath := strings.Trim(path.Clean("/"+r.URL.Path), "/")
		if relPath == "" || relPath == "." {
			relPath = "index.html"
		}

		diskPath := filepath.Join(siteDir, filepath.FromSlash(relPath))

		if !isHTMLPath(relPath) {
			http.ServeFile(w, r, diskPath)
			return
		}

		content, err := os.ReadFile(diskPath)
		if err != nil {
			if os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}

			log.Println(err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		config, err := configProvider.Config(r.Context())
		if err != nil {
			log.Println(err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		fragment := ""

		if config != nil {
			page := sitescan.PageForPath(config, relPath)

			fragment, err = langnav.Render(config, page.Lang, page.RelPath, page.FileName)
			if err != nil {
				log.Println(err)
				http.Error(w, "", http.StatusInternalServerError)
				return
			}
		}

		updated, _ := inject.Apply(content, fragment)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if _, err := w.Write(updated); err != nil {
			log.Println(err)
		}
	}
}

func isHTMLPath(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}
