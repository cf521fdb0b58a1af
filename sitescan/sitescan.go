// Package sitescan enumerates the pages of a rendered multi-language
// documentation site. Pages of the default language live at the site
// root; every other language lives in a subdirectory named by its tag.
package sitescan

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
)

// Page is one HTML page of the site, described the way the navigation
// renderer expects its inputs.
type Page struct {
	// Lang is the language tag the page is rendered in.
	Lang string
	// FileName is the page path relative to its language root. For
	// pages at the language root this is the bare file name.
	FileName string
	// RelPath is the relative path from the page's directory to the
	// language root: ".", "..", "../..", ...
	RelPath string
	// DiskPath is the page path relative to the site directory.
	DiskPath string
}

type Scanner struct {
	SiteDir string
}

// Languages returns the language tags of the site: the default language
// first, then every other configured language whose subdirectory exists.
func (s *Scanner) Languages(config *langnav.Config) ([]string, error) {
	languages := []string{config.DefaultLanguage}

	for _, lang := range config.Languages {
		if lang == config.DefaultLanguage {
			continue
		}

		exists, err := dirExists(filepath.Join(s.SiteDir, lang))
		if err != nil {
			return nil, err
		}

		if exists {
			languages = append(languages, lang)
		}
	}

	return languages, nil
}

// Pages lists every HTML page of the site together with its language.
func (s *Scanner) Pages(config *langnav.Config) ([]Page, error) {
	skipDirs := make(map[string]bool)
	for _, lang := range config.Languages {
		if lang != config.DefaultLanguage {
			skipDirs[lang] = true
		}
	}

	pages, err := s.walkPages(s.SiteDir, config.DefaultLanguage, "", skipDirs)
	if err != nil {
		return nil, err
	}

	languages, err := s.Languages(config)
	if err != nil {
		return nil, err
	}

	for _, lang := range languages {
		if lang == config.DefaultLanguage {
			continue
		}

		langPages, err := s.walkPages(filepath.Join(s.SiteDir, lang), lang, lang, nil)
		if err != nil {
			return nil, err
		}

		pages = append(pages, langPages...)
	}

	return pages, nil
}

// PageForPath describes the page a site-relative request path refers to,
// without checking that the page exists on disk.
func PageForPath(config *langnav.Config, requestPath string) Page {
	requestPath = strings.Trim(path.Clean("/"+requestPath), "/")

	lang := config.DefaultLanguage
	fileName := requestPath

	if first, rest, ok := strings.Cut(requestPath, "/"); ok {
		if first != config.DefaultLanguage && configuredLanguage(config, first) {
			lang = first
			fileName = rest
		}
	}

	return Page{
		Lang:     lang,
		FileName: fileName,
		RelPath:  relPathForDepth(strings.Count(fileName, "/")),
		DiskPath: requestPath,
	}
}

func configuredLanguage(config *langnav.Config, tag string) bool {
	for _, lang := range config.Languages {
		if lang == tag {
			return true
		}
	}

	return false
}

func (s *Scanner) walkPages(root, lang, diskPrefix string, skipDirs map[string]bool) ([]Page, error) {
	var pages []Page

	err := filepath.WalkDir(root, func(walkPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, walkPath)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && skipDirs[relPath] {
				return filepath.SkipDir
			}

			return nil
		}

		if !isHTMLFile(d.Name()) {
			return nil
		}

		diskPath := relPath
		if diskPrefix != "" {
			diskPath = diskPrefix + "/" + relPath
		}

		pages = append(pages, Page{
			Lang:     lang,
			FileName: relPath,
			RelPath:  relPathForDepth(strings.Count(relPath, "/")),
			DiskPath: diskPath,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error while walking site directory %s: %w", root, err)
	}

	return pages, nil
}

func isHTMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

func relPathForDepth(depth int) string {
	if depth == 0 {
		return "."
	}

	return strings.TrimSuffix(strings.Repeat("../", depth), "/")
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("error while checking directory %s: %w", path, err)
	}

	return info.IsDir(), nil
}
