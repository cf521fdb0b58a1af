// Package inject writes the language navigation fragment into the pages
// of a rendered site. Pages mark the insertion point with an HTML
// comment; pages without the marker are left untouched.
package inject

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jDTAUS/jdtaus-skin-tools/decoration"
	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
	"github.com/jDTAUS/jdtaus-skin-tools/navcache"
	"github.com/jDTAUS/jdtaus-skin-tools/sitescan"
)

// Marker is the insertion point for the navigation fragment.
const Marker = "<!-- languages-navigation -->"

const configBucket = "langnav-config"

type Injector struct {
	siteDir        string
	descriptorPath string
	store          navcache.Store
}

func New(siteDir, descriptorPath string, store navcache.Store) *Injector {
	return &Injector{
		siteDir:        siteDir,
		descriptorPath: descriptorPath,
		store:          store,
	}
}

// Config returns the navigation configuration of the site descriptor,
// memoized by descriptor fingerprint so that one parse serves all pages.
func (in *Injector) Config(ctx context.Context) (*langnav.Config, error) {
	fingerprint, err := navcache.Fingerprint(in.descriptorPath)
	if err != nil {
		return nil, err
	}

	return navcache.Get(
		ctx,
		in.store,
		configBucket,
		fingerprint,
		nil,
		func(_ context.Context) (*langnav.Config, error) {
			doc, err := decoration.Load(in.descriptorPath)
			if err != nil {
				return nil, err
			}

			return langnav.ParseConfig(doc), nil
		},
	)
}

// Run injects the navigation fragment into every marked page of the
// site. It returns the number of pages written.
func (in *Injector) Run(ctx context.Context) (int, error) {
	config, err := in.Config(ctx)
	if err != nil {
		return 0, fmt.Errorf("error while reading navigation configuration: %w", err)
	}

	if config == nil {
		return 0, nil
	}

	scanner := &sitescan.Scanner{SiteDir: in.siteDir}

	pages, err := scanner.Pages(config)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, page := range pages {
		injected, err := in.injectPage(config, page)
		if err != nil {
			return count, err
		}

		if injected {
			count++
		}
	}

	return count, nil
}

func (in *Injector) injectPage(config *langnav.Config, page sitescan.Page) (bool, error) {
	path := filepath.Join(in.siteDir, filepath.FromSlash(page.DiskPath))

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("error while reading page %s: %w", path, err)
	}

	fragment, err := langnav.Render(config, page.Lang, page.RelPath, page.FileName)
	if err != nil {
		return false, fmt.Errorf("error while rendering navigation for %s: %w", page.DiskPath, err)
	}

	updated, applied := Apply(content, fragment)
	if !applied {
		return false, nil
	}

	if err := writeFileAtomic(path, updated); err != nil {
		return false, fmt.Errorf("error while writing page %s: %w", path, err)
	}

	return true, nil
}

// Apply replaces the navigation marker in a page with the fragment. It
// reports whether the page contained the marker.
func Apply(content []byte, fragment string) ([]byte, bool) {
	marker := []byte(Marker)

	if !bytes.Contains(content, marker) {
		return content, false
	}

	return bytes.ReplaceAll(content, marker, []byte(fragment)), true
}

func writeFileAtomic(path string, content []byte) error {
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
