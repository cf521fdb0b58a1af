package web

import (
	"context"
	"fmt"

	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
	"github.com/jDTAUS/jdtaus-skin-tools/sitescan"
)

// ConfigProvider hands out the parsed navigation configuration of the
// site, or nil when the descriptor carries none.
type ConfigProvider interface {
	Config(ctx context.Context) (*langnav.Config, error)
}

type RefreshModelTask struct {
	configProvider ConfigProvider
	scanner        *sitescan.Scanner
	model          *SiteModel
}

func NewRefreshModelTask(
	configProvider ConfigProvider,
	scanner *sitescan.Scanner,
	model *SiteModel,
) *RefreshModelTask {
	return &RefreshModelTask{
		configProvider: configProvider,
		scanner:        scanner,
		model:          model,
	}
}

// Run rebuilds the index view model from the descriptor and the site
// tree.
func (t *RefreshModelTask) Run(ctx context.Context) error {
	config, err := t.configProvider.Config(ctx)
	if err != nil {
		return fmt.Errorf("error while reading navigation configuration: %w", err)
	}

	if config == nil {
		t.model.Set(IndexModel{})
		return nil
	}

	languages, err := t.scanner.Languages(config)
	if err != nil {
		return fmt.Errorf("error while listing site languages: %w", err)
	}

	pages, err := t.scanner.Pages(config)
	if err != nil {
		return fmt.Errorf("error while listing site pages: %w", err)
	}

	pageCounts := make(map[string]int)
	for _, page := range pages {
		pageCounts[page.Lang]++
	}

	index := IndexModel{}

	for _, lang := range languages {
		index.Languages = append(index.Languages, LanguageModel{
			Tag:       lang,
			Label:     langnav.DisplayLabel(lang, config.DefaultLanguage),
			Root:      lang == config.DefaultLanguage,
			PageCount: pageCounts[lang],
		})
	}

	t.model.Set(index)

	return nil
}
